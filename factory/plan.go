/*
Package factory provides JSON to Go plan conversion.

PURPOSE:
  Converts JSON plan definitions into curve.Band lists and scene.Config
  values. This enables plan configuration without code changes - comp admins
  define acceleration plans in JSON, and the factory creates the proper Go
  structs.

JSON SCHEMA:
  {
    "id": "fy26-accelerator",
    "name": "FY26 Sales Accelerator",
    "bands": [
      {"min": 0,   "max": 100, "rate": 1},
      {"min": 100, "max": 200, "rate": 2.5},
      {"min": 200, "max": 300, "rate": 1.5},
      {"min": 300, "rate": 1.15}
    ],
    "hasgate": true,
    "chart": {"width": 700, "height": 420}
  }

  Only the last band may omit "max" (open-ended). Band order and contiguity
  are the caller's responsibility; the factory does not sort or validate
  them, matching the permissive evaluator contract.

PARSE MODES:
  ParsePlan:        strict - malformed JSON is an error (plan creation API)
  ParsePlanLenient: logs a diagnostic and substitutes an empty band list so
                    rendering never fails during interactive plan editing

SEE ALSO:
  - curve package: Band definition and evaluator
  - scene package: Config consumed by the builder
*/
package factory

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/warp/comp-curve/curve"
	"github.com/warp/comp-curve/scene"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// PlanJSON is the JSON representation of an acceleration plan.
type PlanJSON struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Bands   []BandJSON `json:"bands"`
	HasGate bool       `json:"hasgate"`
	Chart   *ChartJSON `json:"chart,omitempty"`
}

// BandJSON represents one rate tier. A nil Max means open-ended.
type BandJSON struct {
	Min  float64  `json:"min"`
	Max  *float64 `json:"max,omitempty"`
	Rate float64  `json:"rate"`
}

// ChartJSON overrides the default chart dimensions.
type ChartJSON struct {
	Width   float64      `json:"width,omitempty"`
	Height  float64      `json:"height,omitempty"`
	Padding *PaddingJSON `json:"padding,omitempty"`
}

// PaddingJSON overrides the default padding. Zero fields keep the default,
// so partial overrides work.
type PaddingJSON struct {
	Left   float64 `json:"left,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Top    float64 `json:"top,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
}

// =============================================================================
// PLAN FACTORY
// =============================================================================

// Plan is the parsed, render-ready form of a plan configuration.
type Plan struct {
	ID     string
	Name   string
	Bands  []curve.Band
	Config scene.Config
}

// PlanFactory converts JSON plans to Go structs.
type PlanFactory struct{}

// NewPlanFactory creates a new plan factory.
func NewPlanFactory() *PlanFactory {
	return &PlanFactory{}
}

// ParsePlan parses a JSON string into a Plan. Malformed JSON is an error;
// defaults are still applied for absent or invalid chart dimensions.
func (f *PlanFactory) ParsePlan(jsonStr string) (*Plan, error) {
	var pj PlanJSON
	if err := json.Unmarshal([]byte(jsonStr), &pj); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}

	return f.FromJSON(pj), nil
}

// ParsePlanLenient parses a JSON string, degrading to an empty band list on
// failure instead of returning an error. The diagnostic goes to the log;
// rendering proceeds with an empty, degenerate chart.
func (f *PlanFactory) ParsePlanLenient(jsonStr string) *Plan {
	plan, err := f.ParsePlan(jsonStr)
	if err != nil {
		log.Printf("plan config unparsable, rendering empty chart: %v", err)
		return &Plan{Bands: []curve.Band{}, Config: scene.DefaultConfig()}
	}
	return plan
}

// FromJSON converts PlanJSON to a Plan, applying chart defaults.
func (f *PlanFactory) FromJSON(pj PlanJSON) *Plan {
	bands := make([]curve.Band, 0, len(pj.Bands))
	for _, bj := range pj.Bands {
		b := curve.Band{
			Min:  decimal.NewFromFloat(bj.Min),
			Rate: decimal.NewFromFloat(bj.Rate),
		}
		if bj.Max != nil {
			m := decimal.NewFromFloat(*bj.Max)
			b.Max = &m
		}
		bands = append(bands, b)
	}

	cfg := parseChartConfig(pj.Chart)
	cfg.HasGate = pj.HasGate

	return &Plan{
		ID:     pj.ID,
		Name:   pj.Name,
		Bands:  bands,
		Config: cfg,
	}
}

// parseChartConfig applies defaults for absent or non-positive dimensions.
func parseChartConfig(cj *ChartJSON) scene.Config {
	cfg := scene.DefaultConfig()
	if cj == nil {
		return cfg
	}

	if cj.Width > 0 {
		cfg.Width = cj.Width
	}
	if cj.Height > 0 {
		cfg.Height = cj.Height
	}
	if cj.Padding != nil {
		if cj.Padding.Left > 0 {
			cfg.Padding.Left = cj.Padding.Left
		}
		if cj.Padding.Right > 0 {
			cfg.Padding.Right = cj.Padding.Right
		}
		if cj.Padding.Top > 0 {
			cfg.Padding.Top = cj.Padding.Top
		}
		if cj.Padding.Bottom > 0 {
			cfg.Padding.Bottom = cj.Padding.Bottom
		}
	}
	return cfg
}

// ToJSON converts a Plan back to its JSON schema form (for API responses).
func (f *PlanFactory) ToJSON(p *Plan) PlanJSON {
	bands := make([]BandJSON, 0, len(p.Bands))
	for _, b := range p.Bands {
		bj := BandJSON{
			Min:  b.Min.InexactFloat64(),
			Rate: b.Rate.InexactFloat64(),
		}
		if b.Max != nil {
			m := b.Max.InexactFloat64()
			bj.Max = &m
		}
		bands = append(bands, bj)
	}

	return PlanJSON{
		ID:      p.ID,
		Name:    p.Name,
		Bands:   bands,
		HasGate: p.Config.HasGate,
		Chart: &ChartJSON{
			Width:  p.Config.Width,
			Height: p.Config.Height,
			Padding: &PaddingJSON{
				Left:   p.Config.Padding.Left,
				Right:  p.Config.Padding.Right,
				Top:    p.Config.Padding.Top,
				Bottom: p.Config.Padding.Bottom,
			},
		},
	}
}
