package factory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/comp-curve/factory"
)

func TestParsePlan_FullPlan(t *testing.T) {
	// GIVEN: A complete plan config with four bands and a gate
	// WHEN: Parsing strictly
	// THEN: Bands come out in order with the open-ended tail, gate set

	jsonStr := `{
		"id": "fy26-accelerator",
		"name": "FY26 Sales Accelerator",
		"bands": [
			{"min": 0,   "max": 100, "rate": 1},
			{"min": 100, "max": 200, "rate": 2.5},
			{"min": 200, "max": 300, "rate": 1.5},
			{"min": 300, "rate": 1.15}
		],
		"hasgate": true
	}`

	plan, err := factory.NewPlanFactory().ParsePlan(jsonStr)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if plan.ID != "fy26-accelerator" || plan.Name != "FY26 Sales Accelerator" {
		t.Errorf("identity fields wrong: %q %q", plan.ID, plan.Name)
	}
	if len(plan.Bands) != 4 {
		t.Fatalf("expected 4 bands, got %d", len(plan.Bands))
	}
	if !plan.Config.HasGate {
		t.Error("hasgate should carry into the config")
	}

	last := plan.Bands[3]
	if last.Max != nil {
		t.Error("last band should be open-ended")
	}
	if !last.Rate.Equal(decimal.NewFromFloat(1.15)) {
		t.Errorf("last band rate: expected 1.15, got %v", last.Rate)
	}

	second := plan.Bands[1]
	if second.Max == nil || !second.Max.Equal(decimal.NewFromInt(200)) {
		t.Errorf("second band max: expected 200, got %v", second.Max)
	}
}

func TestParsePlan_ChartDefaults(t *testing.T) {
	// GIVEN: Configs with absent, partial, and invalid chart dimensions
	// WHEN: Parsing
	// THEN: Defaults fill every gap; non-positive values are rejected

	f := factory.NewPlanFactory()

	plan, err := f.ParsePlan(`{"bands": [{"min": 0, "rate": 1}]}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if plan.Config.Width != 700 || plan.Config.Height != 420 {
		t.Errorf("expected default 700x420, got %vx%v", plan.Config.Width, plan.Config.Height)
	}
	if plan.Config.Padding.Left <= plan.Config.Padding.Right {
		t.Error("left padding should exceed right (hosts value labels)")
	}
	if plan.Config.Padding.Bottom <= plan.Config.Padding.Top {
		t.Error("bottom padding should exceed top (hosts value labels)")
	}

	plan, err = f.ParsePlan(`{"bands": [], "chart": {"width": -5, "height": 300}}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if plan.Config.Width != 700 {
		t.Errorf("invalid width should fall back to default, got %v", plan.Config.Width)
	}
	if plan.Config.Height != 300 {
		t.Errorf("valid height should be kept, got %v", plan.Config.Height)
	}

	plan, err = f.ParsePlan(`{"bands": [], "chart": {"padding": {"left": 80}}}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if plan.Config.Padding.Left != 80 {
		t.Errorf("padding override lost, got %v", plan.Config.Padding.Left)
	}
	if plan.Config.Padding.Bottom != 50 {
		t.Errorf("unset padding should keep default, got %v", plan.Config.Padding.Bottom)
	}
}

func TestParsePlan_Malformed(t *testing.T) {
	// GIVEN: Unparsable JSON
	// WHEN: Parsing strictly vs leniently
	// THEN: Strict returns an error; lenient substitutes an empty band
	//       list with default chart config and never fails

	f := factory.NewPlanFactory()

	if _, err := f.ParsePlan(`{"bands": [{`); err == nil {
		t.Error("strict parse should fail on malformed JSON")
	}
	if _, err := f.ParsePlan(`{"bands": "not-an-array"}`); err == nil {
		t.Error("strict parse should fail on non-array bands")
	}

	plan := f.ParsePlanLenient(`{"bands": [{`)
	if plan == nil {
		t.Fatal("lenient parse must never return nil")
	}
	if len(plan.Bands) != 0 {
		t.Errorf("lenient fallback should have empty bands, got %d", len(plan.Bands))
	}
	if plan.Config.Width != 700 {
		t.Errorf("lenient fallback should use default config, got width %v", plan.Config.Width)
	}
}

func TestToJSON_RoundTrip(t *testing.T) {
	// GIVEN: A parsed plan
	// WHEN: Converting back to the JSON schema form
	// THEN: Bands, gate flag, and chart dimensions survive

	f := factory.NewPlanFactory()
	plan, err := f.ParsePlan(`{
		"id": "p1", "name": "Plan One",
		"bands": [{"min": 0, "max": 150, "rate": 1}, {"min": 150, "rate": 2}],
		"hasgate": true,
		"chart": {"width": 800, "height": 500}
	}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	pj := f.ToJSON(plan)
	if pj.ID != "p1" || !pj.HasGate {
		t.Errorf("identity/gate lost: %+v", pj)
	}
	if len(pj.Bands) != 2 {
		t.Fatalf("expected 2 bands, got %d", len(pj.Bands))
	}
	if pj.Bands[0].Max == nil || *pj.Bands[0].Max != 150 {
		t.Errorf("bounded max lost: %+v", pj.Bands[0])
	}
	if pj.Bands[1].Max != nil {
		t.Error("open-ended band grew a max")
	}
	if pj.Chart.Width != 800 || pj.Chart.Height != 500 {
		t.Errorf("chart dimensions lost: %+v", pj.Chart)
	}
}
