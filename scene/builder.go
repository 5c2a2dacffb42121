/*
builder.go - Coordinate mapping and scene construction

PURPOSE:
  Build turns an evaluated dataset plus chart dimensions into the primitive
  list a renderer draws. All coordinate math lives here.

COORDINATE SYSTEM:
  Linear scale per axis, derived once from the dataset's LAST point:
    scaleX = plotWidth  / last.attainment
    scaleY = plotHeight / last.payout
    toPixelX(v) = padLeft + v*scaleX
    toPixelY(v) = height - padBottom - padTop - v*scaleY
  Pixel Y grows downward, so payout is inverted. An empty dataset or a
  zero-valued last point produces non-finite scales and coordinates; this is
  a documented accepted limitation, not guarded here.

KNOWN QUIRKS (intentional, do not "fix"):
  - The last point gets no gridlines or axis labels: it is the synthetic
    extrapolation past the final band, not a real boundary.
  - The gate-met label is pinned to the segment ending at dataset index 2
    (gateMetSegmentIndex). This is a layout convention for the usual
    "first band is the gate band" plan shape, not a general search.

SEE ALSO:
  - scene.go: Primitive model
  - curve package: Dataset production
*/
package scene

import (
	"github.com/shopspring/decimal"

	"github.com/warp/comp-curve/curve"
)

// gateMetSegmentIndex is the dataset index whose incoming segment hosts the
// "Gate met" label. Meaningful only when the dataset has at least 3 points.
const gateMetSegmentIndex = 2

// Label text and small pixel offsets used by the annotation primitives.
const (
	xAxisTitle     = "Attainment (%)"
	yAxisTitle     = "Payout (%)"
	gateMetText    = "Gate met"
	gateNotMetText = "Gate not met"

	labelGap      = 6.0  // gap between axis and value labels
	labelDrop     = 16.0 // drop below the X axis for attainment labels
	rateLabelLift = 8.0  // up/left shift so rate labels sit above the line
)

// Build maps the dataset into a Scene under the given configuration. Bands
// ride along explicitly because the per-segment rate labels need them; Build
// keeps no state between calls.
func Build(ds curve.Dataset, bands []curve.Band, cfg Config) Scene {
	tr := newTransform(ds, cfg)
	s := Scene{Width: cfg.Width, Height: cfg.Height}

	s.Primitives = append(s.Primitives, axes(cfg)...)
	s.Primitives = append(s.Primitives, gridlines(ds, cfg, tr)...)
	s.Primitives = append(s.Primitives, curvePath(ds, tr))
	s.Primitives = append(s.Primitives, rateLabels(ds, bands, tr)...)
	if cfg.HasGate {
		s.Primitives = append(s.Primitives, gateAnnotations(ds, cfg, tr)...)
	}
	s.Primitives = append(s.Primitives, axisTitles(cfg)...)

	return s
}

// =============================================================================
// COORDINATE TRANSFORM
// =============================================================================

// transform holds the per-render scale factors. It is recomputed on every
// Build call; there is no cached object state.
type transform struct {
	padLeft  float64
	baseline float64
	scaleX   float64
	scaleY   float64
}

func newTransform(ds curve.Dataset, cfg Config) transform {
	var lastAtt, lastPay float64
	if !ds.IsEmpty() {
		lastAtt = ds.Last().Attainment.InexactFloat64()
		lastPay = ds.Last().Payout.InexactFloat64()
	}

	// Division by zero here is the documented degenerate case: the scales go
	// non-finite and so do downstream coordinates.
	return transform{
		padLeft:  cfg.Padding.Left,
		baseline: cfg.baselineY(),
		scaleX:   cfg.plotWidth() / lastAtt,
		scaleY:   cfg.plotHeight() / lastPay,
	}
}

func (t transform) x(v decimal.Decimal) float64 {
	return t.padLeft + v.InexactFloat64()*t.scaleX
}

func (t transform) y(v decimal.Decimal) float64 {
	return t.baseline - v.InexactFloat64()*t.scaleY
}

func (t transform) pixel(p curve.Point) Point {
	return Point{X: t.x(p.Attainment), Y: t.y(p.Payout)}
}

// =============================================================================
// SCENE PARTS
// =============================================================================

func axes(cfg Config) []Primitive {
	origin := Point{X: cfg.Padding.Left, Y: cfg.baselineY()}
	return []Primitive{
		{
			Kind: KindLine, Role: RoleAxis,
			From: origin,
			To:   Point{X: cfg.Width - cfg.Padding.Right, Y: origin.Y},
		},
		{
			Kind: KindLine, Role: RoleAxis,
			From: origin,
			To:   Point{X: origin.X, Y: cfg.Padding.Top},
		},
	}
}

// gridlines emits one vertical and one horizontal gridline, each with a
// percentage label, for every point except the last.
func gridlines(ds curve.Dataset, cfg Config, tr transform) []Primitive {
	if ds.IsEmpty() {
		return nil
	}

	var out []Primitive
	for _, p := range ds.Points[:len(ds.Points)-1] {
		px, py := tr.x(p.Attainment), tr.y(p.Payout)

		// Vertical: from the curve's height down to the X axis.
		out = append(out,
			Primitive{
				Kind: KindLine, Role: RoleGridlineX,
				From: Point{X: px, Y: py},
				To:   Point{X: px, Y: tr.baseline},
			},
			Primitive{
				Kind: KindText, Role: RoleAxisLabelX,
				At:     Point{X: px, Y: tr.baseline + labelDrop},
				Text:   p.Attainment.String() + "%",
				Anchor: AnchorMiddle,
			},
		)

		// Horizontal: from the Y axis out to the point's X position.
		out = append(out,
			Primitive{
				Kind: KindLine, Role: RoleGridlineY,
				From: Point{X: tr.padLeft, Y: py},
				To:   Point{X: px, Y: py},
			},
			Primitive{
				Kind: KindText, Role: RoleAxisLabelY,
				At:     Point{X: tr.padLeft - labelGap, Y: py + 4},
				Text:   p.Payout.String() + "%",
				Anchor: AnchorEnd,
			},
		)
	}
	return out
}

// curvePath emits the single polyline from the chart origin through every
// dataset point, terminated with a directional arrow.
func curvePath(ds curve.Dataset, tr transform) Primitive {
	pts := make([]Point, 0, len(ds.Points)+1)
	pts = append(pts, Point{X: tr.x(decimal.Zero), Y: tr.y(decimal.Zero)})
	for _, p := range ds.Points {
		pts = append(pts, tr.pixel(p))
	}

	return Primitive{
		Kind:   KindPath,
		Role:   RoleCurve,
		Points: pts,
		Arrow:  true,
	}
}

// rateLabels places "{rate}x" at the midpoint of each consecutive point
// pair, looked up by scanning bands for the one containing the later
// point's attainment. O(bands^2) overall, fine at a handful of bands.
func rateLabels(ds curve.Dataset, bands []curve.Band, tr transform) []Primitive {
	var out []Primitive
	for i := 1; i < len(ds.Points); i++ {
		rate, ok := rateFor(bands, ds.Points[i].Attainment)
		if !ok {
			continue
		}

		a, b := tr.pixel(ds.Points[i-1]), tr.pixel(ds.Points[i])
		out = append(out, Primitive{
			Kind:   KindText,
			Role:   RoleRateLabel,
			At:     Point{X: (a.X+b.X)/2 - rateLabelLift, Y: (a.Y+b.Y)/2 - rateLabelLift},
			Text:   rate.String() + "x",
			Anchor: AnchorMiddle,
		})
	}
	return out
}

func rateFor(bands []curve.Band, attainment decimal.Decimal) (decimal.Decimal, bool) {
	for _, b := range bands {
		if b.Contains(attainment) {
			return b.Rate, true
		}
	}
	return decimal.Zero, false
}

// gateAnnotations emits the dashed 1:1 reference line with its caution
// label, and the success label inside the first accelerating segment.
// Fewer than 3 points: the gate-met label is simply not emitted. Fewer than
// 2 points: nothing is emitted at all (the reference indices would not
// exist).
func gateAnnotations(ds curve.Dataset, cfg Config, tr transform) []Primitive {
	n := len(ds.Points)
	if n < 2 {
		return nil
	}

	// The reference line maps attainment through the attainment scale on
	// BOTH axes: the path payout would have taken with no acceleration.
	ref := ds.Points[n-2].Attainment
	refEnd := Point{
		X: tr.x(ref),
		Y: cfg.baselineY() - ref.InexactFloat64()*tr.scaleX,
	}

	out := []Primitive{
		{
			Kind:   KindLine,
			Role:   RoleGateNotMet,
			From:   tr.pixel(ds.Points[1]),
			To:     refEnd,
			Dashed: true,
			Tone:   ToneCaution,
		},
		{
			Kind:   KindText,
			Role:   RoleGateNotMet,
			At:     Point{X: refEnd.X - 10, Y: refEnd.Y - 10},
			Text:   gateNotMetText,
			Anchor: AnchorEnd,
			Tone:   ToneCaution,
		},
	}

	if n > gateMetSegmentIndex {
		a := tr.pixel(ds.Points[gateMetSegmentIndex-1])
		b := tr.pixel(ds.Points[gateMetSegmentIndex])
		out = append(out, Primitive{
			Kind:   KindText,
			Role:   RoleGateMet,
			At:     Point{X: (a.X+b.X)/2 - rateLabelLift, Y: (a.Y+b.Y)/2 + 14},
			Text:   gateMetText,
			Anchor: AnchorMiddle,
			Tone:   ToneSuccess,
		})
	}

	return out
}

func axisTitles(cfg Config) []Primitive {
	return []Primitive{
		{
			Kind:   KindText,
			Role:   RoleAxisTitle,
			At:     Point{X: cfg.Padding.Left + cfg.plotWidth()/2, Y: cfg.Height - 12},
			Text:   xAxisTitle,
			Anchor: AnchorMiddle,
		},
		{
			Kind:     KindText,
			Role:     RoleAxisTitle,
			At:       Point{X: 16, Y: cfg.Padding.Top + cfg.plotHeight()/2},
			Text:     yAxisTitle,
			Anchor:   AnchorMiddle,
			Rotation: -90,
		},
	}
}
