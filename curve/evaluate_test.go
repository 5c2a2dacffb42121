package curve_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/comp-curve/curve"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// acceleratorBands is the canonical four-tier acceleration plan:
// 1x to 100%, 2.5x to 200%, 1.5x to 300%, 1.15x above.
func acceleratorBands() []curve.Band {
	return []curve.Band{
		curve.NewBand(0, 1).WithMax(100),
		curve.NewBand(100, 2.5).WithMax(200),
		curve.NewBand(200, 1.5).WithMax(300),
		curve.NewBand(300, 1.15),
	}
}

func assertPoint(t *testing.T, p curve.Point, attainment, payout float64) {
	t.Helper()
	if !p.Attainment.Equal(dec(attainment)) {
		t.Errorf("attainment: expected %v, got %v", attainment, p.Attainment)
	}
	if !p.Payout.Equal(dec(payout)) {
		t.Errorf("payout at %v: expected %v, got %v", attainment, payout, p.Payout)
	}
}

// =============================================================================
// EVALUATE TESTS
// =============================================================================

func TestEvaluate_EmptyBands(t *testing.T) {
	// GIVEN: No bands
	// WHEN: Evaluating
	// THEN: Empty dataset, no terminal point

	ds := curve.Evaluate(nil)
	if !ds.IsEmpty() {
		t.Errorf("expected empty dataset, got %d points", len(ds.Points))
	}

	ds = curve.Evaluate([]curve.Band{})
	if !ds.IsEmpty() {
		t.Errorf("expected empty dataset for empty slice, got %d points", len(ds.Points))
	}
}

func TestEvaluate_SingleOpenEndedBand(t *testing.T) {
	// GIVEN: One open-ended 1x band starting at 0
	// WHEN: Evaluating
	// THEN: Points (0,0) and the terminal (100,100)

	ds := curve.Evaluate([]curve.Band{curve.NewBand(0, 1)})

	if len(ds.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(ds.Points))
	}
	assertPoint(t, ds.Points[0], 0, 0)
	assertPoint(t, ds.Points[1], 100, 100)
}

func TestEvaluate_BoundaryContribution(t *testing.T) {
	// GIVEN: A single band {min:0, max:100, rate:1}
	// WHEN: Computing payout at the band's own min and at its max
	// THEN: The min contributes nothing (strict >), the max the full 100

	bands := []curve.Band{curve.NewBand(0, 1).WithMax(100)}

	if got := curve.PayoutAt(bands, dec(0)); !got.IsZero() {
		t.Errorf("payout at own min should be 0, got %v", got)
	}
	if got := curve.PayoutAt(bands, dec(100)); !got.Equal(dec(100)) {
		t.Errorf("payout at 100 should be 100, got %v", got)
	}
}

func TestEvaluate_AcceleratorPlan(t *testing.T) {
	// GIVEN: The four-tier acceleration plan (1x, 2.5x, 1.5x, 1.15x)
	// WHEN: Evaluating
	// THEN: Boundary payouts are exactly 0, 100, 350, 500 and the terminal
	//       point at 400 pays 615

	ds := curve.Evaluate(acceleratorBands())

	if len(ds.Points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(ds.Points))
	}
	assertPoint(t, ds.Points[0], 0, 0)
	assertPoint(t, ds.Points[1], 100, 100)
	assertPoint(t, ds.Points[2], 200, 350)
	assertPoint(t, ds.Points[3], 300, 500)
	assertPoint(t, ds.Points[4], 400, 615)
}

func TestEvaluate_TerminalPoint(t *testing.T) {
	// GIVEN: Plans whose last band starts at various thresholds
	// WHEN: Evaluating
	// THEN: The last point's attainment is always lastBand.Min + 100

	cases := []struct {
		name    string
		bands   []curve.Band
		lastAtt float64
	}{
		{"single band at zero", []curve.Band{curve.NewBand(0, 1)}, 100},
		{"two bands", []curve.Band{curve.NewBand(0, 1).WithMax(150), curve.NewBand(150, 2)}, 250},
		{"four bands", acceleratorBands(), 400},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := curve.Evaluate(tc.bands)
			if ds.IsEmpty() {
				t.Fatal("unexpected empty dataset")
			}
			if !ds.Last().Attainment.Equal(dec(tc.lastAtt)) {
				t.Errorf("terminal attainment: expected %v, got %v", tc.lastAtt, ds.Last().Attainment)
			}
		})
	}
}

func TestEvaluate_MonotonicPayout(t *testing.T) {
	// GIVEN: Bands with non-negative rates
	// WHEN: Evaluating
	// THEN: Payout is non-decreasing as attainment increases

	plans := [][]curve.Band{
		acceleratorBands(),
		{curve.NewBand(0, 0).WithMax(50), curve.NewBand(50, 3)},
		{curve.NewBand(0, 0.5)},
	}

	for _, bands := range plans {
		ds := curve.Evaluate(bands)
		for i := 1; i < len(ds.Points); i++ {
			prev, cur := ds.Points[i-1], ds.Points[i]
			if cur.Payout.LessThan(prev.Payout) {
				t.Errorf("payout decreased from %v to %v at attainment %v",
					prev.Payout, cur.Payout, cur.Attainment)
			}
			if !cur.Attainment.GreaterThan(prev.Attainment) {
				t.Errorf("attainment not strictly increasing at index %d", i)
			}
		}
	}
}

func TestPayoutAt_MidBand(t *testing.T) {
	// GIVEN: The accelerator plan
	// WHEN: Computing payout inside a band rather than on a boundary
	// THEN: Only the partial overlap of the containing band accrues

	bands := acceleratorBands()

	// 150% attainment: 100*1 + 50*2.5 = 225
	if got := curve.PayoutAt(bands, dec(150)); !got.Equal(dec(225)) {
		t.Errorf("payout at 150: expected 225, got %v", got)
	}

	// 350% attainment: 100 + 250 + 150 + 50*1.15 = 557.5
	if got := curve.PayoutAt(bands, dec(350)); !got.Equal(dec(557.5)) {
		t.Errorf("payout at 350: expected 557.5, got %v", got)
	}
}

func TestBand_Contains(t *testing.T) {
	// GIVEN: A bounded band [100, 200] and an open-ended band [300, inf)
	// WHEN: Testing membership at edges and outside
	// THEN: Both edges are inclusive for label lookup; open-ended has no top

	bounded := curve.NewBand(100, 2.5).WithMax(200)
	open := curve.NewBand(300, 1.15)

	if !bounded.Contains(dec(100)) || !bounded.Contains(dec(200)) {
		t.Error("bounded band should contain both edges")
	}
	if bounded.Contains(dec(99)) || bounded.Contains(dec(201)) {
		t.Error("bounded band should not contain values outside [100, 200]")
	}
	if !open.Contains(dec(300)) || !open.Contains(dec(10000)) {
		t.Error("open-ended band should contain everything at or above min")
	}
	if open.Contains(dec(299)) {
		t.Error("open-ended band should not contain values below min")
	}
}
