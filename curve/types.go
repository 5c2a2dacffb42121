/*
Package curve provides the core pay-acceleration curve evaluator.

PURPOSE:
  This package contains the pure data model and math for compensation
  acceleration curves: a plan is an ordered list of attainment bands, each
  with a payout rate multiplier, and the evaluator turns that list into the
  cumulative payout reached at every band boundary.

KEY CONCEPTS IN THIS FILE (types.go):
  - Band: one rate tier over an attainment range [Min, Max)
  - Point: a single (attainment, payout) pair, both in percent
  - Dataset: the ordered boundary points the evaluator produces

DESIGN PRINCIPLES:
  1. Purity: no I/O, no rendering concerns, no hidden state
  2. Precision: uses decimal.Decimal so boundary payouts are exact
     (a 1.15x band over 100 points is 115, not 114.99999...)
  3. Permissiveness: band order is a caller precondition, not validated;
     malformed input degrades rather than failing

USAGE:
  bands := []curve.Band{
      curve.NewBand(0, 1).WithMax(100),
      curve.NewBand(100, 2.5),
  }
  ds := curve.Evaluate(bands)

SEE ALSO:
  - evaluate.go: The cumulative payout algorithm
  - scene package: Turns a Dataset into drawable geometry
*/
package curve

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// BAND - One rate tier
// =============================================================================

// Band is a contiguous attainment range with a payout rate multiplier.
// Bands are expected in ascending Min order with each Max equal to the next
// band's Min; this is a caller precondition and deliberately unenforced.
type Band struct {
	// Min is the attainment threshold (percent) at which the band begins.
	Min decimal.Decimal

	// Max is the exclusive upper bound of the band, or nil for the final
	// open-ended band.
	Max *decimal.Decimal

	// Rate multiplies the portion of attainment falling inside the band.
	Rate decimal.Decimal
}

// NewBand creates an open-ended band starting at min with the given rate.
func NewBand(min, rate float64) Band {
	return Band{
		Min:  decimal.NewFromFloat(min),
		Rate: decimal.NewFromFloat(rate),
	}
}

// WithMax returns a copy of the band bounded above at max.
func (b Band) WithMax(max float64) Band {
	m := decimal.NewFromFloat(max)
	b.Max = &m
	return b
}

// Contains reports whether an attainment value belongs to this band for
// label-lookup purposes: Min <= a <= Max, or Min <= a when open-ended.
// The upper comparison is inclusive so a boundary point labels the band it
// closes rather than falling between two bands.
func (b Band) Contains(a decimal.Decimal) bool {
	if a.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || a.LessThanOrEqual(*b.Max)
}

// =============================================================================
// DATASET - Evaluator output
// =============================================================================

// Point is one boundary of the piecewise-linear payout curve.
// Attainment is the independent variable, Payout the cumulative result,
// both expressed in percent.
type Point struct {
	Attainment decimal.Decimal
	Payout     decimal.Decimal
}

// Dataset is the ordered sequence of curve boundary points. Order is
// semantically meaningful: it defines the polyline path and which segment a
// rate label belongs to.
type Dataset struct {
	Points []Point
}

// IsEmpty reports whether the dataset has no points.
func (d Dataset) IsEmpty() bool { return len(d.Points) == 0 }

// Last returns the final point. Callers must check IsEmpty first.
func (d Dataset) Last() Point { return d.Points[len(d.Points)-1] }
