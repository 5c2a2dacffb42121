/*
evaluate.go - Cumulative payout evaluation

PURPOSE:
  Maps a band list to the ordered (attainment, payout) points at every band
  boundary, plus one synthetic terminal point that gives the open-ended final
  band a finite visual extent.

ALGORITHM:
  payout(a) = sum over bands b, in input order, while a > b.Min of
              b.Rate * overlap(b, a)
  where overlap is the portion of [b.Min, b.Max) below a. Iteration stops at
  the first band whose Min >= a. The strict > means an attainment value
  exactly on a band's Min takes nothing from that band: a boundary point's
  payout is defined by strictly-prior bands only.

PRECONDITION:
  Bands sorted ascending by Min and contiguous. The stop condition is a
  short-circuit, not a filter, so an unsorted list yields inconsistent
  payouts. Accepted limitation; see the factory package for the lenient
  parse boundary.

SEE ALSO:
  - types.go: Band and Dataset definitions
*/
package curve

import (
	"github.com/shopspring/decimal"
)

// TerminalExtension is how far past the last band boundary the synthetic
// final point is placed, in attainment percent.
const TerminalExtension = 100

// Evaluate maps a band list to the curve's boundary points: one point per
// band Min, plus a terminal point at lastBand.Min + TerminalExtension.
// An empty band list yields an empty dataset with no terminal point.
func Evaluate(bands []Band) Dataset {
	if len(bands) == 0 {
		return Dataset{}
	}

	points := make([]Point, 0, len(bands)+1)
	for _, b := range bands {
		points = append(points, Point{
			Attainment: b.Min,
			Payout:     PayoutAt(bands, b.Min),
		})
	}

	terminal := bands[len(bands)-1].Min.Add(decimal.NewFromInt(TerminalExtension))
	points = append(points, Point{
		Attainment: terminal,
		Payout:     PayoutAt(bands, terminal),
	})

	return Dataset{Points: points}
}

// PayoutAt computes cumulative payout at attainment a by accumulating each
// band's rate-weighted overlap, stopping at the first band at or above a.
func PayoutAt(bands []Band, a decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bands {
		if !a.GreaterThan(b.Min) {
			break
		}

		upper := a
		if b.Max != nil && b.Max.LessThan(a) {
			upper = *b.Max
		}
		total = total.Add(b.Rate.Mul(upper.Sub(b.Min)))
	}
	return total
}
