package contingency

import (
	"math"

	"github.com/braingram/scipy/domain/table"
)

// ExpectedFreq computes the expected frequencies of the observed table under
// the assumption that the variables on its axes are mutually independent:
// the product of the marginal sums divided by total^(ndim-1), the n-D
// generalization of row total x column total / grand total. For a 1-D table
// the result equals the input.
//
// A zero grand total propagates NaN; the independence tester rejects the
// degenerate cells this produces.
func ExpectedFreq(observed *table.Table) *table.Table {
	observed = observed.AsFloat()
	margsums := Margins(observed)

	// Each marginal keeps full rank with singleton axes, so the cell of
	// marginal k at full index idx is its value at idx[k]. Multiplying by
	// indexing each marginal's own axis is broadcasting with stride zero on
	// the collapsed axes.
	n := observed.Rank()
	norm := math.Pow(observed.Sum(), float64(n-1))
	expected := table.Zeros(observed.Shape())
	cells := expected.Values()
	flat := 0
	observed.Walk(func(idx []int, _ float64) {
		prod := 1.0
		for k, marg := range margsums {
			prod *= marg.Values()[idx[k]]
		}
		cells[flat] = prod / norm
		flat++
	})
	return expected
}
