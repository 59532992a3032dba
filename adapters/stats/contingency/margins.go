// Package contingency analyzes n-dimensional contingency tables: marginal
// sums, independence-model expected frequencies, the chi-square test of
// independence, nominal-association coefficients, table construction from
// categorical observations, and relative risk.
package contingency

import (
	"github.com/braingram/scipy/domain/table"
)

// Margins returns the marginal sums of the table, one per axis. Margins(t)[k]
// is t summed over every axis except k; it keeps the rank of t, with every
// axis except k collapsed to length 1, so the marginals combine elementwise
// against the full table without any realignment.
func Margins(t *table.Table) []*table.Table {
	n := t.Rank()
	margsums := make([]*table.Table, n)
	for k := 0; k < n; k++ {
		sums := make([]float64, t.Dim(k))
		t.Walk(func(idx []int, v float64) {
			sums[idx[k]] += v
		})
		shape := make([]int, n)
		for j := range shape {
			shape[j] = 1
		}
		shape[k] = t.Dim(k)
		marg, _ := table.New(shape, sums)
		margsums[k] = marg
	}
	return margsums
}
