package contingency

import (
	"sort"

	"github.com/braingram/scipy/domain/table"
	"github.com/braingram/scipy/internal/errors"
)

// Crosstab builds a contingency table of co-occurrence counts from parallel
// categorical observation vectors. Each factor contributes one axis; the
// returned levels hold the sorted distinct values of each factor, and cell
// (i0, i1, ...) of the count table is the number of observations whose
// factor values are (levels[0][i0], levels[1][i1], ...). The table is
// integer-kind, so it feeds Association directly.
func Crosstab(factors ...[]string) ([][]string, *table.Table, error) {
	if len(factors) == 0 {
		return nil, nil, errors.InvalidInput("at least one factor is required")
	}
	nObs := len(factors[0])
	for _, f := range factors[1:] {
		if len(f) != nObs {
			return nil, nil, errors.ShapeMismatch("all factors must have the same number of observations")
		}
	}
	if nObs == 0 {
		return nil, nil, errors.EmptyInput("factors have no observations")
	}

	levels := make([][]string, len(factors))
	indexes := make([]map[string]int, len(factors))
	shape := make([]int, len(factors))
	for k, f := range factors {
		seen := make(map[string]bool)
		for _, v := range f {
			seen[v] = true
		}
		distinct := make([]string, 0, len(seen))
		for v := range seen {
			distinct = append(distinct, v)
		}
		sort.Strings(distinct)
		index := make(map[string]int, len(distinct))
		for i, v := range distinct {
			index[v] = i
		}
		levels[k] = distinct
		indexes[k] = index
		shape[k] = len(distinct)
	}

	counts := table.Zeros(shape)
	idx := make([]int, len(factors))
	for row := 0; row < nObs; row++ {
		for k, f := range factors {
			idx[k] = indexes[k][f[row]]
		}
		counts.Set(counts.At(idx...)+1, idx...)
	}

	// Counts are integral by construction; rebuild as integer-kind so the
	// association scorer accepts the table.
	intCounts := make([]int, counts.Size())
	for i, v := range counts.Values() {
		intCounts[i] = int(v)
	}
	out, err := table.NewInt(shape, intCounts)
	if err != nil {
		return nil, nil, errors.Wrap(err, "building crosstab table")
	}
	return levels, out, nil
}
