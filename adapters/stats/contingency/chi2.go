package contingency

import (
	"math"

	"github.com/braingram/scipy/adapters/stats/divergence"
	"github.com/braingram/scipy/domain/stats"
	"github.com/braingram/scipy/domain/table"
	"github.com/braingram/scipy/internal/errors"
)

// IndependenceTest performs the chi-square test of independence of the
// variables on the axes of the observed contingency table. Expected
// frequencies come from the marginal sums under the independence assumption,
// and the statistic and p-value from the selected power-divergence family
// (the zero Family value means Pearson's chi-square).
//
// When correction is true and the table has one degree of freedom, Yates'
// continuity correction is applied: each observed value moves toward its
// expected value by min(0.5, |expected-observed|).
//
// Validation failures return coded errors: NEGATIVE_VALUE for any cell below
// zero, EMPTY_INPUT for a table without cells, and DEGENERATE_EXPECTED_CELL
// when an expected frequency is exactly zero.
func IndependenceTest(observed *table.Table, correction bool, family divergence.Family) (*stats.IndependenceResult, error) {
	for _, v := range observed.Values() {
		if v < 0 {
			return nil, errors.NegativeValue("all values in observed must be nonnegative")
		}
	}
	if observed.Size() == 0 {
		return nil, errors.EmptyInput("no data; observed has size 0")
	}

	expected := ExpectedFreq(observed)
	if coord, ok := firstZeroCell(expected); ok {
		return nil, errors.DegenerateExpectedCell(coord)
	}

	dof := degreesOfFreedom(expected)
	if dof == 0 {
		// Only one nontrivial axis: expected equals observed identically,
		// so the statistic is 0 by definition and the divergence function
		// is never consulted.
		return &stats.IndependenceResult{
			Statistic:        0.0,
			PValue:           1.0,
			DegreesOfFreedom: 0,
			Expected:         expected,
		}, nil
	}

	obsCells := observed.AsFloat().Values()
	expCells := expected.Values()
	if dof == 1 && correction {
		obsCells = yatesCorrected(obsCells, expCells)
	}

	ddof := observed.Size() - 1 - dof
	statistic, p, err := divergence.PowerDivergence(obsCells, expCells, ddof, family)
	if err != nil {
		return nil, err
	}

	return &stats.IndependenceResult{
		Statistic:        statistic,
		PValue:           p,
		DegreesOfFreedom: dof,
		Expected:         expected,
	}, nil
}

// degreesOfFreedom generalizes (rows-1)(cols-1) to n dimensions.
func degreesOfFreedom(expected *table.Table) int {
	sumShape := 0
	for _, n := range expected.Shape() {
		sumShape += n
	}
	return expected.Size() - sumShape + expected.Rank() - 1
}

// firstZeroCell returns the row-major first coordinate holding an exactly
// zero cell, if any.
func firstZeroCell(t *table.Table) ([]int, bool) {
	var coord []int
	t.Walk(func(idx []int, v float64) {
		if v == 0 && coord == nil {
			coord = append([]int(nil), idx...)
		}
	})
	return coord, coord != nil
}

// yatesCorrected nudges each observed value toward its expected value by at
// most 0.5 and never past it, so cells already within 0.5 of expected land
// exactly on it rather than overshooting.
func yatesCorrected(observed, expected []float64) []float64 {
	corrected := make([]float64, len(observed))
	for i, o := range observed {
		diff := expected[i] - o
		direction := sign(diff)
		magnitude := math.Min(0.5, math.Abs(diff))
		corrected[i] = o + magnitude*direction
	}
	return corrected
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
