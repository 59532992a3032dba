// Package testkit provides deterministic fixtures for the statistics tests:
// seeded random contingency tables and categorical column pairs with known
// association structure.
package testkit

import (
	"fmt"
	"math/rand"

	"github.com/montanaflynn/stats"

	"github.com/braingram/scipy/domain/table"
)

// TableGenerator produces reproducible test tables from a fixed seed.
type TableGenerator struct {
	rng *rand.Rand
}

// NewTableGenerator creates a generator; the same seed yields the same
// sequence of fixtures.
func NewTableGenerator(seed int64) *TableGenerator {
	return &TableGenerator{rng: rand.New(rand.NewSource(seed))}
}

// RandomCounts builds an integer-kind table of the given shape with cell
// counts drawn uniformly from [1, maxCount]. Cells start at 1 so no marginal
// sum is zero and the table is always valid test input. The generated
// fixture is summary-checked before being returned.
func (g *TableGenerator) RandomCounts(shape []int, maxCount int) (*table.Table, error) {
	if maxCount < 1 {
		return nil, fmt.Errorf("maxCount must be at least 1, got %d", maxCount)
	}
	size := 1
	for _, n := range shape {
		size *= n
	}
	counts := make([]int, size)
	for i := range counts {
		counts[i] = 1 + g.rng.Intn(maxCount)
	}
	t, err := table.NewInt(shape, counts)
	if err != nil {
		return nil, err
	}

	// Verify the fixture before handing it to a test.
	min, err := stats.Min(t.Values())
	if err != nil {
		return nil, fmt.Errorf("fixture summary failed: %w", err)
	}
	max, _ := stats.Max(t.Values())
	if min < 1 || max > float64(maxCount) {
		return nil, fmt.Errorf("fixture cells outside [1, %d]: min=%v max=%v", maxCount, min, max)
	}
	return t, nil
}

// IndependentPair returns two binary categorical columns whose 2x2 crosstab
// has all four cells equal, so the variables are exactly independent. n must
// be a multiple of 4.
func (g *TableGenerator) IndependentPair(n int) ([]string, []string, error) {
	if n <= 0 || n%4 != 0 {
		return nil, nil, fmt.Errorf("n must be a positive multiple of 4, got %d", n)
	}
	a := make([]string, n)
	b := make([]string, n)
	for i := 0; i < n; i++ {
		a[i] = []string{"x", "y"}[i%2]
		b[i] = []string{"u", "v"}[(i/2)%2]
	}
	return a, b, nil
}

// AssociatedPair returns two binary categorical columns that determine each
// other completely, so any association coefficient is 1 without correction.
func (g *TableGenerator) AssociatedPair(n int) ([]string, []string, error) {
	if n <= 0 || n%2 != 0 {
		return nil, nil, fmt.Errorf("n must be a positive multiple of 2, got %d", n)
	}
	a := make([]string, n)
	b := make([]string, n)
	for i := 0; i < n; i++ {
		a[i] = []string{"x", "y"}[i%2]
		b[i] = []string{"u", "v"}[i%2]
	}
	return a, b, nil
}

// ShuffledColumn returns a seeded random categorical column over the given
// levels.
func (g *TableGenerator) ShuffledColumn(n int, levels []string) ([]string, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels cannot be empty")
	}
	col := make([]string, n)
	for i := range col {
		col[i] = levels[g.rng.Intn(len(levels))]
	}
	return col, nil
}
