package contingency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braingram/scipy/domain/stats"
	"github.com/braingram/scipy/domain/table"
	"github.com/braingram/scipy/internal/errors"
	"github.com/braingram/scipy/internal/testkit"
)

func obs4x2(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.NewInt([]int{4, 2}, []int{100, 150, 203, 322, 420, 700, 320, 210})
	require.NoError(t, err)
	return tbl
}

func TestAssociation4x2(t *testing.T) {
	tests := []struct {
		method stats.AssociationMethod
		want   float64
	}{
		{stats.AssociationCramer, 0.18617813077483678},
		{stats.AssociationPearson, 0.18303298140595667},
		{stats.AssociationTschuprow, 0.14146478765062995},
	}
	for _, test := range tests {
		got, err := Association(obs4x2(t), test.method, false, "")
		require.NoError(t, err, "method %s", test.method)
		assert.InDelta(t, test.want, got, 1e-10, "method %s", test.method)
	}
}

func TestAssociationDefaultsToCramer(t *testing.T) {
	cramer, err := Association(obs4x2(t), stats.AssociationCramer, false, "")
	require.NoError(t, err)

	got, err := Association(obs4x2(t), "", false, "")
	require.NoError(t, err)
	assert.Equal(t, cramer, got)
}

// Cramer's V and Tschuprow's T share the same normalization on square
// tables, so they must coincide there.
func TestAssociationCramerTschuprowCoincideOnSquare(t *testing.T) {
	gen := testkit.NewTableGenerator(17)
	for _, n := range []int{2, 3, 4} {
		observed, err := gen.RandomCounts([]int{n, n}, 60)
		require.NoError(t, err)

		cramer, err := Association(observed, stats.AssociationCramer, false, "")
		require.NoError(t, err)
		tschuprow, err := Association(observed, stats.AssociationTschuprow, false, "")
		require.NoError(t, err)
		assert.InDelta(t, cramer, tschuprow, 1e-12, "%dx%d table", n, n)
	}
}

func TestAssociationScoresAreBounded(t *testing.T) {
	gen := testkit.NewTableGenerator(19)
	methods := []stats.AssociationMethod{
		stats.AssociationCramer, stats.AssociationTschuprow, stats.AssociationPearson,
	}
	for trial := 0; trial < 10; trial++ {
		observed, err := gen.RandomCounts([]int{3, 4}, 80)
		require.NoError(t, err)
		for _, method := range methods {
			got, err := Association(observed, method, false, "")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0.0, "method %s", method)
			assert.LessOrEqual(t, got, 1.0, "method %s", method)
		}
	}
}

func TestAssociationWrongRank(t *testing.T) {
	oneD, err := table.NewInt([]int{4}, []int{1, 2, 3, 4})
	require.NoError(t, err)
	threeD, err := table.NewInt([]int{2, 2, 2}, []int{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	for _, observed := range []*table.Table{oneD, threeD} {
		_, err := Association(observed, stats.AssociationCramer, false, "")
		require.Error(t, err)
		assert.Equal(t, errors.CodeWrongRank, errors.GetCode(err))
		assert.Contains(t, err.Error(), "only accepts 2d arrays")
	}
}

func TestAssociationWrongDtype(t *testing.T) {
	observed, err := table.New([]int{2, 2}, []float64{1.5, 2.5, 3.5, 4.5})
	require.NoError(t, err)

	_, err = Association(observed, stats.AssociationCramer, false, "")
	require.Error(t, err)
	assert.Equal(t, errors.CodeWrongDtype, errors.GetCode(err))
}

func TestAssociationUnknownMethod(t *testing.T) {
	_, err := Association(obs4x2(t), stats.AssociationMethod("phi"), false, "")
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnknownMethod, errors.GetCode(err))
}
