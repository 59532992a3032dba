package contingency

import (
	"math"

	"github.com/braingram/scipy/adapters/stats/divergence"
	"github.com/braingram/scipy/domain/stats"
	"github.com/braingram/scipy/domain/table"
	"github.com/braingram/scipy/internal/errors"
)

// Association measures the degree of association between the two nominal
// variables of a 2-D contingency table of integer counts, as a value in
// [0, 1]: 0 means no association, 1 perfect association. The method selects
// the normalization (Cramer's V, Tschuprow's T, or Pearson's contingency
// coefficient); an empty method defaults to Cramer's V. The correction flag
// and divergence family are forwarded to the independence test.
//
// Tables that are not integer-kind fail with WRONG_DTYPE and tables that are
// not exactly 2-D with WRONG_RANK; an unrecognized method fails with
// UNKNOWN_METHOD.
func Association(observed *table.Table, method stats.AssociationMethod, correction bool, family divergence.Family) (float64, error) {
	if observed.Kind() != table.KindInt {
		return 0, errors.WrongDtype("observed must be an integer array")
	}
	if observed.Rank() != 2 {
		return 0, errors.WrongRank("method only accepts 2d arrays")
	}
	if method == "" {
		method = stats.AssociationCramer
	}

	result, err := IndependenceTest(observed, correction, family)
	if err != nil {
		return 0, err
	}

	phi2 := result.Statistic / observed.Sum()
	nRows := observed.Dim(0)
	nCols := observed.Dim(1)

	var value float64
	switch method {
	case stats.AssociationCramer:
		value = phi2 / math.Min(float64(nCols-1), float64(nRows-1))
	case stats.AssociationTschuprow:
		value = phi2 / math.Sqrt(float64((nRows-1)*(nCols-1)))
	case stats.AssociationPearson:
		value = phi2 / (1 + phi2)
	default:
		return 0, errors.UnknownMethod(string(method))
	}

	return math.Sqrt(value), nil
}
