// Package divergence implements the Cressie-Read power-divergence family of
// goodness-of-fit statistics. The independence tester in
// adapters/stats/contingency treats this package as an opaque statistic
// provider: given observed and expected frequencies it returns a test
// statistic and its chi-square p-value.
package divergence

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/braingram/scipy/internal/errors"
)

// Family names a member of the Cressie-Read power-divergence family. The
// empty string selects the default (Pearson's chi-square).
type Family string

const (
	// Pearson is the classic chi-square statistic, lambda = 1.
	Pearson Family = "pearson"
	// LogLikelihood is the G-test statistic, the limit at lambda = 0.
	LogLikelihood Family = "log-likelihood"
	// FreemanTukey uses lambda = -1/2.
	FreemanTukey Family = "freeman-tukey"
	// ModLogLikelihood is the modified log-likelihood ratio, the limit at
	// lambda = -1.
	ModLogLikelihood Family = "mod-log-likelihood"
	// Neyman is Neyman's modified chi-square, lambda = -2.
	Neyman Family = "neyman"
	// CressieRead uses the lambda = 2/3 member recommended by Cressie and
	// Read (1984).
	CressieRead Family = "cressie-read"
)

// Default is the family used when callers pass the zero value.
const Default = Pearson

// Lambda returns the family's exponent parameter.
func (f Family) Lambda() (float64, error) {
	switch f {
	case "", Pearson:
		return 1.0, nil
	case LogLikelihood:
		return 0.0, nil
	case FreemanTukey:
		return -0.5, nil
	case ModLogLikelihood:
		return -1.0, nil
	case Neyman:
		return -2.0, nil
	case CressieRead:
		return 2.0 / 3.0, nil
	default:
		return 0, errors.UnknownFamily(string(f))
	}
}

// Relative tolerance for the observed/expected total agreement check. The
// statistic is only chi-square distributed when the totals match.
const sumRTol = 1e-8

// PowerDivergence computes the family statistic and its p-value for the
// given observed and expected frequencies, reducing over all elements.
//
// When expected is nil, the observed values are tested against a uniform
// distribution with the same total (goodness-of-fit mode). The p-value is
// the chi-square survival function at len(observed)-1-ddof degrees of
// freedom; ddof shifts the default degrees of freedom downward so callers
// that computed their own dof can pass ddof = len(observed)-1-dof.
func PowerDivergence(observed, expected []float64, ddof int, family Family) (float64, float64, error) {
	lambda, err := family.Lambda()
	if err != nil {
		return 0, 0, err
	}
	return PowerDivergenceLambda(observed, expected, ddof, lambda)
}

// PowerDivergenceLambda is PowerDivergence for an arbitrary exponent.
func PowerDivergenceLambda(observed, expected []float64, ddof int, lambda float64) (float64, float64, error) {
	if len(observed) == 0 {
		return 0, 0, errors.EmptyInput("no data; observed has size 0")
	}
	if expected == nil {
		expected = uniformExpected(observed)
	} else {
		if len(expected) != len(observed) {
			return 0, 0, errors.ShapeMismatch("observed and expected must have the same length")
		}
		if err := checkTotals(observed, expected); err != nil {
			return 0, 0, err
		}
	}

	stat := 0.0
	switch lambda {
	case 1:
		// Pearson chi-square
		for i, o := range observed {
			d := o - expected[i]
			stat += d * d / expected[i]
		}
	case 0:
		// G-test; the o == 0 term vanishes in the limit
		for i, o := range observed {
			if o != 0 {
				stat += 2 * o * math.Log(o/expected[i])
			}
		}
	case -1:
		// modified log-likelihood ratio
		for i, o := range observed {
			stat += 2 * expected[i] * math.Log(expected[i]/o)
		}
	default:
		fac := 2 / (lambda * (lambda + 1))
		for i, o := range observed {
			stat += fac * o * (math.Pow(o/expected[i], lambda) - 1)
		}
	}

	df := len(observed) - 1 - ddof
	p := 1.0
	if df > 0 {
		chiDist := distuv.ChiSquared{K: float64(df)}
		p = 1 - chiDist.CDF(stat)
	}
	return stat, p, nil
}

// uniformExpected builds the uniform null: every cell gets the mean count.
func uniformExpected(observed []float64) []float64 {
	total := 0.0
	for _, o := range observed {
		total += o
	}
	mean := total / float64(len(observed))
	expected := make([]float64, len(observed))
	for i := range expected {
		expected[i] = mean
	}
	return expected
}

// checkTotals verifies that observed and expected agree on the grand total
// within relative tolerance.
func checkTotals(observed, expected []float64) error {
	var sumObs, sumExp float64
	for _, o := range observed {
		sumObs += o
	}
	for _, e := range expected {
		sumExp += e
	}
	scale := math.Max(math.Abs(sumObs), math.Abs(sumExp))
	if scale > 0 && math.Abs(sumObs-sumExp) > sumRTol*scale {
		return errors.InvalidInput("observed and expected frequency totals must agree")
	}
	return nil
}
