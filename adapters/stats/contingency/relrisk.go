package contingency

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/braingram/scipy/internal/errors"
)

// RelativeRiskResult holds the relative risk of a 2x2 exposure/outcome table
// and the inputs needed to derive its confidence interval.
type RelativeRiskResult struct {
	RelativeRisk float64 `json:"relative_risk"`
	ExposedCases int     `json:"exposed_cases"`
	ExposedTotal int     `json:"exposed_total"`
	ControlCases int     `json:"control_cases"`
	ControlTotal int     `json:"control_total"`
}

// RelativeRisk computes the ratio of the case rate in the exposed group to
// the case rate in the control group. Totals must be positive and case
// counts must lie in [0, total] for their group.
func RelativeRisk(exposedCases, exposedTotal, controlCases, controlTotal int) (*RelativeRiskResult, error) {
	if exposedTotal <= 0 || controlTotal <= 0 {
		return nil, errors.InvalidInput("group totals must be positive")
	}
	if exposedCases < 0 || controlCases < 0 {
		return nil, errors.NegativeValue("case counts must be nonnegative")
	}
	if exposedCases > exposedTotal || controlCases > controlTotal {
		return nil, errors.InvalidInput("case counts cannot exceed their group total")
	}

	exposedRate := float64(exposedCases) / float64(exposedTotal)
	controlRate := float64(controlCases) / float64(controlTotal)
	return &RelativeRiskResult{
		RelativeRisk: exposedRate / controlRate,
		ExposedCases: exposedCases,
		ExposedTotal: exposedTotal,
		ControlCases: controlCases,
		ControlTotal: controlTotal,
	}, nil
}

// ConfidenceInterval returns the Katz confidence interval of the relative
// risk at the given confidence level in (0, 1), using the normal
// approximation of log(RR). Zero case counts widen the affected bound to 0
// or +Inf.
func (r *RelativeRiskResult) ConfidenceInterval(confidenceLevel float64) (float64, float64, error) {
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return 0, 0, errors.InvalidInput("confidence level must be in (0, 1)")
	}
	switch {
	case r.ExposedCases == 0 && r.ControlCases == 0:
		return math.NaN(), math.NaN(), nil
	case r.ExposedCases == 0:
		return 0.0, math.NaN(), nil
	case r.ControlCases == 0:
		return math.NaN(), math.Inf(1), nil
	}

	alpha := 1 - confidenceLevel
	z := distuv.UnitNormal.Quantile(1 - alpha/2)
	se := math.Sqrt(1/float64(r.ExposedCases) - 1/float64(r.ExposedTotal) +
		1/float64(r.ControlCases) - 1/float64(r.ControlTotal))
	delta := z * se
	return r.RelativeRisk * math.Exp(-delta), r.RelativeRisk * math.Exp(delta), nil
}
