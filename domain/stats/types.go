// Package stats holds the result types produced by the contingency-table
// statistics in adapters/stats. All values are immutable once returned.
package stats

import (
	"github.com/braingram/scipy/domain/table"
)

// IndependenceResult is the outcome of a chi-square test of independence on
// a contingency table.
type IndependenceResult struct {
	Statistic        float64      `json:"statistic"`          // Test statistic from the chosen divergence family
	PValue           float64      `json:"p_value"`            // Probability of a statistic at least this extreme under independence
	DegreesOfFreedom int          `json:"degrees_of_freedom"` // size - sum(shape) + ndim - 1
	Expected         *table.Table `json:"-"`                  // Independence-model expected frequencies, same shape as observed
}

// AssociationMethod selects the normalization that converts a chi-square
// statistic into a bounded [0, 1] association score for a 2-D table.
type AssociationMethod string

const (
	AssociationCramer    AssociationMethod = "cramer"    // Cramer's V
	AssociationTschuprow AssociationMethod = "tschuprow" // Tschuprow's T
	AssociationPearson   AssociationMethod = "pearson"   // Pearson's contingency coefficient
)
