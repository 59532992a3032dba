// Package app wires the contingency statistics into services callers can run
// over whole datasets.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/braingram/scipy/adapters/stats/contingency"
	"github.com/braingram/scipy/adapters/stats/divergence"
	"github.com/braingram/scipy/domain/core"
	"github.com/braingram/scipy/domain/dataset"
	"github.com/braingram/scipy/domain/stats"
	"github.com/braingram/scipy/internal"
	apperrors "github.com/braingram/scipy/internal/errors"
)

// SweepService scores the association of every pair of categorical columns
// in a bundle. Each pair is an independent computation with no shared state,
// so pairs run concurrently under a weighted semaphore bound.
type SweepService struct {
	sem *semaphore.Weighted
	log *internal.Logger
}

// DefaultMaxParallel bounds concurrent pair computations when the caller
// does not choose a limit.
const DefaultMaxParallel = 4

// NewSweepService creates a sweep service allowing up to maxParallel
// concurrent pair computations (DefaultMaxParallel when <= 0).
func NewSweepService(maxParallel int64) *SweepService {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	return &SweepService{
		sem: semaphore.NewWeighted(maxParallel),
		log: internal.NewDefaultLogger(),
	}
}

// SweepRequest defines the inputs for one association sweep.
type SweepRequest struct {
	Bundle     *dataset.Bundle
	Method     stats.AssociationMethod // empty means Cramer's V
	Correction bool
	Family     divergence.Family // zero value means Pearson chi-square
	SweepID    core.SweepID      // optional, generated if empty
}

// PairScore is the association record for one column pair. A pair whose
// table fails validation carries the error code instead of scores.
type PairScore struct {
	ID               core.ID          `json:"id"`
	VariableX        core.VariableKey `json:"variable_x"`
	VariableY        core.VariableKey `json:"variable_y"`
	Statistic        float64          `json:"statistic"`
	PValue           float64          `json:"p_value"`
	DegreesOfFreedom int              `json:"degrees_of_freedom"`
	Association      float64          `json:"association"`
	ErrorCode        string           `json:"error_code,omitempty"`
	CreatedAt        core.Timestamp   `json:"created_at"`
}

// SweepResult contains the complete output of an association sweep.
type SweepResult struct {
	SweepID     core.SweepID `json:"sweep_id"`
	Pairs       []PairScore  `json:"pairs"`
	Fingerprint core.Hash    `json:"fingerprint"`
	RuntimeMs   int64        `json:"runtime_ms"`
}

// Run scores every column pair in the request's bundle. Pair order in the
// result is deterministic (column order of the bundle); only a cancelled
// context or an empty bundle fails the sweep as a whole.
func (s *SweepService) Run(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	startTime := time.Now()

	if req.Bundle == nil || req.Bundle.ColumnCount() < 2 {
		return nil, apperrors.InvalidInput("sweep requires a bundle with at least two columns")
	}

	sweepID := req.SweepID
	if core.ID(sweepID).IsEmpty() {
		sweepID = core.SweepID(core.NewID())
	}

	cols := req.Bundle.Columns
	nPairs := len(cols) * (len(cols) - 1) / 2
	pairs := make([]PairScore, nPairs)
	s.log.Info("sweep %s: scoring %d column pairs", sweepID, nPairs)

	var wg sync.WaitGroup
	slot := 0
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			if err := s.sem.Acquire(ctx, 1); err != nil {
				// context cancelled; wait for in-flight pairs before failing
				wg.Wait()
				return nil, apperrors.Wrap(err, "sweep cancelled")
			}
			wg.Add(1)
			go func(slot int, x, y dataset.Column) {
				defer wg.Done()
				defer s.sem.Release(1)
				pairs[slot] = s.scorePair(x, y, req)
			}(slot, cols[i], cols[j])
			slot++
		}
	}
	wg.Wait()

	result := &SweepResult{
		SweepID:     sweepID,
		Pairs:       pairs,
		Fingerprint: fingerprint(req.Bundle, pairs),
		RuntimeMs:   time.Since(startTime).Milliseconds(),
	}
	return result, nil
}

// scorePair crosstabs one column pair and runs the independence test and
// association scorer on the resulting table.
func (s *SweepService) scorePair(x, y dataset.Column, req SweepRequest) PairScore {
	score := PairScore{
		ID:        core.NewID(),
		VariableX: x.Key,
		VariableY: y.Key,
		CreatedAt: core.Now(),
	}

	_, counts, err := contingency.Crosstab(x.Values, y.Values)
	if err != nil {
		score.ErrorCode = apperrors.GetCode(err)
		return score
	}
	if counts.Dim(0) < 2 || counts.Dim(1) < 2 {
		// a column with a single level cannot carry association
		score.ErrorCode = apperrors.CodeInvalidInput
		return score
	}

	result, err := contingency.IndependenceTest(counts, req.Correction, req.Family)
	if err != nil {
		score.ErrorCode = apperrors.GetCode(err)
		return score
	}
	score.Statistic = result.Statistic
	score.PValue = result.PValue
	score.DegreesOfFreedom = result.DegreesOfFreedom

	assoc, err := contingency.Association(counts, req.Method, req.Correction, req.Family)
	if err != nil {
		score.ErrorCode = apperrors.GetCode(err)
		return score
	}
	score.Association = assoc

	s.log.Debug("pair %s x %s: stat=%.4f p=%.4f assoc=%.4f",
		x.Key, y.Key, score.Statistic, score.PValue, score.Association)
	return score
}

// fingerprint hashes the bundle and the scored pairs into a replayability
// record for the sweep.
func fingerprint(bundle *dataset.Bundle, pairs []PairScore) core.Hash {
	data := string(bundle.Fingerprint())
	for _, p := range pairs {
		data += fmt.Sprintf("|%s:%s:%.12g:%.12g:%d:%.12g:%s",
			p.VariableX, p.VariableY, p.Statistic, p.PValue,
			p.DegreesOfFreedom, p.Association, p.ErrorCode)
	}
	return core.NewHash([]byte(data))
}
