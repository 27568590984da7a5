// Package executor applies an accepted change batch through a store. One
// change's failure never aborts the rest of the batch: the executor always
// attempts the full accepted list and reports a per-path outcome, so a
// partial application is fully visible instead of silently truncated.
package executor

import (
	"github.com/arthur-debert/doot/pkg/errors"
	"github.com/arthur-debert/doot/pkg/logging"
	"github.com/arthur-debert/doot/pkg/plan"
	"github.com/arthur-debert/doot/pkg/store"
)

// Result is the outcome of applying one change.
type Result struct {
	Path string
	Kind plan.Kind
	Err  error
}

// Report collects per-change outcomes for one executed batch.
type Report struct {
	Results []Result
}

// Applied returns the number of changes that succeeded.
func (r *Report) Applied() int {
	count := 0
	for _, res := range r.Results {
		if res.Err == nil {
			count++
		}
	}
	return count
}

// Failed returns the number of changes that failed.
func (r *Report) Failed() int {
	return len(r.Results) - r.Applied()
}

// Err returns an aggregate error when any change failed, nil otherwise.
func (r *Report) Err() error {
	if failed := r.Failed(); failed > 0 {
		return errors.Newf(errors.ErrApply, "%d of %d changes failed", failed, len(r.Results))
	}
	return nil
}

// Apply materializes every non-Same change in order. There is no rollback
// across files and no mid-batch cancellation; the unit of atomicity is one
// file, provided by the store's materialization strategy.
func Apply(changes []plan.Change, st store.Store) *Report {
	logger := logging.GetLogger("executor")
	report := &Report{}

	for _, change := range changes {
		if change.Kind == plan.Same {
			continue
		}

		err := st.Materialize(change.Source, change.Destination)
		report.Results = append(report.Results, Result{
			Path: change.Path,
			Kind: change.Kind,
			Err:  err,
		})

		if err != nil {
			logger.Error().
				Err(err).
				Str("path", change.Path).
				Str("store", st.Name()).
				Msg("Change failed")
			continue
		}
		logger.Info().
			Str("path", change.Path).
			Str("kind", string(change.Kind)).
			Str("store", st.Name()).
			Msg("Change applied")
	}

	return report
}
