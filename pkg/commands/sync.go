package commands

import (
	"fmt"
	"io"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/diff"
	"github.com/arthur-debert/doot/pkg/display"
	"github.com/arthur-debert/doot/pkg/errors"
	"github.com/arthur-debert/doot/pkg/executor"
	"github.com/arthur-debert/doot/pkg/logging"
	"github.com/arthur-debert/doot/pkg/plan"
	"github.com/arthur-debert/doot/pkg/prompt"
	"github.com/arthur-debert/doot/pkg/store"
	"github.com/arthur-debert/doot/pkg/sync"
	"github.com/arthur-debert/doot/pkg/types"
)

// TargetKind selects whether a sync operates on one group or a plan.
type TargetKind string

const (
	TargetGroup TargetKind = "group"
	TargetPlan  TargetKind = "plan"
)

// SyncOptions carries everything an import or export run needs.
type SyncOptions struct {
	Config      *config.Config
	FS          types.FS
	Out         io.Writer
	Root        string
	Direction   sync.Direction
	Target      TargetKind
	Name        string
	ResolverTag string

	// Yes skips the confirmation prompt
	Yes bool

	// Decide overrides the interactive prompt; tests use this
	Decide func() (prompt.Decision, error)
}

// RunSync builds, previews, confirms, and applies one sync. The returned
// error is non-nil whenever anything went wrong, including per-file
// failures in an otherwise successful run, so the process exit status
// reflects partial failure.
func RunSync(opts SyncOptions) error {
	logger := logging.GetLogger("commands.sync")

	groups, err := resolveTarget(opts.Config, opts.Target, opts.Name)
	if err != nil {
		return err
	}

	result, err := sync.BuildPlan(sync.Request{
		Config:      opts.Config,
		FS:          opts.FS,
		Root:        opts.Root,
		Direction:   opts.Direction,
		ResolverTag: opts.ResolverTag,
		Groups:      groups,
	})
	if err != nil {
		return err
	}

	operation := operationLabel(opts.Direction, opts.Target, opts.Name)
	fmt.Fprint(opts.Out, display.RenderPlan(result.Plan, operation))
	for _, ge := range result.GroupErrors {
		fmt.Fprintf(opts.Out, "Group '%s' skipped: %v\n", ge.Group, ge.Err)
	}
	fmt.Fprint(opts.Out, display.RenderWarnings(result.Warnings))

	if !result.Plan.HasChanges() {
		fmt.Fprintln(opts.Out, "\nNothing to do.")
		return buildError(result, nil)
	}

	st := store.New(opts.Config.Mode, opts.FS)

	proceed, err := confirm(opts, result.Plan, st)
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Fprintln(opts.Out, "\nAborted.")
		logger.Info().Str("operation", operation).Msg("Aborted by user")
		return buildError(result, nil)
	}

	fmt.Fprintln(opts.Out, "\nExecuting...")
	report := executor.Apply(flatten(result.Plan), st)
	fmt.Fprint(opts.Out, display.RenderReport(report))
	if report.Failed() == 0 {
		fmt.Fprintln(opts.Out, "\nDone!")
	}

	return buildError(result, report)
}

// confirm runs the decision loop. ShowDiff renders every non-Same change
// and asks again; diffs are computed here, on demand, never during
// classification.
func confirm(opts SyncOptions, p *plan.Plan, st store.Store) (bool, error) {
	if opts.Yes {
		return true, nil
	}
	decide := opts.Decide
	if decide == nil {
		decide = prompt.Ask
	}

	for {
		decision, err := decide()
		if err != nil {
			return false, err
		}
		switch decision {
		case prompt.Proceed:
			return true, nil
		case prompt.Abort:
			return false, nil
		case prompt.ShowDiff:
			if err := showDiffs(opts, p, st); err != nil {
				return false, err
			}
		}
	}
}

func showDiffs(opts SyncOptions, p *plan.Plan, st store.Store) error {
	for _, group := range p.Groups {
		for _, change := range group.Changes {
			if change.Kind == plan.Same {
				continue
			}

			var oldContent []byte
			if st.Exists(change.Destination) {
				var err error
				oldContent, err = st.Read(change.Destination)
				if err != nil {
					return err
				}
			}
			newContent, err := st.Read(change.Source)
			if err != nil {
				return err
			}

			label := group.Group + "/" + change.Path
			fmt.Fprint(opts.Out, display.RenderDiff(label, diff.Compute(oldContent, newContent)))
			fmt.Fprintln(opts.Out)
		}
	}
	return nil
}

func resolveTarget(cfg *config.Config, target TargetKind, name string) ([]string, error) {
	if target == TargetPlan {
		return cfg.PlanGroups(name)
	}
	if _, err := cfg.Group(name); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func operationLabel(direction sync.Direction, target TargetKind, name string) string {
	action := "Export"
	if direction == sync.Import {
		action = "Import"
	}
	return fmt.Sprintf("%s %s '%s'", action, target, name)
}

func flatten(p *plan.Plan) []plan.Change {
	var changes []plan.Change
	for _, group := range p.Groups {
		changes = append(changes, group.Changes...)
	}
	return changes
}

// buildError folds group errors, walk warnings, and apply failures into
// the run's final error so the exit status reflects them.
func buildError(result *sync.BuildResult, report *executor.Report) error {
	if report != nil {
		if err := report.Err(); err != nil {
			return err
		}
	}
	if len(result.GroupErrors) > 0 {
		return result.GroupErrors[0].Err
	}
	if len(result.Warnings) > 0 {
		return errors.Newf(errors.ErrIO, "%d path(s) could not be read", len(result.Warnings))
	}
	return nil
}
