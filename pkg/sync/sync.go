// Package sync builds the change plan for an import or export run: per
// group, it resolves the destination path, loads the group's ignore rules,
// scans both trees, and classifies the results. Building a plan never
// mutates the filesystem; applying it is the executor's job.
package sync

import (
	"path"
	"path/filepath"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/ignore"
	"github.com/arthur-debert/doot/pkg/logging"
	"github.com/arthur-debert/doot/pkg/plan"
	"github.com/arthur-debert/doot/pkg/resolver"
	"github.com/arthur-debert/doot/pkg/scanner"
	"github.com/arthur-debert/doot/pkg/types"
)

// IgnoreFile is the per-group ignore rule file name.
const IgnoreFile = ".dootignore"

// Direction selects which tree is the source of a sync.
type Direction string

const (
	// Import copies from the system into the dotfiles repository
	Import Direction = "import"
	// Export copies from the dotfiles repository onto the system
	Export Direction = "export"
)

// Request describes one sync invocation.
type Request struct {
	Config      *config.Config
	FS          types.FS
	Root        string // dotfiles repository root
	Direction   Direction
	ResolverTag string
	Groups      []string
}

// GroupError records a group whose sync was aborted, such as by a
// malformed ignore pattern. Other groups still take part in the plan.
type GroupError struct {
	Group string
	Err   error
}

// BuildResult is a built plan plus everything non-fatal that went wrong
// while building it.
type BuildResult struct {
	Plan        *plan.Plan
	Warnings    []types.Warning
	GroupErrors []GroupError
}

// HasErrors reports whether any group error or walk warning occurred.
func (r *BuildResult) HasErrors() bool {
	return len(r.GroupErrors) > 0 || len(r.Warnings) > 0
}

// BuildPlan resolves, scans, and classifies every requested group.
// Configuration and path-resolution failures are fatal and return an
// error before anything else happens; a bad ignore file aborts only its
// own group; unreadable files surface as warnings.
func BuildPlan(req Request) (*BuildResult, error) {
	logger := logging.GetLogger("sync")
	defer logging.LogOperationStart(logger, string(req.Direction))()

	result := &BuildResult{Plan: plan.New()}

	for _, group := range req.Groups {
		expr, err := req.Config.Resolver(group, req.ResolverTag)
		if err != nil {
			return nil, err
		}
		resolved, err := resolver.Resolve(expr)
		if err != nil {
			return nil, err
		}

		groupDir := filepath.Join(req.Root, group)

		matcher, err := ignore.Load(req.FS, filepath.Join(groupDir, IgnoreFile))
		if err != nil {
			result.GroupErrors = append(result.GroupErrors, GroupError{Group: group, Err: err})
			continue
		}

		sourceRoot, destRoot := groupDir, resolved
		if req.Direction == Import {
			sourceRoot, destRoot = resolved, groupDir
		}

		changes, warnings, err := classifyGroup(req.FS, matcher, group, groupDir, sourceRoot, destRoot)
		if err != nil {
			result.GroupErrors = append(result.GroupErrors, GroupError{Group: group, Err: err})
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Plan.AddGroup(group, changes)

		logger.Debug().
			Str("group", group).
			Str("source", sourceRoot).
			Str("destination", destRoot).
			Int("changes", len(changes)).
			Msg("Group classified")
	}

	return result, nil
}

func classifyGroup(fsys types.FS, matcher *ignore.Matcher, group, groupDir, sourceRoot, destRoot string) ([]plan.Change, []types.Warning, error) {
	sourceEntries, sourceWarnings, err := scanner.Scan(fsys, sourceRoot, matcher)
	if err != nil {
		return nil, nil, err
	}
	destEntries, destWarnings, err := scanner.Scan(fsys, destRoot, matcher)
	if err != nil {
		return nil, nil, err
	}

	// The ignore file itself stays in the repository; it is never synced
	if sourceRoot == groupDir {
		sourceEntries = dropIgnoreFile(sourceEntries)
	} else {
		destEntries = dropIgnoreFile(destEntries)
	}

	var warnings []types.Warning
	for _, w := range append(sourceWarnings, destWarnings...) {
		warnings = append(warnings, types.Warning{Path: path.Join(group, w.Path), Err: w.Err})
	}

	return plan.Classify(sourceEntries, destEntries, sourceRoot, destRoot), warnings, nil
}

func dropIgnoreFile(entries []types.FileEntry) []types.FileEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.Path != IgnoreFile {
			out = append(out, e)
		}
	}
	return out
}
