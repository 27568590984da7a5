// Package status reports how groups and plans compare against the system
// without proposing changes: which files are in sync, modified, or not yet
// exported. It is doot's read-only counterpart to a sync plan.
package status

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/ignore"
	"github.com/arthur-debert/doot/pkg/logging"
	"github.com/arthur-debert/doot/pkg/resolver"
	"github.com/arthur-debert/doot/pkg/scanner"
	"github.com/arthur-debert/doot/pkg/sync"
	"github.com/arthur-debert/doot/pkg/types"
)

// GroupState summarizes one group against the system.
type GroupState string

const (
	StateInSync    GroupState = "in-sync"
	StateOutOfSync GroupState = "out-of-sync"
	StateNew       GroupState = "new"
	StateSkipped   GroupState = "skipped"
)

// FileState is the per-file counterpart of GroupState.
type FileState string

const (
	FileInSync   FileState = "in-sync"
	FileModified FileState = "modified"
	FileNew      FileState = "new"
)

// FileStatus is the state of one file in a group.
type FileStatus struct {
	Path  string    `yaml:"path"`
	State FileState `yaml:"state"`
}

// GroupStatus is the state of one group.
type GroupStatus struct {
	Name  string       `yaml:"name"`
	State GroupState   `yaml:"state"`
	Files []FileStatus `yaml:"files,omitempty"`
}

// PlanStatus is the folded state of one plan.
type PlanStatus struct {
	Name  string     `yaml:"name"`
	State GroupState `yaml:"state"`
}

// Checker evaluates group and plan states for one resolver tag.
type Checker struct {
	cfg  *config.Config
	fsys types.FS
	root string
	tag  string
}

// NewChecker creates a Checker rooted at the dotfiles repository.
func NewChecker(cfg *config.Config, fsys types.FS, root, tag string) *Checker {
	return &Checker{cfg: cfg, fsys: fsys, root: root, tag: tag}
}

// CheckGroup evaluates one group. A group without the checker's resolver
// tag is Skipped rather than an error, so one platform's config can be
// checked from another.
func (c *Checker) CheckGroup(name string) (GroupStatus, error) {
	expr, err := c.cfg.Resolver(name, c.tag)
	if err != nil {
		return GroupStatus{Name: name, State: StateSkipped}, nil
	}

	resolved, err := resolver.Resolve(expr)
	if err != nil {
		return GroupStatus{}, err
	}

	groupDir := filepath.Join(c.root, name)
	if _, err := c.fsys.Lstat(groupDir); err != nil {
		if os.IsNotExist(err) {
			return GroupStatus{Name: name, State: StateNew}, nil
		}
		return GroupStatus{}, err
	}

	matcher, err := ignore.Load(c.fsys, filepath.Join(groupDir, sync.IgnoreFile))
	if err != nil {
		return GroupStatus{}, err
	}

	entries, _, err := scanner.Scan(c.fsys, groupDir, matcher)
	if err != nil {
		return GroupStatus{}, err
	}

	var files []FileStatus
	hasChanges := false
	allNew := true
	for _, entry := range entries {
		if entry.Path == sync.IgnoreFile {
			continue
		}
		state := c.fileState(entry, filepath.Join(resolved, filepath.FromSlash(entry.Path)))
		switch state {
		case FileNew:
			hasChanges = true
		case FileModified:
			hasChanges = true
			allNew = false
		case FileInSync:
			allNew = false
		}
		files = append(files, FileStatus{Path: entry.Path, State: state})
	}

	state := StateOutOfSync
	switch {
	case len(files) == 0:
		state = StateNew
	case !hasChanges:
		state = StateInSync
	case allNew:
		state = StateNew
	}

	logger := logging.GetLogger("status")
	logger.Debug().
		Str("group", name).
		Str("state", string(state)).
		Int("files", len(files)).
		Msg("Group checked")

	return GroupStatus{Name: name, State: state, Files: files}, nil
}

// fileState compares a repository file against its destination. A
// destination that cannot be fingerprinted counts as Modified; status is
// advisory and must not fail on an unreadable target.
func (c *Checker) fileState(entry types.FileEntry, destination string) FileState {
	if _, err := c.fsys.Stat(destination); err != nil {
		return FileNew
	}
	fp, err := scanner.Fingerprint(c.fsys, destination)
	if err != nil || fp != entry.Fingerprint {
		return FileModified
	}
	return FileInSync
}

// CheckAllGroups evaluates every configured group, sorted by name.
func (c *Checker) CheckAllGroups() ([]GroupStatus, error) {
	var results []GroupStatus
	for _, name := range c.cfg.GroupNames() {
		result, err := c.CheckGroup(name)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// CheckPlan folds the states of a plan's groups: any out-of-sync group
// makes the plan out-of-sync, otherwise any new group makes it new; a plan
// whose groups are all skipped is skipped.
func (c *Checker) CheckPlan(name string, groups []GroupStatus) PlanStatus {
	planGroups, err := c.cfg.PlanGroups(name)
	if err != nil {
		planGroups = nil
	}

	state := StateInSync
	hasAny := false
	for _, groupName := range planGroups {
		result, ok := findGroup(groups, groupName)
		if !ok {
			continue
		}
		switch result.State {
		case StateSkipped:
			continue
		case StateOutOfSync:
			state = StateOutOfSync
			hasAny = true
		case StateNew:
			if state != StateOutOfSync {
				state = StateNew
			}
			hasAny = true
		case StateInSync:
			hasAny = true
		}
	}
	if !hasAny {
		state = StateSkipped
	}

	return PlanStatus{Name: name, State: state}
}

// CheckAllPlans folds every configured plan, sorted by name.
func (c *Checker) CheckAllPlans(groups []GroupStatus) []PlanStatus {
	var results []PlanStatus
	for _, name := range c.cfg.PlanNames() {
		results = append(results, c.CheckPlan(name, groups))
	}
	return results
}

func findGroup(groups []GroupStatus, name string) (GroupStatus, bool) {
	for _, g := range groups {
		if g.Name == name {
			return g, true
		}
	}
	return GroupStatus{}, false
}
