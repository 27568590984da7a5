package commands

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/display"
	"github.com/arthur-debert/doot/pkg/errors"
	"github.com/arthur-debert/doot/pkg/status"
	"github.com/arthur-debert/doot/pkg/types"
)

// StatusOptions carries everything a status run needs.
type StatusOptions struct {
	Config      *config.Config
	FS          types.FS
	Out         io.Writer
	Root        string
	ResolverTag string

	// ShowFiles lists per-file states under each group
	ShowFiles bool

	// AsYAML emits machine-readable output instead of the tree view
	AsYAML bool
}

// statusReport is the YAML shape of a status run.
type statusReport struct {
	Groups []status.GroupStatus `yaml:"groups"`
	Plans  []status.PlanStatus  `yaml:"plans,omitempty"`
}

// RunStatus checks every group and plan against the system and prints the
// result. Status is advisory: an out-of-sync group is reported, not an
// error.
func RunStatus(opts StatusOptions) error {
	checker := status.NewChecker(opts.Config, opts.FS, opts.Root, opts.ResolverTag)

	groups, err := checker.CheckAllGroups()
	if err != nil {
		return err
	}
	plans := checker.CheckAllPlans(groups)

	if opts.AsYAML {
		data, err := yaml.Marshal(statusReport{Groups: groups, Plans: plans})
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode status")
		}
		fmt.Fprint(opts.Out, string(data))
		return nil
	}

	fmt.Fprint(opts.Out, display.RenderStatus(groups, plans, opts.ShowFiles))
	return nil
}
