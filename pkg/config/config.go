package config

import (
	"sort"

	"github.com/arthur-debert/doot/pkg/errors"
)

// SupportedVersion is the only config schema version this build accepts.
const SupportedVersion = "v1"

// Mode is the materialization strategy for a sync: copy file contents or
// symlink destinations back to the repository.
type Mode string

const (
	ModeFile Mode = "file"
	ModeLink Mode = "link"
)

// Config is the typed view of a doot.yaml (or doot.toml) file.
//
// Groups maps a group name to its resolvers: an OS tag ("nux", "mac", ...)
// to a path expression such as "~" or "$XDG_CONFIG_HOME/app". Plans map a
// plan name to the groups it covers; a nil group list means every group.
type Config struct {
	Version string                       `koanf:"version"`
	Mode    Mode                         `koanf:"mode"`
	Plans   map[string][]string          `koanf:"plans"`
	Groups  map[string]map[string]string `koanf:"groups"`
}

func (c *Config) validate() error {
	if c.Version != SupportedVersion {
		return errors.Newf(errors.ErrConfigVersion, "unsupported config version: %s", c.Version)
	}
	switch c.Mode {
	case "":
		c.Mode = ModeFile
	case ModeFile, ModeLink:
	default:
		return errors.Newf(errors.ErrConfigParse, "unsupported mode: %s", c.Mode)
	}
	return nil
}

// Group returns the resolver map of a group.
func (c *Config) Group(name string) (map[string]string, error) {
	group, ok := c.Groups[name]
	if !ok {
		return nil, errors.Newf(errors.ErrGroupNotFound, "group '%s' not found", name)
	}
	return group, nil
}

// Resolver returns the path expression a group defines for a resolver tag.
func (c *Config) Resolver(group, tag string) (string, error) {
	resolvers, err := c.Group(group)
	if err != nil {
		return "", err
	}
	expr, ok := resolvers[tag]
	if !ok {
		return "", errors.Newf(errors.ErrResolverNotFound,
			"resolver '%s' not found in group '%s'", tag, group)
	}
	return expr, nil
}

// PlanGroups returns the group names a plan covers, sorted. A plan with no
// explicit group list covers all groups.
func (c *Config) PlanGroups(plan string) ([]string, error) {
	groups, ok := c.Plans[plan]
	if !ok {
		return nil, errors.Newf(errors.ErrPlanNotFound, "plan '%s' not found", plan)
	}
	if groups == nil {
		return c.GroupNames(), nil
	}
	out := make([]string, len(groups))
	copy(out, groups)
	return out, nil
}

// GroupNames returns all group names, sorted.
func (c *Config) GroupNames() []string {
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlanNames returns all plan names, sorted.
func (c *Config) PlanNames() []string {
	names := make([]string, 0, len(c.Plans))
	for name := range c.Plans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
