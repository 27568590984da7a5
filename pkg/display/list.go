package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/style"
)

// RenderList renders the configured plans and groups as trees, with each
// group's resolver tags and path expressions.
func RenderList(cfg *config.Config) string {
	var out strings.Builder

	out.WriteString(style.TitleStyle.Render("Plans") + "\n")
	plans := cfg.PlanNames()
	for i, name := range plans {
		prefix, childPrefix := connectors(i == len(plans)-1)
		groups := cfg.Plans[name]
		if groups == nil {
			out.WriteString(prefix + name + " " + style.MutedStyle.Render("(all groups)") + "\n")
			continue
		}
		out.WriteString(prefix + name + "\n")
		out.WriteString(childPrefix + "└── " + strings.Join(groups, ", ") + "\n")
	}

	out.WriteString("\n" + style.TitleStyle.Render("Groups") + "\n")
	groups := cfg.GroupNames()
	for i, name := range groups {
		prefix, childPrefix := connectors(i == len(groups)-1)
		out.WriteString(prefix + name + "\n")

		resolvers := cfg.Groups[name]
		tags := make([]string, 0, len(resolvers))
		for tag := range resolvers {
			tags = append(tags, tag)
		}
		sort.Strings(tags)

		for j, tag := range tags {
			resolverPrefix := "├── "
			if j == len(tags)-1 {
				resolverPrefix = "└── "
			}
			out.WriteString(fmt.Sprintf("%s%s%s → %s\n",
				childPrefix, resolverPrefix, tag, style.PathStyle.Render(resolvers[tag])))
		}
	}

	return out.String()
}

func connectors(last bool) (prefix, childPrefix string) {
	if last {
		return "└── ", "    "
	}
	return "├── ", "│   "
}
