package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/doot/pkg/plan"
	"github.com/arthur-debert/doot/pkg/style"
)

// RenderPlan renders a sync plan for review: per-group change lists with
// status icons, then a summary count line.
func RenderPlan(p *plan.Plan, operation string) string {
	if p.IsEmpty() {
		return fmt.Sprintf("No files to %s.\n", operation)
	}

	var out strings.Builder
	out.WriteString("\n" + style.TitleStyle.Render(operation) + ":\n\n")

	for _, group := range p.Groups {
		out.WriteString("  " + style.GroupStyle.Render(group.Group) + ":\n")

		if len(group.Changes) == 0 {
			out.WriteString("    " + style.MutedStyle.Render("(no files)") + "\n")
		}
		for _, change := range group.Changes {
			icon, label := changeMarker(change.Kind)
			line := fmt.Sprintf("    [%s] %s (%s)", icon, change.Path, label)
			if change.TypeMismatch {
				line += " " + style.WarningStyle.Render("(type differs)")
			}
			out.WriteString(line + "\n")
		}
		out.WriteString("\n")
	}

	out.WriteString(fmt.Sprintf("Summary: %d same, %d to create, %d to overwrite\n",
		p.TotalCountByKind(plan.Same),
		p.TotalCountByKind(plan.Create),
		p.TotalCountByKind(plan.Overwrite)))

	return out.String()
}

func changeMarker(kind plan.Kind) (string, string) {
	switch kind {
	case plan.Create:
		return style.CreateStyle.Render("+"), style.CreateStyle.Render("create")
	case plan.Overwrite:
		return style.OverwriteStyle.Render("~"), style.OverwriteStyle.Render("overwrite")
	default:
		return style.SameStyle.Render("✓"), style.SameStyle.Render("same")
	}
}
