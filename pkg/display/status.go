package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/doot/pkg/status"
	"github.com/arthur-debert/doot/pkg/style"
)

// RenderStatus renders group and plan states. With showFiles, each
// non-skipped group also lists its per-file states.
func RenderStatus(groups []status.GroupStatus, plans []status.PlanStatus, showFiles bool) string {
	var out strings.Builder

	out.WriteString(style.TitleStyle.Render("Groups") + "\n")
	for _, group := range groups {
		out.WriteString(fmt.Sprintf("  %s %s\n", stateMarker(group.State), group.Name))
		if !showFiles || group.State == status.StateSkipped {
			continue
		}
		for _, file := range group.Files {
			out.WriteString(fmt.Sprintf("      %s %s\n", fileMarker(file.State), file.Path))
		}
	}

	if len(plans) > 0 {
		out.WriteString("\n" + style.TitleStyle.Render("Plans") + "\n")
		for _, p := range plans {
			out.WriteString(fmt.Sprintf("  %s %s\n", stateMarker(p.State), p.Name))
		}
	}

	return out.String()
}

func stateMarker(state status.GroupState) string {
	switch state {
	case status.StateInSync:
		return style.SameStyle.Render("✓")
	case status.StateOutOfSync:
		return style.OverwriteStyle.Render("~")
	case status.StateNew:
		return style.CreateStyle.Render("+")
	default:
		return style.MutedStyle.Render("-")
	}
}

func fileMarker(state status.FileState) string {
	switch state {
	case status.FileInSync:
		return style.SameStyle.Render("✓")
	case status.FileModified:
		return style.OverwriteStyle.Render("~")
	default:
		return style.CreateStyle.Render("+")
	}
}
