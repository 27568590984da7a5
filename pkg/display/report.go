package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/doot/pkg/executor"
	"github.com/arthur-debert/doot/pkg/plan"
	"github.com/arthur-debert/doot/pkg/style"
	"github.com/arthur-debert/doot/pkg/types"
)

// RenderReport renders the per-path outcome of an applied batch.
func RenderReport(report *executor.Report) string {
	var out strings.Builder

	for _, result := range report.Results {
		if result.Err != nil {
			out.WriteString(fmt.Sprintf("    %s %s: %v\n",
				style.ErrorStyle.Render("Failed"), result.Path, result.Err))
			continue
		}
		action := "Created"
		if result.Kind == plan.Overwrite {
			action = "Updated"
		}
		out.WriteString(fmt.Sprintf("    %s %s\n", style.CreateStyle.Render(action), result.Path))
	}

	if failed := report.Failed(); failed > 0 {
		out.WriteString("\n" + style.ErrorStyle.Render(
			fmt.Sprintf("%d of %d changes failed.", failed, len(report.Results))) + "\n")
	}

	return out.String()
}

// RenderWarnings renders walk warnings collected while building a plan.
func RenderWarnings(warnings []types.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var out strings.Builder
	out.WriteString(style.WarningStyle.Render(fmt.Sprintf("%d path(s) could not be read:", len(warnings))) + "\n")
	for _, w := range warnings {
		out.WriteString(fmt.Sprintf("  %s: %v\n", w.Path, w.Err))
	}
	return out.String()
}
