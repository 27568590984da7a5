package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/doot/pkg/diff"
	"github.com/arthur-debert/doot/pkg/style"
)

// diffContext is how many unchanged lines frame each run of changes.
const diffContext = 3

// RenderDiff renders one file's edit script. Deleted lines carry the
// destination's numbering, inserted lines the source's; the two counters
// diverge after the first insert or delete and are tracked per side.
func RenderDiff(label string, result diff.Result) string {
	var out strings.Builder

	out.WriteString(style.DiffDeleteStyle.Render(fmt.Sprintf("--- %s (destination)", label)) + "\n")
	out.WriteString(style.DiffInsertStyle.Render(fmt.Sprintf("+++ %s (source)", label)) + "\n")
	out.WriteString(style.MutedStyle.Render(strings.Repeat("─", 60)) + "\n")

	if result.Binary {
		out.WriteString(style.MutedStyle.Render("(binary content differs)") + "\n")
		return out.String()
	}

	for i, hunk := range result.Hunks(diffContext) {
		if i > 0 {
			out.WriteString(style.MutedStyle.Render("───") + "\n")
		}
		for _, line := range hunk {
			out.WriteString(renderDiffLine(line))
		}
	}

	return out.String()
}

func renderDiffLine(line diff.Line) string {
	var num int
	var sign, text string
	switch line.Op {
	case diff.OpDelete:
		num = line.OldLine
		sign = style.DiffDeleteStyle.Render("-")
		text = style.DiffDeleteStyle.Render(strings.TrimSuffix(line.Text, "\n"))
	case diff.OpInsert:
		num = line.NewLine
		sign = style.DiffInsertStyle.Render("+")
		text = style.DiffInsertStyle.Render(strings.TrimSuffix(line.Text, "\n"))
	default:
		num = line.NewLine
		sign = " "
		text = style.DiffContextStyle.Render(strings.TrimSuffix(line.Text, "\n"))
	}
	return fmt.Sprintf("%s %s %s\n", style.MutedStyle.Render(fmt.Sprintf("%4d", num)), sign, text)
}
