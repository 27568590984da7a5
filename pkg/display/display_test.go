package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/diff"
	"github.com/arthur-debert/doot/pkg/executor"
	"github.com/arthur-debert/doot/pkg/plan"
	"github.com/arthur-debert/doot/pkg/status"
	"github.com/arthur-debert/doot/pkg/types"
)

func TestRenderPlan(t *testing.T) {
	p := plan.New()
	p.AddGroup("bash", []plan.Change{
		{Path: ".bashrc", Kind: plan.Same},
		{Path: ".profile", Kind: plan.Create},
		{Path: ".inputrc", Kind: plan.Overwrite, TypeMismatch: true},
	})

	got := RenderPlan(p, "Export group 'bash'")

	assert.Contains(t, got, "Export group 'bash'")
	assert.Contains(t, got, "bash:")
	assert.Contains(t, got, "[✓] .bashrc (same)")
	assert.Contains(t, got, "[+] .profile (create)")
	assert.Contains(t, got, "[~] .inputrc (overwrite)")
	assert.Contains(t, got, "(type differs)")
	assert.Contains(t, got, "Summary: 1 same, 1 to create, 1 to overwrite")
}

func TestRenderPlanEmpty(t *testing.T) {
	got := RenderPlan(plan.New(), "Export group 'bash'")
	assert.Contains(t, got, "No files to Export group 'bash'.")
}

func TestRenderPlanGroupWithoutFiles(t *testing.T) {
	p := plan.New()
	p.AddGroup("empty", nil)
	p.AddGroup("bash", []plan.Change{{Path: "rc", Kind: plan.Create}})

	got := RenderPlan(p, "op")
	assert.Contains(t, got, "(no files)")
}

func TestRenderDiff(t *testing.T) {
	result := diff.Compute([]byte("A\nB\nC\n"), []byte("A\nX\nC\n"))
	got := RenderDiff("bash/.bashrc", result)

	assert.Contains(t, got, "--- bash/.bashrc (destination)")
	assert.Contains(t, got, "+++ bash/.bashrc (source)")
	assert.Contains(t, got, "- B")
	assert.Contains(t, got, "+ X")

	// Context lines carry the source-side numbering
	lines := strings.Split(got, "\n")
	var sawContext bool
	for _, l := range lines {
		if strings.Contains(l, "  A") {
			sawContext = true
		}
	}
	assert.True(t, sawContext)
}

func TestRenderDiffBinary(t *testing.T) {
	got := RenderDiff("g/blob", diff.Result{Binary: true})
	assert.Contains(t, got, "(binary content differs)")
}

func TestRenderDiffHunkSeparator(t *testing.T) {
	oldLines := make([]string, 0, 30)
	newLines := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		l := string(rune('a'+i)) + "\n"
		oldLines = append(oldLines, l)
		if i == 2 || i == 27 {
			l = strings.ToUpper(l)
		}
		newLines = append(newLines, l)
	}
	result := diff.Compute(
		[]byte(strings.Join(oldLines, "")),
		[]byte(strings.Join(newLines, "")))

	got := RenderDiff("g/f", result)
	assert.Contains(t, got, "\n───\n")
}

func TestRenderReport(t *testing.T) {
	report := &executor.Report{Results: []executor.Result{
		{Path: ".bashrc", Kind: plan.Create},
		{Path: ".profile", Kind: plan.Overwrite},
		{Path: ".inputrc", Kind: plan.Create, Err: assert.AnError},
	}}

	got := RenderReport(report)

	assert.Contains(t, got, "Created .bashrc")
	assert.Contains(t, got, "Updated .profile")
	assert.Contains(t, got, "Failed .inputrc")
	assert.Contains(t, got, "1 of 3 changes failed.")
}

func TestRenderWarnings(t *testing.T) {
	assert.Empty(t, RenderWarnings(nil))

	got := RenderWarnings([]types.Warning{{Path: "bash/locked", Err: assert.AnError}})
	assert.Contains(t, got, "1 path(s) could not be read")
	assert.Contains(t, got, "bash/locked")
}

func TestRenderList(t *testing.T) {
	cfg, err := config.Parse([]byte(`version: v1
plans:
  minimal:
    - bash
    - vim
  all:
groups:
  bash:
    nux: "~"
    mac: "~"
  vim:
    nux: "~/.vim"
`))
	require.NoError(t, err)

	got := RenderList(cfg)

	assert.Contains(t, got, "Plans")
	assert.Contains(t, got, "all (all groups)")
	assert.Contains(t, got, "minimal")
	assert.Contains(t, got, "bash, vim")
	assert.Contains(t, got, "Groups")
	assert.Contains(t, got, "mac → ~")
	assert.Contains(t, got, "nux → ~/.vim")
	assert.Contains(t, got, "├── ")
	assert.Contains(t, got, "└── ")
}

func TestRenderStatus(t *testing.T) {
	groups := []status.GroupStatus{
		{Name: "bash", State: status.StateOutOfSync, Files: []status.FileStatus{
			{Path: ".bashrc", State: status.FileModified},
		}},
		{Name: "vim", State: status.StateInSync},
		{Name: "mac-only", State: status.StateSkipped},
	}
	plans := []status.PlanStatus{{Name: "shells", State: status.StateOutOfSync}}

	got := RenderStatus(groups, plans, false)
	assert.Contains(t, got, "~ bash")
	assert.Contains(t, got, "✓ vim")
	assert.Contains(t, got, "- mac-only")
	assert.Contains(t, got, "~ shells")
	assert.NotContains(t, got, ".bashrc")

	got = RenderStatus(groups, plans, true)
	assert.Contains(t, got, "~ .bashrc")
}
