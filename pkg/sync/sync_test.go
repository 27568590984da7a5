package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/errors"
	"github.com/arthur-debert/doot/pkg/plan"
	"github.com/arthur-debert/doot/pkg/testutil"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(`version: v1
mode: file
groups:
  bash:
    nux: "$DOOT_TEST_HOME"
  vim:
    nux: "$DOOT_TEST_HOME/.vim"
`))
	require.NoError(t, err)
	return cfg
}

func TestBuildPlanExport(t *testing.T) {
	t.Setenv("DOOT_TEST_HOME", "/home/u")

	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/bash/.bashrc", "repo version\n")
	testutil.WriteFile(t, fsys, "/repo/bash/.profile", "same\n")
	testutil.WriteFile(t, fsys, "/home/u/.bashrc", "local version\n")
	testutil.WriteFile(t, fsys, "/home/u/.profile", "same\n")
	testutil.WriteFile(t, fsys, "/home/u/.local-only", "never touched\n")

	result, err := BuildPlan(Request{
		Config:      testConfig(t),
		FS:          fsys,
		Root:        "/repo",
		Direction:   Export,
		ResolverTag: "nux",
		Groups:      []string{"bash"},
	})
	require.NoError(t, err)
	assert.False(t, result.HasErrors())

	require.Len(t, result.Plan.Groups, 1)
	g := result.Plan.Groups[0]
	assert.Equal(t, "bash", g.Group)
	require.Len(t, g.Changes, 2)

	assert.Equal(t, ".bashrc", g.Changes[0].Path)
	assert.Equal(t, plan.Overwrite, g.Changes[0].Kind)
	assert.Equal(t, "/repo/bash/.bashrc", g.Changes[0].Source)
	assert.Equal(t, "/home/u/.bashrc", g.Changes[0].Destination)

	assert.Equal(t, ".profile", g.Changes[1].Path)
	assert.Equal(t, plan.Same, g.Changes[1].Kind)
}

func TestBuildPlanImport(t *testing.T) {
	t.Setenv("DOOT_TEST_HOME", "/home/u")

	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/repo/bash", 0755))
	testutil.WriteFile(t, fsys, "/home/u/.bashrc", "local\n")

	result, err := BuildPlan(Request{
		Config:      testConfig(t),
		FS:          fsys,
		Root:        "/repo",
		Direction:   Import,
		ResolverTag: "nux",
		Groups:      []string{"bash"},
	})
	require.NoError(t, err)

	require.Len(t, result.Plan.Groups, 1)
	g := result.Plan.Groups[0]
	require.Len(t, g.Changes, 1)
	assert.Equal(t, plan.Create, g.Changes[0].Kind)
	assert.Equal(t, "/home/u/.bashrc", g.Changes[0].Source)
	assert.Equal(t, "/repo/bash/.bashrc", g.Changes[0].Destination)
}

func TestBuildPlanHonorsIgnoreFile(t *testing.T) {
	t.Setenv("DOOT_TEST_HOME", "/home/u")

	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/bash/.dootignore", "*.swp\n")
	testutil.WriteFile(t, fsys, "/repo/bash/.bashrc", "x\n")
	testutil.WriteFile(t, fsys, "/repo/bash/session.swp", "scratch\n")
	require.NoError(t, fsys.MkdirAll("/home/u", 0755))

	result, err := BuildPlan(Request{
		Config:      testConfig(t),
		FS:          fsys,
		Root:        "/repo",
		Direction:   Export,
		ResolverTag: "nux",
		Groups:      []string{"bash"},
	})
	require.NoError(t, err)

	g := result.Plan.Groups[0]
	require.Len(t, g.Changes, 1)
	// Neither the ignored file nor .dootignore itself is part of the plan
	assert.Equal(t, ".bashrc", g.Changes[0].Path)
}

func TestBuildPlanMissingDestination(t *testing.T) {
	t.Setenv("DOOT_TEST_HOME", "/home/u")

	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/vim/vimrc", "set nu\n")

	result, err := BuildPlan(Request{
		Config:      testConfig(t),
		FS:          fsys,
		Root:        "/repo",
		Direction:   Export,
		ResolverTag: "nux",
		Groups:      []string{"vim"},
	})
	require.NoError(t, err)

	g := result.Plan.Groups[0]
	require.Len(t, g.Changes, 1)
	assert.Equal(t, plan.Create, g.Changes[0].Kind)
	assert.Equal(t, "/home/u/.vim/vimrc", g.Changes[0].Destination)
}

func TestBuildPlanUnknownResolverIsFatal(t *testing.T) {
	fsys := testutil.NewMemoryFS()

	_, err := BuildPlan(Request{
		Config:      testConfig(t),
		FS:          fsys,
		Root:        "/repo",
		Direction:   Export,
		ResolverTag: "windows",
		Groups:      []string{"bash"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrResolverNotFound))
}

func TestBuildPlanUnsetVariableIsFatal(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/bash/.bashrc", "x\n")

	cfg, err := config.Parse([]byte(`version: v1
groups:
  bash:
    nux: "$DOOT_TEST_UNSET_HOME"
`))
	require.NoError(t, err)

	_, err = BuildPlan(Request{
		Config:      cfg,
		FS:          fsys,
		Root:        "/repo",
		Direction:   Export,
		ResolverTag: "nux",
		Groups:      []string{"bash"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrPathResolve))
}

func TestBuildPlanBadIgnoreAbortsOnlyThatGroup(t *testing.T) {
	t.Setenv("DOOT_TEST_HOME", "/home/u")

	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/bash/.dootignore", "[unterminated\n")
	testutil.WriteFile(t, fsys, "/repo/bash/.bashrc", "x\n")
	testutil.WriteFile(t, fsys, "/repo/vim/vimrc", "y\n")

	result, err := BuildPlan(Request{
		Config:      testConfig(t),
		FS:          fsys,
		Root:        "/repo",
		Direction:   Export,
		ResolverTag: "nux",
		Groups:      []string{"bash", "vim"},
	})
	require.NoError(t, err)

	require.Len(t, result.GroupErrors, 1)
	assert.Equal(t, "bash", result.GroupErrors[0].Group)
	assert.True(t, errors.IsCode(result.GroupErrors[0].Err, errors.ErrPatternInvalid))

	// vim still made it into the plan
	require.Len(t, result.Plan.Groups, 1)
	assert.Equal(t, "vim", result.Plan.Groups[0].Group)
	assert.True(t, result.HasErrors())
}

func TestBuildPlanWarningsCarryGroupPrefix(t *testing.T) {
	t.Setenv("DOOT_TEST_HOME", "/home/u")

	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/bash/.bashrc", "x\n")
	testutil.WriteFile(t, fsys, "/repo/bash/locked", "y\n")
	fsys.WithError("/repo/bash/locked", assert.AnError)
	require.NoError(t, fsys.MkdirAll("/home/u", 0755))

	result, err := BuildPlan(Request{
		Config:      testConfig(t),
		FS:          fsys,
		Root:        "/repo",
		Direction:   Export,
		ResolverTag: "nux",
		Groups:      []string{"bash"},
	})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "bash/locked", result.Warnings[0].Path)
	assert.True(t, result.HasErrors())
}

func TestBuildPlanLinkModeReapplyIsSame(t *testing.T) {
	t.Setenv("DOOT_TEST_HOME", "/home/u")

	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/bash/.bashrc", "content\n")
	testutil.Symlink(t, fsys, "/repo/bash/.bashrc", "/home/u/.bashrc")

	result, err := BuildPlan(Request{
		Config:      testConfig(t),
		FS:          fsys,
		Root:        "/repo",
		Direction:   Export,
		ResolverTag: "nux",
		Groups:      []string{"bash"},
	})
	require.NoError(t, err)

	g := result.Plan.Groups[0]
	require.Len(t, g.Changes, 1)
	// The link already resolves to identical content
	assert.Equal(t, plan.Same, g.Changes[0].Kind)
	assert.False(t, result.Plan.HasChanges())
}
