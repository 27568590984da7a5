package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/status"
	"github.com/arthur-debert/doot/pkg/testutil"
	"github.com/arthur-debert/doot/pkg/types"
)

func statusTestSetup(t *testing.T) (*config.Config, types.FS) {
	t.Helper()
	t.Setenv("DOOT_TEST_HOME", "/home/u")

	cfg, err := config.Parse([]byte(`version: v1
plans:
  shells:
    - bash
groups:
  bash:
    nux: "$DOOT_TEST_HOME"
`))
	require.NoError(t, err)

	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/bash/.bashrc", "repo\n")
	testutil.WriteFile(t, fsys, "/home/u/.bashrc", "edited\n")
	return cfg, fsys
}

func TestRunStatusTreeOutput(t *testing.T) {
	cfg, fsys := statusTestSetup(t)
	var out bytes.Buffer

	err := RunStatus(StatusOptions{
		Config:      cfg,
		FS:          fsys,
		Out:         &out,
		Root:        "/repo",
		ResolverTag: "nux",
	})
	// Out-of-sync is advisory, not an error
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Groups")
	assert.Contains(t, out.String(), "bash")
	assert.Contains(t, out.String(), "Plans")
	assert.Contains(t, out.String(), "shells")
}

func TestRunStatusShowFiles(t *testing.T) {
	cfg, fsys := statusTestSetup(t)
	var out bytes.Buffer

	err := RunStatus(StatusOptions{
		Config:      cfg,
		FS:          fsys,
		Out:         &out,
		Root:        "/repo",
		ResolverTag: "nux",
		ShowFiles:   true,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), ".bashrc")
}

func TestRunStatusYAML(t *testing.T) {
	cfg, fsys := statusTestSetup(t)
	var out bytes.Buffer

	err := RunStatus(StatusOptions{
		Config:      cfg,
		FS:          fsys,
		Out:         &out,
		Root:        "/repo",
		ResolverTag: "nux",
		AsYAML:      true,
	})
	require.NoError(t, err)

	var report struct {
		Groups []status.GroupStatus `yaml:"groups"`
		Plans  []status.PlanStatus  `yaml:"plans"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))

	require.Len(t, report.Groups, 1)
	assert.Equal(t, "bash", report.Groups[0].Name)
	assert.Equal(t, status.StateOutOfSync, report.Groups[0].State)
	require.Len(t, report.Plans, 1)
	assert.Equal(t, "shells", report.Plans[0].Name)
	assert.Equal(t, status.StateOutOfSync, report.Plans[0].State)
}
