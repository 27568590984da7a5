package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmdStructure(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "doot", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "import")
	assert.Contains(t, names, "export")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "version")
}

func TestTargetSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, direction := range []string{"import", "export"} {
		sub, _, err := cmd.Find([]string{direction})
		require.NoError(t, err)

		var targets []string
		for _, c := range sub.Commands() {
			targets = append(targets, c.Name())
		}
		assert.Contains(t, targets, "group", direction)
		assert.Contains(t, targets, "plan", direction)
	}
}

func TestListCommandAgainstConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: v1
groups:
  bash:
    nux: "~"
`), 0644))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"list", "--config", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "bash")
	assert.Contains(t, out.String(), "nux")
}

func TestListCommandMissingConfig(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--config", filepath.Join(t.TempDir(), "absent.yaml")})

	assert.Error(t, cmd.Execute())
}

func TestStatusCommandFlagExclusion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: v1
groups: {}
`), 0644))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"status", "nux", "--files", "--yaml", "--config", path})

	assert.Error(t, cmd.Execute())
}
