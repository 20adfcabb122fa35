package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitCreatesFile(t *testing.T) {
	home := t.TempDir()

	out, _, err := executeCommandInHome(t, home, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	data, err := os.ReadFile(filepath.Join(home, ".carbonlens", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_format: table")
	assert.Contains(t, string(data), "goal_kg: 1000")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCommandInHome(t, home, "config", "init")
	require.NoError(t, err)

	_, _, err = executeCommandInHome(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCommandInHome(t, home, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigValidateDefault(t *testing.T) {
	out, _, err := executeCommand(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigValidateBadFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".carbonlens")
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("output:\n  default_format: xml\n"), 0600))

	_, _, err := executeCommandInHome(t, home, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration is invalid")
}
