package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/intersections/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)
	configPath := filepath.Join(home, "config.yaml")

	stdout, _, err := executeRoot(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration initialized at "+configPath)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.CurrentSchemaVersion, cfg.SchemaVersion)
	assert.Equal(t, config.DefaultBufferSize, cfg.List.BufferSize)

	_, _, err = executeRoot(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, os.WriteFile(configPath, []byte("list:\n  buffer_size: 9\n"), 0o600))
	_, _, err = executeRoot(t, "config", "init", "--force")
	require.NoError(t, err)

	cfg, err = config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBufferSize, cfg.List.BufferSize)
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := executeRoot(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "schema_version: 1.0.0")
	assert.Contains(t, stdout, "buffer_size: 5")
	assert.Contains(t, stdout, "level: error")
}

func TestConfigShow_WithOverlay(t *testing.T) {
	setupCLITest(t)
	overlay := writeFile(t, t.TempDir(), "overlay.yaml", "list:\n  title: Downtown\n  buffer_size: 9\n")

	stdout, _, err := executeRoot(t, "--config", overlay, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "title: Downtown")
	assert.Contains(t, stdout, "buffer_size: 9")
}

func TestRoot_InvalidOverlay(t *testing.T) {
	setupCLITest(t)
	overlay := writeFile(t, t.TempDir(), "overlay.yaml", "list:\n  buffer_size: 500\n")

	_, _, err := executeRoot(t, "--config", overlay, "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "applying --config")
	assert.Equal(t, config.DefaultBufferSize, config.GetListConfig().BufferSize,
		"a rejected overlay leaves the global config untouched")
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	stdout, _, err := executeRoot(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "defaults apply")
	assert.Contains(t, stdout, "Configuration is valid")
	assert.Contains(t, stdout, "Default dataset: built-in sample")

	writeFile(t, home, "config.yaml", "schema_version: 2.0.0\n")
	_, _, err = executeRoot(t, "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrIncompatibleSchema)
}

func TestRoot_Version(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "test")
}

func TestRoot_WarnsAboutIgnoredConfigFile(t *testing.T) {
	home := setupCLITest(t)
	writeFile(t, home, "config.yaml", "list: [\n")

	stdout, stderr, err := executeRoot(t, "count")
	require.NoError(t, err)
	assert.Equal(t, "16\n", stdout)
	assert.Contains(t, stderr, "Warning: ignoring configuration file")
	assert.Contains(t, stderr, "config validate")
}
