package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/intersections/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		SchemaVersion: "1.0.0",
		List: config.ListConfig{
			Title:      "Base",
			BufferSize: 5,
			VimKeys:    true,
		},
		Dataset: config.DatasetConfig{Path: "base.txt"},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
list:
  title: Overlay
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	// The whole list section is replaced, so unset fields become zero values.
	assert.Equal(t, "Overlay", target.List.Title)
	assert.Equal(t, 0, target.List.BufferSize)
	assert.False(t, target.List.VimKeys)

	assert.Equal(t, "base.txt", target.Dataset.Path)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestShallowMergeYAML_MultipleKeys(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
dataset:
  path: other.yaml
logging:
  level: debug
  format: console
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "other.yaml", target.Dataset.Path)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "console", target.Logging.Format)
	assert.Equal(t, "Base", target.List.Title)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "colors:\n  accent: red\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "# only a comment\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.ShallowMergeYAML(nil, "x"))
	require.Error(t, config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "list: [")))

	err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "schema_version: 3.0.0\n"))
	assert.ErrorIs(t, err, config.ErrIncompatibleSchema)
}
