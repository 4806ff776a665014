package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/intersections/internal/dataset"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, dataset.FormatYAML, dataset.FormatFor("a.yaml"))
	assert.Equal(t, dataset.FormatYAML, dataset.FormatFor("a.YML"))
	assert.Equal(t, dataset.FormatJSON, dataset.FormatFor("a.json"))
	assert.Equal(t, dataset.FormatText, dataset.FormatFor("a.txt"))
	assert.Equal(t, dataset.FormatText, dataset.FormatFor("-"))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		format dataset.Format
		input  string
		want   []string
	}{
		{
			name:   "text skips blank lines and trims",
			format: dataset.FormatText,
			input:  "Main & 1st\n\n  Elm & 2nd  \n",
			want:   []string{"Main & 1st", "Elm & 2nd"},
		},
		{
			name:   "yaml sequence",
			format: dataset.FormatYAML,
			input:  "- Main & 1st\n- Main & 1st\n",
			want:   []string{"Main & 1st", "Main & 1st"},
		},
		{
			name:   "yaml items mapping",
			format: dataset.FormatYAML,
			input:  "items:\n  - A\n  - B\n",
			want:   []string{"A", "B"},
		},
		{
			name:   "empty yaml",
			format: dataset.FormatYAML,
			input:  "",
			want:   nil,
		},
		{
			name:   "json array",
			format: dataset.FormatJSON,
			input:  `["A", "B"]`,
			want:   []string{"A", "B"},
		},
		{
			name:   "json object",
			format: dataset.FormatJSON,
			input:  `{"items": ["X"]}`,
			want:   []string{"X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dataset.Decode([]byte(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Unsupported(t *testing.T) {
	_, err := dataset.Decode([]byte("just a scalar"), dataset.FormatYAML)
	assert.ErrorIs(t, err, dataset.ErrUnsupportedDocument)

	_, err = dataset.Decode([]byte("- [nested]\n"), dataset.FormatYAML)
	assert.ErrorIs(t, err, dataset.ErrUnsupportedDocument)

	_, err = dataset.Decode([]byte(`42`), dataset.FormatJSON)
	assert.ErrorIs(t, err, dataset.ErrUnsupportedDocument)

	_, err = dataset.Decode([]byte(`[1, 2]`), dataset.FormatJSON)
	assert.ErrorIs(t, err, dataset.ErrUnsupportedDocument)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.txt", "Main & 1st\nElm & 2nd\n")

	ds, err := dataset.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Main & 1st", "Elm & 2nd"}, ds.Items())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "loading dataset")
}

func TestLoadAll_PreservesArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "A1\nA2\n")
	b := writeFile(t, dir, "b.yaml", "- B1\n")
	c := writeFile(t, dir, "c.json", `["C1", "C2"]`)

	ds, err := dataset.LoadAll(context.Background(), a, b, c)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2", "B1", "C1", "C2"}, ds.Items())
}

func TestLoadAll_Empty(t *testing.T) {
	ds, err := dataset.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestLoadAll_OneFailureFailsAll(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "A\n")

	_, err := dataset.LoadAll(context.Background(), a, filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dataset.Load(ctx, "ignored.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSample(t *testing.T) {
	first := dataset.Sample()
	require.Positive(t, first.Len())
	assert.Equal(t, "Main & 1st", first.At(0))

	first.Append("extra")
	assert.NotEqual(t, first.Len(), dataset.Sample().Len(), "Sample must return independent datasets")
}

func TestLoadAll_StdinNamedTwice(t *testing.T) {
	_, err := dataset.LoadAll(context.Background(), dataset.StdinPath, dataset.StdinPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrStdinRepeated)
}
