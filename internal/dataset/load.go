// Package dataset reads item lists from files for the list adapter.
package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/intersections/internal/adapter"
	"github.com/rshade/intersections/internal/logging"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

// ErrUnsupportedDocument is returned for YAML or JSON documents that are not a
// list of strings or a mapping with an "items" list.
var ErrUnsupportedDocument = errors.New("unsupported dataset document")

// ErrStdinRepeated is returned by LoadAll when StdinPath is named more than once.
var ErrStdinRepeated = errors.New("stdin (\"-\") can only be read once")

// Format identifies how a dataset file is decoded.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document is the mapping form accepted by YAML and JSON files.
type document struct {
	Items []string `yaml:"items" json:"items"`
}

// FormatFor picks a format from the file extension. Unknown extensions are
// read as text.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Load reads one dataset file. StdinPath reads text from os.Stdin.
func Load(ctx context.Context, path string) (*adapter.Dataset, error) {
	items, err := loadItems(ctx, path, os.Stdin)
	if err != nil {
		return nil, err
	}
	return adapter.NewDataset(items...), nil
}

// LoadAll reads every path concurrently and concatenates the items in
// argument order. With no paths it returns an empty dataset. StdinPath may
// appear at most once.
func LoadAll(ctx context.Context, paths ...string) (*adapter.Dataset, error) {
	stdinCount := 0
	for _, path := range paths {
		if path == StdinPath {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, ErrStdinRepeated
	}
	results := make([][]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			items, err := loadItems(gctx, path, os.Stdin)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := adapter.NewDataset()
	for _, items := range results {
		ds.Append(items...)
	}
	return ds, nil
}

func loadItems(ctx context.Context, path string, stdin io.Reader) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	var (
		data []byte
		err  error
	)
	if path == StdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}

	format := FormatFor(path)
	items, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}

	log.Debug().
		Str("component", "dataset").
		Str("path", path).
		Str("format", string(format)).
		Int("items", len(items)).
		Msg("dataset loaded")
	return items, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) ([]string, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON:
		return decodeJSON(data)
	default:
		return decodeText(data)
	}
}

// decodeText returns each non-blank line, trimmed.
func decodeText(data []byte) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeYAML(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := root.Decode(&items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedDocument, err)
		}
		return items, nil
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedDocument, err)
		}
		return doc.Items, nil
	default:
		return nil, fmt.Errorf("%w: expected a list or an items mapping", ErrUnsupportedDocument)
	}
}

func decodeJSON(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedDocument, err)
		}
		return items, nil
	case '{':
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedDocument, err)
		}
		return doc.Items, nil
	default:
		return nil, fmt.Errorf("%w: expected a JSON array or object", ErrUnsupportedDocument)
	}
}
