package cli

import (
	"context"

	"github.com/rshade/intersections/internal/adapter"
	"github.com/rshade/intersections/internal/config"
	"github.com/rshade/intersections/internal/dataset"
	"github.com/rshade/intersections/internal/logging"
)

// datasetPaths returns the files named on the command line, else the
// configured default dataset, else nothing (the built-in sample).
func datasetPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if path := config.GetDatasetPath(); path != "" {
		return []string{path}
	}
	return nil
}

// loadDataset loads paths, or the built-in sample when paths is empty.
func loadDataset(ctx context.Context, paths []string) (*adapter.Dataset, error) {
	log := logging.FromContext(ctx)

	if len(paths) == 0 {
		log.Debug().Ctx(ctx).Str("component", "cli").Msg("no dataset files, using built-in sample")
		return dataset.Sample(), nil
	}

	ds, err := dataset.LoadAll(ctx, paths...)
	if err != nil {
		log.Error().Ctx(ctx).Str("component", "cli").Err(err).Strs("paths", paths).Msg("dataset load failed")
		return nil, err
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Strs("paths", paths).
		Int("item_count", ds.Len()).
		Msg("dataset loaded")
	return ds, nil
}
