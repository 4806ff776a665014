package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/intersections/internal/config"
	"github.com/rshade/intersections/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the intersections CLI.
// It wires up configuration overlays, logging and tracing, and the show,
// count and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configFile string
	)

	cmd := &cobra.Command{
		Use:           "intersections",
		Short:         "Browse a list of street intersections",
		Long:          "Intersections: show an ordered list of labels in a recycling, scrollable viewport",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				if err := applyConfigOverlay(configFile); err != nil {
					return err
				}
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configFile, "config", "",
		"YAML file whose top-level sections override the configuration file")
	cmd.AddCommand(NewShowCmd(), NewCountCmd(), newConfigCmd())

	return cmd
}

// applyConfigOverlay merges the overlay onto a copy of the global config and
// installs the result. The global config is left untouched on error.
func applyConfigOverlay(path string) error {
	merged := *config.GetGlobalConfig()
	if err := config.ShallowMergeYAML(&merged, path); err != nil {
		return fmt.Errorf("applying --config %s: %w", path, err)
	}
	config.SetGlobalConfig(&merged)
	return nil
}

const rootCmdExample = `  # Browse the built-in sample list
  intersections show

  # Browse intersections from a file, one per line
  intersections show streets.txt

  # Print a page of a YAML list without the interactive viewport
  intersections show streets.yaml --plain --page 2 --page-size 20

  # Count items across several files
  intersections count north.txt south.json

  # Initialize configuration
  intersections config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
