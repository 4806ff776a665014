package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/intersections/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax
- Schema version compatibility (^1)
- List buffer size range
- Logging level and format names`,
		Example: `  # Validate current configuration
  intersections config validate

  # Validate and show detailed information
  intersections config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cmd.Printf("No configuration file at %s, defaults apply\n", path)
		cfg = config.Default()
	case err != nil:
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	// The effective config includes --config overlays and environment overrides.
	if err = config.GetGlobalConfig().Validate(); err != nil {
		return fmt.Errorf("effective configuration is invalid: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Schema version: %s\n", cfg.SchemaVersion)
	cmd.Printf("  List title: %s\n", cfg.List.Title)
	cmd.Printf("  Buffer size: %d\n", cfg.List.BufferSize)
	cmd.Printf("  Vim keys: %t\n", cfg.List.VimKeys)
	if cfg.Dataset.Path != "" {
		cmd.Printf("  Default dataset: %s\n", cfg.Dataset.Path)
	} else {
		cmd.Println("  Default dataset: built-in sample")
	}
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
