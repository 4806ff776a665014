package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/intersections/internal/config"
)

// errConfigExists is returned by config init when a file is already present
// and overwriting was neither forced nor confirmed.
var errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $INTERSECTIONS_HOME/config.yaml (default ~/.intersections/config.yaml)
with default values. An existing file is only replaced with --force, or after
confirmation when running in a terminal.`,
		Example: `  # Create configuration
  intersections config init

  # Create configuration, overwriting existing
  intersections config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force, isTerminal(os.Stdin))
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force, interactive bool) error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists and force isn't set
	if !force {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			answer := confirm(cmd.ErrOrStderr(), cmd.InOrStdin(), interactive,
				fmt.Sprintf("Overwrite %s with default values?", path))
			if !answer.Accepted {
				return errConfigExists
			}
		case !os.IsNotExist(statErr):
			return fmt.Errorf("cannot access config path %s: %w", path, statErr)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info().Ctx(cmd.Context()).Str("path", path).Msg("configuration initialized")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", path)
	return nil
}
