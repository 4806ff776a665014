package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/intersections/internal/config"
	"github.com/rshade/intersections/internal/logging"
	"github.com/rshade/intersections/pkg/version"
)

type logToFileKey struct{}

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	if envLevel := os.Getenv(config.EnvLogLevel); envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}
	if envFormat := os.Getenv(config.EnvLogFormat); envFormat != "" {
		loggingCfg.Format = envFormat
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")
	logging.SetGlobal(result.Logger)

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	if loadErr := config.GetGlobalConfig().LoadError(); loadErr != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(),
			"Warning: ignoring configuration file, using defaults: %v (run 'intersections config validate')\n", loadErr)
		logger.Warn().Err(loadErr).Msg("configuration file ignored")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, logToFileKey{}, result.UsingFile)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("version", version.GetVersion()).
		Bool("dev_build", version.IsDevelopment()).
		Msg("command started")

	return result
}

// logsToFile reports whether the logger in ctx writes to a file rather than
// the terminal.
func logsToFile(ctx context.Context) bool {
	v, _ := ctx.Value(logToFileKey{}).(bool)
	return v
}

// quietTerminalLogs replaces a terminal logger in ctx with one that discards
// output, so log lines cannot tear a full-screen view.
func quietTerminalLogs(ctx context.Context) context.Context {
	if logsToFile(ctx) {
		return ctx
	}
	return zerolog.New(io.Discard).WithContext(ctx)
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
