package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"model-generator/internal/compiler"
	"model-generator/internal/config"
	"model-generator/internal/discover"
)

// Names of the build flags shared by gen, check and watch.
const (
	flagSchemaDir = "schema-dir"
	flagPattern   = "pattern"
	flagOut       = "out"
	flagWorkers   = "workers"
	flagModule    = "module"
)

// flagKeys binds flag names to configuration keys.
var flagKeys = map[string]string{
	flagSchemaDir: config.KeySchemaDir,
	flagPattern:   config.KeyPattern,
	flagOut:       config.KeyOutputDir,
	flagWorkers:   config.KeyWorkers,
	flagModule:    config.KeyModule,
}

// addBuildFlags registers the flags that override configuration keys.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagSchemaDir, "s", "", "Directory searched for model documents")
	cmd.Flags().String(flagPattern, "", "Glob selecting model documents (supports **)")
	cmd.Flags().StringP(flagOut, "o", "", "Output root for generated packages")
	cmd.Flags().IntP(flagWorkers, "j", 0, "Number of documents compiled concurrently")
	cmd.Flags().StringP(flagModule, "m", "", "Go module path of the generated packages")
}

// loadConfig reads the configuration with the command's flags applied.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.New()

	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	file, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}

	return config.Load(v, file)
}

// newLogger builds the command logger. Verbose forces debug output.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	level, _ := cfg.Level()

	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// setup loads the configuration and the logger of a command.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	return cfg, newLogger(cmd, cfg), nil
}

// compileTree compiles every document selected by the configuration.
func compileTree(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]compiler.Result, error) {
	paths, err := discover.Find(cfg.SchemaDir, cfg.Pattern)
	if err != nil {
		return nil, err
	}

	logger.Debug("found documents", "root", cfg.SchemaDir, "pattern", cfg.Pattern, "count", len(paths))

	units, err := discover.Load(ctx, cfg.SchemaDir, paths)
	if err != nil {
		return nil, err
	}

	results := compiler.New(cfg.Generator()).CompileAll(ctx, units, cfg.Workers)
	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}

// logResult reports a unit's skip reason and diagnostics.
func logResult(logger *slog.Logger, r *compiler.Result) {
	if r.Skipped() {
		logger.Warn("skipped unit", "unit", r.UnitID, "reason", r.Skip.Reason.String(), "detail", r.Skip.Detail)
	}

	for _, d := range r.Diagnostics.Warnings {
		logger.Warn(d.String(), "unit", r.UnitID, "code", d.Code)
	}

	for _, d := range r.Diagnostics.Infos {
		logger.Info(d.String(), "unit", r.UnitID, "code", d.Code)
	}
}

// logSummary reports the counts of a batch.
func logSummary(logger *slog.Logger, s compiler.Summary) {
	logger.Info("done",
		"units", s.Units,
		"compiled", s.Compiled,
		"skipped", s.Skipped,
		"files", s.Files,
		"warnings", s.Warnings,
	)
}

// printf writes to the command output, ignoring write errors.
func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
