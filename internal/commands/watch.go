package commands

import (
	"time"

	"github.com/spf13/cobra"

	"model-generator/internal/compiler"
	"model-generator/internal/watch"
)

// WatchCmd creates and returns the 'watch' command.
func WatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Generate once, then regenerate documents as they change",
		Long: `Watch runs a full generation and then keeps watching the schema directory.
Created or modified documents are recompiled after a short quiet period;
documents whose content did not change are not recompiled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			w, err := watch.New(compiler.New(cfg.Generator()), watch.Options{
				Root:      cfg.SchemaDir,
				Pattern:   cfg.Pattern,
				OutputDir: cfg.OutputDir,
				Workers:   cfg.Workers,
				CacheSize: cfg.CacheSize,
				Debounce:  debounce,
				Logger:    logger,
				OnResult: func(r compiler.Result) {
					logResult(logger, &r)

					if !r.Skipped() {
						logger.Info("compiled", "unit", r.UnitID, "model", r.Model.Name)
					}
				},
			})
			if err != nil {
				return err
			}

			if err := w.Build(cmd.Context()); err != nil {
				return err
			}

			return w.Run(cmd.Context())
		},
	}

	addBuildFlags(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before changed documents are compiled")

	return cmd
}
