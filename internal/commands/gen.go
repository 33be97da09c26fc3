package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"model-generator/internal/compiler"
	"model-generator/internal/gen"
)

// GenCmd creates and returns the 'gen' command.
func GenCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate entities, DTOs and mappers from model documents",
		Long: `Generate compiles every model document and writes the entity and DTO
files below the output root. Documents that cannot be compiled are reported
and skipped; the remaining documents are still generated. Files whose content
did not change are left untouched.

Examples:
  model-generator gen
  model-generator gen -s schemas -o internal -m github.com/acme/shop
  model-generator gen --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			results, err := compileTree(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			for i := range results {
				r := &results[i]
				logResult(logger, r)

				if r.Skipped() {
					continue
				}

				if dryRun {
					for _, f := range r.Files {
						printf(cmd.OutOrStdout(), "%s\n", f.Path())
					}

					continue
				}

				written, err := gen.WriteFiles(r.Files, cfg.OutputDir)
				if err != nil {
					return fmt.Errorf("unit %s: %w", r.UnitID, err)
				}

				for _, path := range written {
					logger.Debug("wrote file", "unit", r.UnitID, "path", path)
				}
			}

			logSummary(logger, compiler.Summarize(results))

			return nil
		},
	}

	addBuildFlags(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the files that would be written without writing them")

	return cmd
}
