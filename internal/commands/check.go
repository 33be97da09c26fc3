package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"model-generator/internal/compiler"
)

// CheckCmd creates and returns the 'check' command.
func CheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile model documents and report problems without writing files",
		Long: `Check compiles every model document and reports skipped documents and
diagnostics. With --strict it fails when any document is skipped or any
warning is reported, which makes it suitable for CI.`,
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
				logResult(logger, &results[i])
			}

			summary := compiler.Summarize(results)
			logSummary(logger, summary)

			if strict && (summary.Skipped > 0 || summary.Warnings > 0) {
				return fmt.Errorf("check failed: %d skipped, %d warnings", summary.Skipped, summary.Warnings)
			}

			return nil
		},
	}

	addBuildFlags(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on skipped documents and warnings")

	return cmd
}
