package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"model-generator/internal/compiler"
	"model-generator/internal/plan"
)

// InspectCmd creates and returns the 'inspect' command.
func InspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file...]",
		Short: "Print reconciled models as YAML",
		Long: `Inspect prints the reconciled fields of each model and the assignments
of its mappers as YAML. Without arguments every document selected by the
configuration is inspected.

Examples:
  model-generator inspect schemas/person.model.xml
  model-generator inspect > models.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			var results []compiler.Result

			if len(args) == 0 {
				results, err = compileTree(cmd.Context(), cfg, logger)
				if err != nil {
					return err
				}
			} else {
				c := compiler.New(cfg.Generator())

				for _, path := range args {
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("reading %s: %w", path, err)
					}

					results = append(results, c.Compile(compiler.Unit{ID: path, Text: string(data)}))
				}
			}

			var models []*plan.Model

			for i := range results {
				r := &results[i]
				logResult(logger, r)

				if r.Model != nil {
					models = append(models, r.Model)
				}
			}

			out, err := plan.ExportYAML(models...)
			if err != nil {
				return fmt.Errorf("encoding models: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	addBuildFlags(cmd)

	return cmd
}
