// Package commands implements the model-generator command line.
package commands

import (
	"github.com/spf13/cobra"
)

// Version is the model-generator release, set at build time.
var Version = "dev"

// Names of the global flags.
const (
	flagConfig  = "config"
	flagVerbose = "verbose"
)

// RootCmd creates and returns the root command for the model-generator CLI.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model-generator",
		Short: "Generate Go entities, DTOs and mappers from XML model schemas",
		Long: `model-generator compiles *.model.xml documents into Go source.

Each document declares one model and its properties. For every model two
files are generated:
  <Model>.Entity.g.go  - the entity struct
  <Model>.DTO.g.go     - the DTO struct and the mappers between both

Settings come from model-generator.yaml, MODELGEN_* environment variables
and flags, in increasing order of precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String(flagConfig, "", "Path to a config file (default ./model-generator.yaml)")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Enable debug logging")

	return cmd
}

// NewApp returns the root command with every subcommand registered.
func NewApp() *cobra.Command {
	root := RootCmd()

	root.AddCommand(GenCmd())
	root.AddCommand(CheckCmd())
	root.AddCommand(InspectCmd())
	root.AddCommand(WatchCmd())

	return root
}
