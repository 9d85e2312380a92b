package commands

import (
	"github.com/guu8hc/ecuckit"
	"github.com/guu8hc/ecuckit/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the ecuckit CLI
func RootCmd() *cobra.Command {
	var verbose bool
	var configDir string

	cmd := &cobra.Command{
		Use:   "ecuckit",
		Short: "AUTOSAR ECU configuration parameter-definition toolkit",
		Long: `Ecuckit reads AUTOSAR ECUC parameter definitions (ARXML) and makes
them usable outside authoring tools:

• Render definition hierarchies as ASCII trees (tree)
• Convert definitions to descriptive or compact JSON (convert)
• Find and search definitions by keyword (find, search)
• Scaffold ECUC configuration skeletons (configure)
• Serve definition knowledge to MCP clients (serve)

Settings live in ecuckit.yml; run 'ecuckit init' to scaffold one.`,
		Version: ecuckit.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVar(&configDir, "config", "", "Directory containing ecuckit.yml (defaults to the working directory)")

	return cmd
}
