package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guu8hc/ecuckit/internal/discovery"
	"github.com/guu8hc/ecuckit/internal/export"
	"github.com/guu8hc/ecuckit/internal/output"
)

// FindCmd creates the find command for discovering definition files
func FindCmd() *cobra.Command {
	var root string
	var kind string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Discover parameter definition files",
		Long: `Recursively discovers parameter definition files under a root
directory, one path per line.

Kinds:
  definitions  ARXML parameter definitions (default)
  documents    converted JSON documents
  all          both

Examples:
  ecuckit find
  ecuckit find --root vendor/acme/ --kind all
  ecuckit find --kind documents --json`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadSettings(cmd)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if cmd.Flags().Changed("root") {
				cfg.Discovery.Root = root
			}

			d := discovery.New(cfg.Discovery.Root)

			var files []string
			switch kind {
			case "definitions":
				files, err = d.Definitions()
			case "documents":
				files, err = d.Documents()
			case "all":
				files, err = d.All()
			default:
				output.Error(fmt.Sprintf("Unknown kind %q, use definitions, documents, or all", kind))
				os.Exit(1)
			}
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if jsonOut {
				if files == nil {
					files = []string{}
				}
				data, err := export.Marshal(files)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return
			}

			if len(files) == 0 {
				output.Info(fmt.Sprintf("No %s found under %s", kind, cfg.Discovery.Root))
				return
			}
			output.Verbose(fmt.Sprintf("Found %d %s under %s", len(files), kind, cfg.Discovery.Root))
			for _, file := range files {
				fmt.Fprintln(cmd.OutOrStdout(), file)
			}
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Directory to discover files under")
	cmd.Flags().StringVar(&kind, "kind", "definitions", "What to look for: definitions, documents, or all")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print paths as a JSON array")

	return cmd
}
