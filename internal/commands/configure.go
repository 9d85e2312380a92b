package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guu8hc/ecuckit/internal/configurator"
	"github.com/guu8hc/ecuckit/internal/generator"
	"github.com/guu8hc/ecuckit/internal/output"
)

// ConfigureCmd creates the configure command for ECUC skeleton generation
func ConfigureCmd() *cobra.Command {
	var outFile string
	var dryRun bool
	var force bool

	cmd := &cobra.Command{
		Use:   "configure <definition-path> [segment=name...]",
		Short: "Scaffold an ECUC configuration skeleton",
		Long: `Builds a nested ECUC configuration skeleton from a slash-delimited
definition path and merges it into a JSON configuration file.

Each path segment becomes a typed node. A segment=name pair renames
the node after the configuration instance it describes, so one
definition can spawn several differently-named instances.

Merging is non-destructive: nodes already present in the output file
survive, and repeated runs with different names accumulate instances.

Examples:
  ecuckit configure /com/comconfig/comipdu
  ecuckit configure /com/comconfig/comipdu comipdu=ESP_19
  ecuckit configure /com/comconfig comconfig=ComConfig_1 -o ecuc/com.json`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			names, err := parseNames(args[1:])
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			skeleton := configurator.Skeleton(args[0], names)
			if len(skeleton) == 0 {
				output.Error(fmt.Sprintf("Definition path %q has no segments", args[0]))
				os.Exit(1)
			}

			ops := []generator.Operation{
				&configurator.MergeOp{Path: outFile, Skeleton: skeleton},
			}
			err = generator.Execute(cmd.Context(), ops, generator.ExecuteOptions{
				DryRun: dryRun,
				Force:  force,
				Writer: cmd.OutOrStdout(),
			})
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if !dryRun {
				output.Success(fmt.Sprintf("Configured %s in %s", args[0], outFile))
			}
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "ecuc_config.json", "Configuration file to merge the skeleton into")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without writing the file")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an output file that is not valid JSON")

	return cmd
}

// parseNames turns segment=name arguments into the instance-name map
// consumed by the skeleton builder.
func parseNames(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	names := make(map[string]string, len(args))
	for _, arg := range args {
		segment, name, found := strings.Cut(arg, "=")
		if !found || segment == "" || name == "" {
			return nil, fmt.Errorf("expected segment=name, got %q", arg)
		}
		names[segment] = name
	}
	return names, nil
}
