package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/guu8hc/ecuckit/internal/arxml"
	"github.com/guu8hc/ecuckit/internal/generator"
	"github.com/guu8hc/ecuckit/internal/output"
	"github.com/guu8hc/ecuckit/internal/render"
	"github.com/guu8hc/ecuckit/internal/tui"
)

// TreeCmd creates the tree command for rendering definition hierarchies
func TreeCmd() *cobra.Command {
	var details bool
	var outDir string
	var dryRun bool
	var force bool

	cmd := &cobra.Command{
		Use:   "tree <file.arxml> [file.arxml...]",
		Short: "Render parameter definitions as ASCII trees",
		Long: `Renders the container hierarchy of ARXML parameter definitions as an
ASCII tree on stdout.

The compact form shows one line per container, parameter, and
reference. With --details every node also carries its type,
multiplicity, value range, default, and description.

Examples:
  ecuckit tree com_paramdef.arxml
  ecuckit tree --details com_paramdef.arxml
  ecuckit tree --out doc/ com_paramdef.arxml nm_paramdef.arxml`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var ops []generator.Operation

			for i, path := range args {
				output.Verbose(fmt.Sprintf("Parsing %s", path))

				module, err := arxml.Parse(path)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}

				containers, parameters, references := moduleStats(module)
				output.Verbose(fmt.Sprintf("Module %s: %d containers, %d parameters, %d references",
					module.Name, containers, parameters, references))

				text := render.Compact(module)
				if details {
					text = render.Detailed(module)
				}

				if outDir != "" {
					ops = append(ops, &generator.WriteFileOp{
						Path:    treeOutputPath(outDir, path, details),
						Content: []byte(text + "\n"),
						Mode:    0644,
					})
					continue
				}

				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if len(args) > 1 {
					output.Header(path)
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)

				if w := lipgloss.Width(text); w > tui.Width() {
					output.Verbose(fmt.Sprintf("Tree is %d columns wide, terminal has %d; --out writes it to a file instead", w, tui.Width()))
				}
			}

			if len(ops) == 0 {
				return
			}

			err := generator.Execute(cmd.Context(), ops, generator.ExecuteOptions{
				DryRun: dryRun,
				Force:  force,
				Writer: cmd.OutOrStdout(),
			})
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "Include types, multiplicities, ranges, defaults, and descriptions")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Write trees into this directory instead of stdout")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview file writes without performing them")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing output files")

	return cmd
}

// treeOutputPath names the output file for a rendered tree:
// doc/ + com_paramdef.arxml becomes doc/com_paramdef_tree.txt.
func treeOutputPath(dir, source string, details bool) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	suffix := "_tree.txt"
	if details {
		suffix = "_tree_detailed.txt"
	}
	return filepath.Join(dir, stem+suffix)
}
