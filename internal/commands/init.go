package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/guu8hc/ecuckit/internal/config"
	"github.com/guu8hc/ecuckit/internal/generator"
	"github.com/guu8hc/ecuckit/internal/mcpserver"
	"github.com/guu8hc/ecuckit/internal/output"
)

// settingsHeader explains the scaffolded file to people opening it.
const settingsHeader = `# ecuckit settings.
# Every key can be overridden with an ECUCKIT_* environment variable,
# e.g. ECUCKIT_SERVER_PORT=9000 or ECUCKIT_SEARCH_ENGINE=levenshtein.
`

// InitCmd creates the init command for scaffolding project settings
func InitCmd() *cobra.Command {
	var editor bool
	var dryRun bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold ecuckit.yml and editor wiring",
		Long: `Writes a default ecuckit.yml into the working directory (or the
--config directory).

With --editor, a matching server entry is also merged into
.vscode/mcp.json so MCP-aware editors pick the knowledge server up.
An existing ecuckit.yml is left alone unless --force is set.

Examples:
  ecuckit init
  ecuckit init --editor
  ecuckit init --force`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			dir, _ := cmd.Flags().GetString("config")
			if dir == "" {
				dir = "."
			}
			settingsPath := filepath.Join(dir, "ecuckit.yml")

			var ops []generator.Operation

			if _, err := os.Stat(settingsPath); err == nil && !force {
				output.Info(settingsPath + " already exists, leaving it in place")
			} else {
				data, err := config.DefaultYAML()
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				ops = append(ops, &generator.WriteFileOp{
					Path:    settingsPath,
					Content: append([]byte(settingsHeader), data...),
					Mode:    0644,
				})
			}

			if editor {
				// Load picks up an existing ecuckit.yml, or the same
				// defaults being scaffolded, so the wiring matches.
				cfg, err := loadSettings(cmd)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				ops = append(ops, mcpserver.WiringOp(".", cfg, force))
			}

			if len(ops) > 0 {
				err := generator.Execute(cmd.Context(), ops, generator.ExecuteOptions{
					DryRun: dryRun,
					Force:  force,
					Writer: cmd.OutOrStdout(),
				})
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
			}

			if dryRun {
				return
			}

			output.Success("Project initialized")
			output.Info("Next steps:")
			output.Step("ecuckit find                # discover parameter definitions")
			output.Step("ecuckit convert --compact   # produce searchable documents")
			output.Step("ecuckit serve               # start the knowledge server")
		},
	}

	cmd.Flags().BoolVar(&editor, "editor", false, "Also merge a server entry into .vscode/mcp.json")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without writing files")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing settings and wiring")

	return cmd
}
