package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guu8hc/ecuckit/internal/discovery"
	"github.com/guu8hc/ecuckit/internal/export"
	"github.com/guu8hc/ecuckit/internal/output"
	"github.com/guu8hc/ecuckit/internal/search"
	"github.com/guu8hc/ecuckit/internal/tui"
)

// SearchCmd creates the search command for keyword lookup
func SearchCmd() *cobra.Command {
	var engineName string
	var limit int
	var root string
	var interactive bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search definition paths by keyword",
		Long: `Ranks parameter and container names against a keyword and prints the
matching definition paths.

Both ARXML definitions and converted JSON documents under the
configured root are searched. Engines: fuzzy (subsequence matching)
and levenshtein (edit-distance similarity with a cutoff).

With --interactive a picker opens instead: type to filter the key set,
press enter to print the selected definition path.

Examples:
  ecuckit search ComConfig
  ecuckit search --engine levenshtein --limit 3 mainfunction
  ecuckit search --json NmChannel
  ecuckit search --interactive`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadSettings(cmd)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if cmd.Flags().Changed("engine") {
				cfg.Search.Engine = engineName
			}
			if cmd.Flags().Changed("limit") {
				cfg.Search.Limit = limit
			}
			if cmd.Flags().Changed("root") {
				cfg.Discovery.Root = root
			}

			engine, err := search.NewEngine(cfg.Search.Engine, cfg.Search.Cutoff)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			files, err := discovery.New(cfg.Discovery.Root).All()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if len(files) == 0 {
				output.Error(fmt.Sprintf("No parameter definitions found under %s", cfg.Discovery.Root))
				output.Info("Run 'ecuckit convert' or point --root at a directory containing *paramdef* files")
				os.Exit(1)
			}
			output.Verbose(fmt.Sprintf("Searching %d documents under %s with the %s engine",
				len(files), cfg.Discovery.Root, engine.Name()))

			if interactive {
				if tui.IsInteractive() {
					pickDefinition(cmd, files, engine)
					return
				}
				output.Verbose("Not attached to a terminal, printing ranked matches instead")
			}

			if len(args) == 0 {
				output.Error("Keyword required (or run with --interactive in a terminal)")
				os.Exit(1)
			}
			keyword := args[0]

			matches := search.NewSearcher(engine, cfg.Search.Limit).Search(files, keyword)

			if jsonOut {
				if matches == nil {
					matches = []search.Match{}
				}
				data, err := export.Marshal(matches)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return
			}

			if len(matches) == 0 {
				output.Info(fmt.Sprintf("No definition matches %q", keyword))
				return
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%.2f  %s  (%s)\n", m.Score, pathOrKey(m), m.File)
			}
		},
	}

	cmd.Flags().StringVar(&engineName, "engine", "", "Ranking engine: fuzzy or levenshtein")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum matches per document")
	cmd.Flags().StringVar(&root, "root", "", "Directory to discover definitions under")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick a definition interactively")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print matches as JSON")

	return cmd
}

// pickDefinition runs the interactive picker over the whole corpus key
// set and prints the chosen definition path.
func pickDefinition(cmd *cobra.Command, files []string, engine search.Engine) {
	corpus := search.LoadCorpus(files)
	if corpus.Len() == 0 {
		output.Error("None of the discovered files could be loaded")
		os.Exit(1)
	}

	match, ok, err := tui.Pick(tui.PickerOptions{
		Title:  "Select a definition",
		Keys:   corpus.Keys(),
		Engine: engine,
		Resolve: func(key string) (string, bool) {
			m, ok := corpus.Resolve(key)
			return m.Path, ok
		},
	})
	if err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
	if !ok {
		output.Info("No definition selected")
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), pathOrKey(match))
}

func pathOrKey(m search.Match) string {
	if m.Path != "" {
		return m.Path
	}
	return m.Key
}
