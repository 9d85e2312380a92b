package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/guu8hc/ecuckit/internal/discovery"
	"github.com/guu8hc/ecuckit/internal/export"
	"github.com/guu8hc/ecuckit/internal/generator"
	"github.com/guu8hc/ecuckit/internal/logger"
	"github.com/guu8hc/ecuckit/internal/output"
)

// ConvertCmd creates the convert command for producing JSON documents
func ConvertCmd() *cobra.Command {
	var compact bool
	var outDir string
	var root string
	var workers int
	var dryRun bool
	var force bool

	cmd := &cobra.Command{
		Use:   "convert [file.arxml...]",
		Short: "Convert parameter definitions to JSON",
		Long: `Converts ARXML parameter definitions into JSON documents.

The descriptive form (default) spells out every container, parameter,
and reference with its attributes. The compact form nests containers
and parameters by name only; it is the shape the search commands and
the knowledge server index.

Without file arguments, definitions are discovered under the
configured root (discovery.root in ecuckit.yml, or --root). Output
files are named after their source, com_paramdef.arxml becoming
com_paramdef.json next to it or under --out.

Examples:
  ecuckit convert com_paramdef.arxml
  ecuckit convert --compact --out build/ com_paramdef.arxml
  ecuckit convert --root vendor/acme/ --compact`,
		Run: func(cmd *cobra.Command, args []string) {
			log := newLogger(cmd)

			files := args
			if len(files) == 0 {
				cfg, err := loadSettings(cmd)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				if cmd.Flags().Changed("root") {
					cfg.Discovery.Root = root
				}

				files, err = discovery.New(cfg.Discovery.Root).Definitions()
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				if len(files) == 0 {
					output.Info(fmt.Sprintf("No parameter definitions found under %s", cfg.Discovery.Root))
					return
				}
				output.Verbose(fmt.Sprintf("Discovered %d definitions under %s", len(files), cfg.Discovery.Root))
			}

			ops, err := convertOps(cmd.Context(), files, compact, outDir, workers, log)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
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
				output.Success(fmt.Sprintf("Converted %d definitions", len(ops)))
			}
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Emit the compact nested shape instead of the descriptive one")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Write JSON files into this directory instead of next to each source")
	cmd.Flags().StringVar(&root, "root", "", "Discovery root when no files are given")
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "Maximum concurrent conversions")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview file writes without performing them")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing output files")

	return cmd
}

// convertOps parses and projects definitions concurrently, bounded by
// workers, and returns write operations in input order.
func convertOps(ctx context.Context, files []string, compact bool, outDir string, workers int, log logger.Logger) ([]generator.Operation, error) {
	if workers < 1 {
		workers = 1
	}

	convert := export.DescriptiveFromFile
	if compact {
		convert = export.CompactFromFile
	}

	ops := make([]generator.Operation, len(files))

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, path := range files {
		group.Go(func() error {
			data, err := convert(path)
			if err != nil {
				return err
			}
			log.Debug("converted definition", "file", path, "bytes", len(data))
			ops[i] = &generator.WriteFileOp{
				Path:    jsonOutputPath(outDir, path),
				Content: data,
				Mode:    0644,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return ops, nil
}

// jsonOutputPath names the JSON document for a source definition. An
// empty dir keeps the document next to its source.
func jsonOutputPath(dir, source string) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if dir == "" {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, stem+".json")
}
