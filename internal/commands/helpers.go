package commands

import (
	"github.com/spf13/cobra"

	"github.com/guu8hc/ecuckit/internal/arxml"
	"github.com/guu8hc/ecuckit/internal/config"
	"github.com/guu8hc/ecuckit/internal/logger"
)

// loadSettings reads ecuckit.yml, honoring the persistent --config flag.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("config")
	return config.Load(dir)
}

// newLogger builds the CLI logger. The persistent --verbose flag lowers
// the level to debug. Log lines go to stderr, keeping stdout free for
// trees, JSON, and the stdio protocol stream.
func newLogger(cmd *cobra.Command) logger.Logger {
	cfg := logger.DefaultConfig()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Level = logger.DebugLevel
	}
	return logger.NewLogger(cfg)
}

// moduleStats counts containers, parameters, and references across the
// whole definition tree.
func moduleStats(m *arxml.Module) (containers, parameters, references int) {
	var walk func([]*arxml.Container)
	walk = func(cs []*arxml.Container) {
		for _, c := range cs {
			containers++
			parameters += len(c.Parameters)
			references += len(c.References)
			walk(c.SubContainers)
		}
	}
	walk(m.Containers)
	return containers, parameters, references
}
