package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/guu8hc/ecuckit/internal/generator"
	"github.com/guu8hc/ecuckit/internal/mcpserver"
)

// ServeCmd creates the serve command for the MCP knowledge server
func ServeCmd() *cobra.Command {
	var transport string
	var port int
	var root string
	var writeConfig bool
	var force bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve definition knowledge to MCP clients",
		Long: `Starts the knowledge server, exposing parameter-definition search to
MCP clients.

Tools: get_precise_time, get_generic_knowledge_from_keyword,
get_precise_definition_path_using_fuzzy, and
get_precise_definition_path_using_levenshtein.

Transports: stdio (default), for editors that spawn the server per
session, and sse, which listens on the configured port. Files are
discovered under the configured root on every tool call, so newly
converted definitions show up without a restart.

Examples:
  ecuckit serve
  ecuckit serve --transport sse --port 8765
  ecuckit serve --write-config   # also writes .vscode/mcp.json`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log := newLogger(cmd)

			cfg, err := loadSettings(cmd)
			if err != nil {
				log.Error("invalid settings", "error", err)
				os.Exit(1)
			}
			if cmd.Flags().Changed("transport") {
				cfg.Server.Transport = transport
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("root") {
				cfg.Discovery.Root = root
			}
			if err := cfg.Validate(); err != nil {
				log.Error("invalid settings", "error", err)
				os.Exit(1)
			}

			if writeConfig {
				ops := []generator.Operation{mcpserver.WiringOp(".", cfg, force)}
				// In stdio mode stdout carries the protocol stream, so
				// progress lines go to stderr.
				err := generator.Execute(cmd.Context(), ops, generator.ExecuteOptions{
					Force:  force,
					Writer: cmd.ErrOrStderr(),
				})
				if err != nil {
					log.Error("cannot write editor configuration", "error", err)
					os.Exit(1)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := mcpserver.New(cfg, log)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(ctx)
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", "error", err)
					os.Exit(1)
				}
			case <-ctx.Done():
				log.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					log.Error("shutdown failed", "error", err)
					os.Exit(1)
				}
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "", "Transport to serve on: stdio or sse")
	cmd.Flags().IntVar(&port, "port", 0, "Port for the sse transport")
	cmd.Flags().StringVar(&root, "root", "", "Directory to discover definitions under")
	cmd.Flags().BoolVar(&writeConfig, "write-config", false, "Write the matching .vscode/mcp.json entry before serving")
	cmd.Flags().BoolVar(&force, "force", false, "Let --write-config overwrite a conflicting server entry")

	return cmd
}
