// Package mcpserver exposes parameter-definition knowledge over the
// Model Context Protocol.
//
// The server discovers definition and document files under the
// configured root on every tool call, so agents always see the current
// workspace state. Transport is stdio by default; SSE binds the
// configured port under the /mcp base path.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/guu8hc/ecuckit"
	"github.com/guu8hc/ecuckit/internal/config"
	"github.com/guu8hc/ecuckit/internal/logger"
)

// ServerName identifies the server to MCP clients and names its entry
// in editor configuration files.
const ServerName = "ecuc-paramdef-knowledge"

// BasePath prefixes the SSE and message endpoints.
const BasePath = "/mcp"

// Server wraps an MCP server with the tool set over one discovery root.
type Server struct {
	cfg *config.Config
	log logger.Logger
	mcp *server.MCPServer
	sse *server.SSEServer
}

// New builds a Server with all tools registered.
func New(cfg *config.Config, log logger.Logger) *Server {
	s := &Server{
		cfg: cfg,
		log: log,
		mcp: server.NewMCPServer(
			ServerName,
			ecuckit.Version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
	}
	s.registerTools()
	return s
}

// Start serves on the configured transport and blocks until the
// transport ends: EOF on stdio, Shutdown or a listener error on SSE.
func (s *Server) Start(ctx context.Context) error {
	switch s.cfg.Server.Transport {
	case config.TransportSSE:
		addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
		baseURL := fmt.Sprintf("http://127.0.0.1:%d", s.cfg.Server.Port)
		s.sse = server.NewSSEServer(s.mcp,
			server.WithStaticBasePath(BasePath),
			server.WithBaseURL(baseURL),
		)
		s.log.Info("starting knowledge server",
			"transport", config.TransportSSE,
			"endpoint", baseURL+BasePath+"/sse",
			"root", s.cfg.Discovery.Root,
		)
		return s.sse.Start(addr)
	default:
		s.log.Info("starting knowledge server",
			"transport", config.TransportStdio,
			"root", s.cfg.Discovery.Root,
		)
		return server.ServeStdio(s.mcp)
	}
}

// Shutdown stops the SSE listener. A stdio server ends with its input
// stream and needs no shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.sse != nil {
		return s.sse.Shutdown(ctx)
	}
	return nil
}
