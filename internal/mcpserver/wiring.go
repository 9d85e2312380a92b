package mcpserver

import (
	"fmt"
	"path/filepath"

	"github.com/guu8hc/ecuckit/internal/config"
	"github.com/guu8hc/ecuckit/internal/generator"
)

// EditorServers returns the mcp.json fragment telling an editor how to
// reach the server on the configured transport. SSE entries point at
// the running endpoint; stdio entries launch the binary on demand with
// the workspace as discovery root.
func EditorServers(cfg *config.Config) map[string]any {
	var entry map[string]any
	if cfg.Server.Transport == config.TransportSSE {
		entry = map[string]any{
			"type": "sse",
			"url":  fmt.Sprintf("http://127.0.0.1:%d%s/sse", cfg.Server.Port, BasePath),
		}
	} else {
		entry = map[string]any{
			"command": "ecuckit",
			"args":    []any{"serve", "--transport", config.TransportStdio},
			"env": map[string]any{
				"ECUCKIT_DISCOVERY_ROOT": "${workspaceFolder}",
			},
		}
	}
	return map[string]any{
		"servers": map[string]any{
			ServerName: entry,
		},
	}
}

// WiringOp builds the operation that merges the editor entry into
// .vscode/mcp.json under dir. Existing values win unless override is
// set, so hand-tuned entries survive a rerun.
func WiringOp(dir string, cfg *config.Config, override bool) generator.Operation {
	return &generator.MergeJSONOp{
		Path:     filepath.Join(dir, ".vscode", "mcp.json"),
		Value:    EditorServers(cfg),
		Override: override,
	}
}
