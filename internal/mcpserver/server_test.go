package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guu8hc/ecuckit/internal/config"
	"github.com/guu8hc/ecuckit/internal/generator"
	"github.com/guu8hc/ecuckit/internal/logger"
	"github.com/guu8hc/ecuckit/internal/search"
)

const comDocument = `{
	"Com": {
		"ComConfig": {
			"ComMainFunctionPeriod": {
				"type": "FLOAT",
				"default": "0.01"
			}
		}
	}
}`

func newTestServer(t *testing.T, root string) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Discovery.Root = root
	return New(cfg, logger.NewLogger(logger.TestConfig()))
}

func callRequest(keyword string) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"keyword": keyword}
	return req
}

func textContent(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandlePreciseTime(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	res, err := s.handlePreciseTime(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	_, parseErr := time.Parse(time.RFC3339Nano, textContent(t, res))
	assert.NoError(t, parseErr)
}

func TestHandleKnowledge(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "com_paramdef.json")
	require.NoError(t, os.WriteFile(path, []byte(comDocument), 0o644))

	s := newTestServer(t, root)

	res, err := s.handleKnowledge(context.Background(), callRequest("ComConfig"))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var matches []search.Match
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &matches))
	require.NotEmpty(t, matches)
	assert.Equal(t, "ComConfig", matches[0].Key)
	assert.Equal(t, "Com/ComConfig", matches[0].Path)
	assert.Equal(t, path, matches[0].File)
}

func TestHandleKnowledgeNoDocuments(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	res, err := s.handleKnowledge(context.Background(), callRequest("ComConfig"))
	require.NoError(t, err)
	require.False(t, res.IsError)

	assert.Equal(t, "[]\n", textContent(t, res))
}

func TestHandleKnowledgeMissingKeyword(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	res, err := s.handleKnowledge(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleFuzzyPath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "com_paramdef.json")
	require.NoError(t, os.WriteFile(path, []byte(comDocument), 0o644))

	s := newTestServer(t, root)

	res, err := s.handleFuzzyPath(context.Background(), callRequest("MainFunctionPeriod"))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var best search.Match
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &best))
	assert.Equal(t, "ComMainFunctionPeriod", best.Key)
	assert.Equal(t, "Com/ComConfig/ComMainFunctionPeriod", best.Path)
}

func TestHandleLevenshteinPathNoMatch(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "com_paramdef.json")
	require.NoError(t, os.WriteFile(path, []byte(comDocument), 0o644))

	s := newTestServer(t, root)

	res, err := s.handleLevenshteinPath(context.Background(), callRequest("zzzzzz"))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestShutdownWithoutStart(t *testing.T) {
	s := newTestServer(t, t.TempDir())
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestEditorServersSSE(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Transport = config.TransportSSE
	cfg.Server.Port = 9000

	servers := EditorServers(cfg)

	entry := servers["servers"].(map[string]any)[ServerName].(map[string]any)
	assert.Equal(t, "sse", entry["type"])
	assert.Equal(t, "http://127.0.0.1:9000/mcp/sse", entry["url"])
}

func TestEditorServersStdio(t *testing.T) {
	servers := EditorServers(config.Default())

	entry := servers["servers"].(map[string]any)[ServerName].(map[string]any)
	assert.Equal(t, "ecuckit", entry["command"])
	assert.Equal(t, []any{"serve", "--transport", "stdio"}, entry["args"])
}

func TestWiringOpWritesEditorConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Server.Transport = config.TransportSSE

	op := WiringOp(dir, cfg, false)
	require.NoError(t, op.Validate(context.Background(), false))
	require.NoError(t, op.Execute(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, ".vscode", "mcp.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), ServerName))
	assert.True(t, strings.Contains(string(data), "/mcp/sse"))
}

func TestWiringOpPreservesExistingEntries(t *testing.T) {
	dir := t.TempDir()
	vscode := filepath.Join(dir, ".vscode")
	require.NoError(t, os.MkdirAll(vscode, 0o755))

	existing := `{"servers": {"other-server": {"command": "other"}}}`
	require.NoError(t, os.WriteFile(filepath.Join(vscode, "mcp.json"), []byte(existing), 0o644))

	op := WiringOp(dir, config.Default(), false)
	require.NoError(t, generator.Execute(context.Background(), []generator.Operation{op},
		generator.ExecuteOptions{Writer: io.Discard}))

	data, err := os.ReadFile(filepath.Join(vscode, "mcp.json"))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	servers := got["servers"].(map[string]any)
	assert.Contains(t, servers, "other-server")
	assert.Contains(t, servers, ServerName)
}
