package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, TransportStdio, cfg.Server.Transport)
	assert.Equal(t, 8765, cfg.Server.Port)
	assert.Equal(t, "fuzzy", cfg.Search.Engine)
	assert.Equal(t, 5, cfg.Search.Limit)
	assert.InDelta(t, 0.6, cfg.Search.Cutoff, 1e-9)
	assert.Equal(t, ".", cfg.Discovery.Root)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `server:
  transport: sse
  port: 9000
search:
  engine: levenshtein
  limit: 3
  cutoff: 0.8
discovery:
  root: testdata
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ecuckit.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, TransportSSE, cfg.Server.Transport)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "levenshtein", cfg.Search.Engine)
	assert.Equal(t, 3, cfg.Search.Limit)
	assert.InDelta(t, 0.8, cfg.Search.Cutoff, 1e-9)
	assert.Equal(t, "testdata", cfg.Discovery.Root)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `server:
  port: 9100
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ecuckit.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, TransportStdio, cfg.Server.Transport)
	assert.Equal(t, "fuzzy", cfg.Search.Engine)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("ECUCKIT_SERVER_PORT", "9999")
	t.Setenv("ECUCKIT_SEARCH_ENGINE", "levenshtein")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "levenshtein", cfg.Search.Engine)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	content := `server:
  transport: websocket
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ecuckit.yml"), []byte(content), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.transport")
	assert.Contains(t, err.Error(), `"stdio" or "sse"`)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Transport: "carrier-pigeon", Port: 0},
		Search: SearchConfig{Engine: "soundex", Limit: 0, Cutoff: 1.5},
	}

	err := cfg.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 6)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDefaultYAMLRoundTrips(t *testing.T) {
	data, err := DefaultYAML()
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *Default(), cfg)
}

func TestValidationErrorFormatting(t *testing.T) {
	err := ValidationError{
		Field:      "search.engine",
		Message:    `unknown search engine "soundex"`,
		Suggestion: `use "fuzzy" or "levenshtein"`,
	}
	assert.Equal(t,
		`validation error at search.engine: unknown search engine "soundex". Suggestion: use "fuzzy" or "levenshtein"`,
		err.Error())

	errs := ValidationErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	assert.Contains(t, errs.Error(), "found 2 validation errors")
	assert.Contains(t, errs.Error(), "1. validation error at a: bad")
}
