// Package config loads tool configuration from ecuckit.yml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Transport names accepted by server.transport.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config holds every tunable the CLI and server read.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Search    SearchConfig    `yaml:"search"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

// ServerConfig controls the knowledge server.
type ServerConfig struct {
	Transport string `yaml:"transport"`
	Port      int    `yaml:"port"`
}

// SearchConfig controls keyword ranking.
type SearchConfig struct {
	Engine string  `yaml:"engine"`
	Limit  int     `yaml:"limit"`
	Cutoff float64 `yaml:"cutoff"`
}

// DiscoveryConfig controls where definition and document files are
// looked up.
type DiscoveryConfig struct {
	Root string `yaml:"root"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Transport: TransportStdio,
			Port:      8765,
		},
		Search: SearchConfig{
			Engine: "fuzzy",
			Limit:  5,
			Cutoff: 0.6,
		},
		Discovery: DiscoveryConfig{
			Root: ".",
		},
	}
}

// DefaultYAML renders the built-in configuration as YAML, the content
// written by the init command.
func DefaultYAML() ([]byte, error) {
	return yaml.Marshal(Default())
}

// Load reads ecuckit.yml from dir (the working directory when empty)
// and applies ECUCKIT_* environment overrides. A missing file is fine;
// defaults fill every key.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}

	v := viper.New()
	v.SetConfigName("ecuckit")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Environment variable overrides, e.g. ECUCKIT_SERVER_PORT=9000.
	v.AutomaticEnv()
	v.SetEnvPrefix("ECUCKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	def := Default()
	v.SetDefault("server.transport", def.Server.Transport)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("search.engine", def.Search.Engine)
	v.SetDefault("search.limit", def.Search.Limit)
	v.SetDefault("search.cutoff", def.Search.Cutoff)
	v.SetDefault("discovery.root", def.Discovery.Root)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read ecuckit.yml: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Transport: v.GetString("server.transport"),
			Port:      v.GetInt("server.port"),
		},
		Search: SearchConfig{
			Engine: v.GetString("search.engine"),
			Limit:  v.GetInt("search.limit"),
			Cutoff: v.GetFloat64("search.cutoff"),
		},
		Discovery: DiscoveryConfig{
			Root: v.GetString("discovery.root"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and collects all problems at once.
func (c *Config) Validate() error {
	var errs ValidationErrors

	switch c.Server.Transport {
	case TransportStdio, TransportSSE:
	default:
		errs = append(errs, ValidationError{
			Field:      "server.transport",
			Message:    fmt.Sprintf("unknown transport %q", c.Server.Transport),
			Suggestion: `use "stdio" or "sse"`,
		})
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("port %d out of range", c.Server.Port),
		})
	}

	switch c.Search.Engine {
	case "fuzzy", "levenshtein":
	default:
		errs = append(errs, ValidationError{
			Field:      "search.engine",
			Message:    fmt.Sprintf("unknown search engine %q", c.Search.Engine),
			Suggestion: `use "fuzzy" or "levenshtein"`,
		})
	}

	if c.Search.Limit < 1 {
		errs = append(errs, ValidationError{
			Field:   "search.limit",
			Message: "limit must be at least 1",
		})
	}

	if c.Search.Cutoff < 0 || c.Search.Cutoff > 1 {
		errs = append(errs, ValidationError{
			Field:      "search.cutoff",
			Message:    fmt.Sprintf("cutoff %v out of range", c.Search.Cutoff),
			Suggestion: "use a similarity between 0.0 and 1.0",
		})
	}

	if c.Discovery.Root == "" {
		errs = append(errs, ValidationError{
			Field:      "discovery.root",
			Message:    "root must not be empty",
			Suggestion: `use "." for the working directory`,
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
