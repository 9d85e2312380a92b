package logger

import (
	"bytes"
	"context"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelToCharmLevel(t *testing.T) {
	testCases := []struct {
		level    LogLevel
		expected charmlog.Level
	}{
		{DebugLevel, charmlog.DebugLevel},
		{InfoLevel, charmlog.InfoLevel},
		{WarnLevel, charmlog.WarnLevel},
		{ErrorLevel, charmlog.ErrorLevel},
		{DisabledLevel, charmlog.Level(1000)},
		{LogLevel("unknown"), charmlog.InfoLevel},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.level.ToCharmLevel(), "level %s", tc.level)
	}
}

func TestNewLoggerWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{
		Level:      InfoLevel,
		Output:     &buf,
		TimeFormat: "15:04:05",
	})

	log.Info("parsed module", "module", "Com")

	output := buf.String()
	assert.Contains(t, output, "parsed module")
	assert.Contains(t, output, "Com")
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{
		Level:      WarnLevel,
		Output:     &buf,
		TimeFormat: "15:04:05",
	})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{
		Level:      InfoLevel,
		Output:     &buf,
		JSON:       true,
		TimeFormat: "15:04:05",
	})

	log.Info("conversion done", "files", 3)

	output := buf.String()
	assert.Contains(t, output, `"msg":"conversion done"`)
	assert.Contains(t, output, `"files":3`)
}

func TestTestConfigDisablesOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := TestConfig()
	cfg.Output = &buf
	log := NewLogger(cfg)

	log.Error("should not appear")

	assert.Empty(t, buf.String())
}

func TestWithAttachesFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&Config{
		Level:      InfoLevel,
		Output:     &buf,
		TimeFormat: "15:04:05",
	})

	base.With("tool", "search").Info("ranked keys")

	output := buf.String()
	assert.Contains(t, output, "tool")
	assert.Contains(t, output, "search")
	assert.Contains(t, output, "ranked keys")
}

func TestFromContext(t *testing.T) {
	t.Run("returns logger from context", func(t *testing.T) {
		expected := NewLogger(TestConfig())
		ctx := ContextWithLogger(context.Background(), expected)

		assert.Equal(t, expected, FromContext(ctx))
	})

	t.Run("falls back when context has no logger", func(t *testing.T) {
		log := FromContext(context.Background())

		require.NotNil(t, log)
	})

	t.Run("falls back on wrong value type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), LoggerCtxKey, "not a logger")

		require.NotNil(t, FromContext(ctx))
	})
}
