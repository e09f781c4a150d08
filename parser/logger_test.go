package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	l.Debug("test message", "key", "value")
	l.Info("test message", "key", "value")
	l.Warn("test message", "key", "value")
	l.Error("test message", "key", "value")

	_, ok := l.With("key", "value").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestSlogAdapter(t *testing.T) {
	t.Run("nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("levels and attributes", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger := NewSlogAdapter(slog.New(handler)).With("component", "parser")

		logger.Debug("debug message", "ref", "#/components/schemas/Pet")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "component=parser")
		assert.Contains(t, out, "ref=#/components/schemas/Pet")
	})
}

func TestParserLogsDebugEvents(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	_, err := ParseWithOptions(
		WithBytes([]byte("openapi: 3.0.0\n")),
		WithLogger(NewSlogAdapter(slog.New(handler))),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="parsed document"`)
	assert.Contains(t, buf.String(), "version=3.0.0")
}
