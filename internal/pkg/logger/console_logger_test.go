//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer

	// Create logger with custom output for testing
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handler := slog.NewTextHandler(&buf, opts)
	logger := &ConsoleLogger{slogLogger{logger: slog.New(handler)}}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	// Verify output contains all messages
	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	// Verify it satisfies the Logger interface and doesn't panic
	require.NotPanics(t, func() {
		logger.Debug("test")
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}

func TestConsoleLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: parseLevel(config.LogLevelCritical)})
	logger := &ConsoleLogger{slogLogger{logger: slog.New(handler)}}

	logger.Info("dropped")
	logger.Error("also dropped")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_Panic(t *testing.T) {
	var buf bytes.Buffer

	handler := slog.NewTextHandler(&buf, nil)
	logger := &ConsoleLogger{slogLogger{logger: slog.New(handler)}}

	assert.PanicsWithValue(t, "boom42", func() {
		logger.Panic("boom", 42)
	})
	assert.Contains(t, buf.String(), "boom42")
}
