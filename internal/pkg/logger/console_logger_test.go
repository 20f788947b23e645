//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedConsoleLogger(buf *bytes.Buffer, level slog.Level) *ConsoleLogger {
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})
	return &ConsoleLogger{logger: slog.New(handler)}
}

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedConsoleLogger(&buf, slog.LevelInfo)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestConsoleLogger_StructuredAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedConsoleLogger(&buf, slog.LevelDebug)

	logger.Info("request completed", "status", 201, "path", "/api/projects")

	output := buf.String()
	assert.Contains(t, output, `msg="request completed"`)
	assert.Contains(t, output, "status=201")
	assert.Contains(t, output, "path=/api/projects")
}

func TestConsoleLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedConsoleLogger(&buf, slog.LevelInfo)

	assert.PanicsWithValue(t, "boom 1", func() {
		logger.Panic("boom ", 1)
	})
	assert.Contains(t, buf.String(), "boom 1")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Debug("test")
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}
