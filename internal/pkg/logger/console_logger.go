package logger

import (
	"log/slog"
	"os"
)

// ConsoleLogger writes human readable text records to stdout.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	return &ConsoleLogger{logger: slog.New(handler)}
}

func (l *ConsoleLogger) Debug(args ...interface{}) { emit(l.logger, slog.LevelDebug, args...) }

func (l *ConsoleLogger) Info(args ...interface{}) { emit(l.logger, slog.LevelInfo, args...) }

func (l *ConsoleLogger) Warn(args ...interface{}) { emit(l.logger, slog.LevelWarn, args...) }

func (l *ConsoleLogger) Error(args ...interface{}) { emit(l.logger, slog.LevelError, args...) }

// Fatal logs at error level and exits the process.
func (l *ConsoleLogger) Fatal(args ...interface{}) {
	emit(l.logger, slog.LevelError, args...)
	os.Exit(1)
}

// Panic logs at error level and panics with the message.
func (l *ConsoleLogger) Panic(args ...interface{}) {
	panic(emit(l.logger, slog.LevelError, args...))
}
