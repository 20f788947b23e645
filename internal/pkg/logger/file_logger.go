package logger

import (
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON records to a size-rotated log file.
type FileLogger struct {
	logger *slog.Logger
}

// NewFileLogger creates a new file logger with rotation settings.
// maxSize is in megabytes, maxAge in days.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)})
	return &FileLogger{logger: slog.New(handler)}
}

func (l *FileLogger) Debug(args ...interface{}) { emit(l.logger, slog.LevelDebug, args...) }

func (l *FileLogger) Info(args ...interface{}) { emit(l.logger, slog.LevelInfo, args...) }

func (l *FileLogger) Warn(args ...interface{}) { emit(l.logger, slog.LevelWarn, args...) }

func (l *FileLogger) Error(args ...interface{}) { emit(l.logger, slog.LevelError, args...) }

// Fatal logs at error level and exits the process.
func (l *FileLogger) Fatal(args ...interface{}) {
	emit(l.logger, slog.LevelError, args...)
	os.Exit(1)
}

// Panic logs at error level and panics with the message.
func (l *FileLogger) Panic(args ...interface{}) {
	panic(emit(l.logger, slog.LevelError, args...))
}
