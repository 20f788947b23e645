package logger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger initializes the singleton logger.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the initialized logger instance.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(c *config.LoggerSettings) (Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch c.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(c.LogLevel), nil
	case config.LogTypeFile:
		return NewFileLogger(c.LogLevel, c.FilePath, c.MaxSize, c.MaxBackups, c.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", c.LogType)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// emit writes args to l at level, splitting trailing key/value pairs into attributes.
func emit(l *slog.Logger, level slog.Level, args ...interface{}) string {
	msg, attrs := splitArgs(args...)
	l.Log(context.Background(), level, msg, attrs...)
	return msg
}

// splitArgs returns the message and, if args form "msg, k1, v1, k2, v2...",
// the trailing pairs. Anything else is concatenated into the message.
func splitArgs(args ...interface{}) (string, []any) {
	if len(args) < 3 || len(args)%2 == 0 {
		return formatArgs(args...), nil
	}
	msg, ok := args[0].(string)
	if !ok {
		return formatArgs(args...), nil
	}
	for i := 1; i < len(args); i += 2 {
		if _, ok := args[i].(string); !ok {
			return formatArgs(args...), nil
		}
	}
	return msg, args[1:]
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
