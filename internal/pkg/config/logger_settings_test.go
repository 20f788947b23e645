//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotatingFileSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelDebug,
		LogType:    LogTypeFile,
		FilePath:   "logs/portfolio-api.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestLoggerSettings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *LoggerSettings)
		shouldErr bool
	}{
		{"rotating file logger", func(s *LoggerSettings) {}, false},
		{"console logger", func(s *LoggerSettings) { *s = LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole} }, false},
		{"console logger keeps unused rotation values", func(s *LoggerSettings) { s.LogType = LogTypeConsole }, false},
		{"critical level", func(s *LoggerSettings) { s.LogLevel = LogLevelCritical }, false},
		{"missing level", func(s *LoggerSettings) { s.LogLevel = "" }, true},
		{"unknown level", func(s *LoggerSettings) { s.LogLevel = "trace" }, true},
		{"unknown type", func(s *LoggerSettings) { s.LogType = "syslog" }, true},
		{"file without path", func(s *LoggerSettings) { s.FilePath = "" }, true},
		{"file without max size", func(s *LoggerSettings) { s.MaxSize = 0 }, true},
		{"file without backups", func(s *LoggerSettings) { s.MaxBackups = 0 }, true},
		{"file without max age", func(s *LoggerSettings) { s.MaxAge = 0 }, true},
		{"max size above 100 MB", func(s *LoggerSettings) { s.MaxSize = 101 }, true},
		{"max age above a year", func(s *LoggerSettings) { s.MaxAge = 366 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := rotatingFileSettings()
			tt.mutate(&s)

			err := s.Validate()
			if tt.shouldErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LoggerSettings")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettings_RotationError(t *testing.T) {
	s := rotatingFileSettings()
	s.MaxBackups = 0

	assert.ErrorIs(t, s.Validate(), errRotationRequired)
}
