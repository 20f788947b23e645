package config

import (
	"errors"
	"fmt"
)

// Log levels accepted by logger.log_level. Critical is logged as error.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log back-ends accepted by logger.log_type.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

var errRotationRequired = errors.New("max_size, max_backups and max_age must all be set for the file logger")

// LoggerSettings selects the log back-end. FilePath and the rotation limits
// (MaxSize in MB, MaxAge in days) are only read by the file logger.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"gte=0,lte=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0,lte=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"gte=0,lte=365"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	if err := validateStruct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	if s.LogType == LogTypeFile && (s.MaxSize == 0 || s.MaxBackups == 0 || s.MaxAge == 0) {
		return fmt.Errorf("validation failed for LoggerSettings: %w", errRotationRequired)
	}
	return nil
}
