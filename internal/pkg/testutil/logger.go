package testutil

import (
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns the process-wide console logger. Only the first
// call in a test binary decides its level.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	require.NoError(t, logger.InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelWarning,
		LogType:  config.LogTypeConsole,
	}))

	log, err := logger.GetLogger()
	require.NoError(t, err)
	return log
}
