package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ConfigFlag is the persistent root flag naming the YAML configuration file.
const ConfigFlag = "config"

// DefaultConfigPath is used when neither --config nor CONFIG_PATH is set.
const DefaultConfigPath = "configs/rest-app.yaml"

// commandEnv is what every database command needs once the configuration is loaded.
type commandEnv struct {
	cfg    *config.RestConfig
	db     *gorm.DB
	logger logger.Logger
}

func (e *commandEnv) close() {
	if err := persistence.CloseDB(e.db); err != nil {
		e.logger.Warn("Failed to close database: ", err)
	}
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString(ConfigFlag)
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultConfigPath
	}
	return path
}

// openEnv loads the configuration, initializes the logger and connects to the database.
func openEnv(cmd *cobra.Command) (*commandEnv, error) {
	cfg, err := config.InitializeRestConfig(configPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return &commandEnv{cfg: cfg, db: db, logger: loggerInstance}, nil
}
