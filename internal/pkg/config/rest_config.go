package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "PORTFOLIO"

// RestConfig is the root configuration of the REST server and the CLI.
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required,numeric"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Storage   StorageSettings   `mapstructure:"storage"`
	Auth      AuthSettings      `mapstructure:"auth"`
	Cors      CorsSettings      `mapstructure:"cors"`
	RateLimit RateLimitSettings `mapstructure:"rate_limit"`
}

// Validate checks the root settings, then every nested section through its
// own Validate so that errors name the failing section.
func (c *RestConfig) Validate() error {
	if err := validateStructExcept(c, "Database", "Logger", "Storage", "Auth", "Cors", "RateLimit"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	sections := []interface{ Validate() error }{
		&c.Database, &c.Logger, &c.Storage, &c.Auth, &c.Cors, &c.RateLimit,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// InitializeRestConfig loads the configuration from an optional .env file,
// the YAML file at path (skipped when it does not exist) and PORTFOLIO_*
// environment variables, in increasing order of precedence.
func InitializeRestConfig(path string) (*RestConfig, error) {
	LoadDotEnvUp(6)

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "portfolio.db")
	v.SetDefault("database.name", "")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("storage.upload_dir", "uploads")
	v.SetDefault("storage.public_prefix", "/uploads")
	v.SetDefault("storage.max_file_size", DefaultMaxFileSize)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.admin_email", "")
	v.SetDefault("auth.admin_password", "")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})

	v.SetDefault("rate_limit.requests_per_minute", 10)
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("rate_limit.redis_addr", "")
	v.SetDefault("rate_limit.redis_password", "")
	v.SetDefault("rate_limit.redis_db", 0)
}
