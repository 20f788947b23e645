// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file through viper, optionally preceded by a
// .env file, and every key can be overridden by a PORTFOLIO_ prefixed
// environment variable (PORTFOLIO_DATABASE_DSN overrides database.dsn).
// Each settings section validates itself before the application starts.
package config
