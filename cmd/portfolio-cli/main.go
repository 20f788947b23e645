// Package main is the entry point for the portfolio-cli application.
// It registers the maintenance sub-commands (schema migration and admin
// account management) and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/portfolio-api/cmd/portfolio-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(args []string) error {
	rootCmd, err := newRootCommand()
	if err != nil {
		return err
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}

func newRootCommand() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "portfolio-cli",
		Short: "Maintenance CLI for the portfolio API",
		Long: `portfolio-cli runs maintenance tasks against the portfolio API database.
It reads the same configuration as the REST server: the YAML file given by
--config (or CONFIG_PATH), an optional .env file and PORTFOLIO_* environment variables.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(commands.ConfigFlag, "", "Path to the YAML configuration file")

	if err := initializeCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize commands: %w", err)
	}
	return rootCmd, nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
