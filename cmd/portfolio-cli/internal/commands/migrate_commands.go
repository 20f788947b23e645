package commands

import (
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates the database schema.
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	if err := persistence.Migrate(env.db); err != nil {
		return err
	}
	env.logger.Info("Database migrations completed", "type", env.cfg.Database.Type)
	return nil
}

// InitMigrateCommands registers the schema migration command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)
	return nil
}
