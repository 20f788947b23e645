package commands

import (
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/app"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/auth"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// credentialsFromFlags reads the required --email and --password flags.
func credentialsFromFlags(cmd *cobra.Command) (string, string, error) {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return "", "", fmt.Errorf("invalid email flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return "", "", fmt.Errorf("invalid password flag: %w", err)
	}
	if email == "" || password == "" {
		return "", "", fmt.Errorf("both --email and --password are required")
	}
	return email, password, nil
}

// newAuthService migrates the schema and builds the auth service on env.
func newAuthService(env *commandEnv) (users.AuthService, error) {
	if err := persistence.Migrate(env.db); err != nil {
		return nil, err
	}

	repo, err := persistence.NewGormUserRepository(env.db, env.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	hasher, err := auth.NewBcryptHasher(0)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}
	tokens, err := auth.NewJWTManager(env.cfg.Auth.JWTSecret, env.cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	return app.NewAuthService(repo, hasher, tokens, env.logger)
}

// CreateAdminCmd creates an admin account.
func CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	email, password, err := credentialsFromFlags(cmd)
	if err != nil {
		return err
	}

	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	authService, err := newAuthService(env)
	if err != nil {
		return err
	}

	user, err := authService.CreateUser(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	env.logger.Info("Admin account created", "email", user.Email)
	return nil
}

// SetAdminPasswordCmd replaces the password of an existing account.
func SetAdminPasswordCmd(cmd *cobra.Command, _ []string) error {
	email, password, err := credentialsFromFlags(cmd)
	if err != nil {
		return err
	}

	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	authService, err := newAuthService(env)
	if err != nil {
		return err
	}

	if err := authService.SetPassword(cmd.Context(), email, password); err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}
	env.logger.Info("Password updated", "email", users.NormalizeEmail(email))
	return nil
}

// InitAdminCommands registers the admin account commands
func InitAdminCommands(rootCmd *cobra.Command) error {
	var adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		Args:  cobra.NoArgs,
		RunE:  CreateAdminCmd,
	}
	createCmd.Flags().StringP("email", "", "", "E-mail address used to log in")
	createCmd.Flags().StringP("password", "", "", "Password (8 characters minimum)")
	adminCmd.AddCommand(createCmd)

	var passwordCmd = &cobra.Command{
		Use:   "password",
		Short: "Set the password of an existing account",
		Args:  cobra.NoArgs,
		RunE:  SetAdminPasswordCmd,
	}
	passwordCmd.Flags().StringP("email", "", "", "E-mail address of the account")
	passwordCmd.Flags().StringP("password", "", "", "New password (8 characters minimum)")
	adminCmd.AddCommand(passwordCmd)

	rootCmd.AddCommand(adminCmd)
	return nil
}
