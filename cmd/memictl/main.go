// Package main provides memictl, the operations CLI for the MEMI backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	appMigrations "github.com/memitrading/memi/internal/app/migrations"
	appRepos "github.com/memitrading/memi/internal/app/repositories"
	appServices "github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/bootstrap"
	"github.com/memitrading/memi/internal/config"
	sqlMigrations "github.com/memitrading/memi/migrations"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "memictl",
		Short: "Operations tooling for the MEMI Trading backend",
		Long: `Operations tooling for the MEMI Trading backend.

Configuration is read the same way as the API server: .env, then the YAML
config file, then environment variables.

Examples:
  memictl migrate
  memictl create-admin --email admin@example.com --password 'change-me-please'
  memictl reset-password --email admin@example.com --password 'new-password'
  memictl db-reset --force
`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config file (default configs/config.yaml)")

	cmd.AddCommand(
		migrateCmd(&configPath),
		createAdminCmd(&configPath),
		resetPasswordCmd(&configPath),
		dbResetCmd(&configPath),
	)
	return cmd
}

// withPool loads configuration, connects and runs fn with a signal-aware context
func withPool(configPath string, fn func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}

func authService(cfg *config.Config, pool *pgxpool.Pool) appServices.AuthService {
	return appServices.NewAuthService(appRepos.NewUserRepository(pool), bootstrap.NewJWTService(cfg))
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(*configPath, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
				applied, err := appMigrations.NewMigrator(pool, sqlMigrations.FS).Up(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", applied)
				return nil
			})
		},
	}
}

func createAdminCmd(configPath *string) *cobra.Command {
	var email, password, username string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(*configPath, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
				if email == "" {
					email = cfg.Admin.Email
				}
				if password == "" {
					password = cfg.Admin.Password
				}
				user, err := authService(cfg, pool).CreateAdmin(ctx, username, email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Admin user created: id=%d username=%s email=%s\n", user.ID, user.Username, user.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email (default: ADMIN_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "admin password, at least 8 characters (default: ADMIN_PASSWORD)")
	cmd.Flags().StringVar(&username, "username", "admin", "admin username")
	return cmd
}

func resetPasswordCmd(configPath *string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password for an existing user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(*configPath, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
				if err := authService(cfg, pool).ResetPassword(ctx, email, password); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Password updated for %s\n", email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&password, "password", "", "new password, at least 8 characters")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func dbResetCmd(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "db-reset",
		Short: "Drop every application table",
		Long:  "Drop every application table. All data is lost; the next migrate or server start recreates the schema.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("refusing to drop tables without --force")
			}
			return withPool(*configPath, func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
				if err := appMigrations.NewMigrator(pool, sqlMigrations.FS).Reset(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All tables dropped")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm that all data will be deleted")
	return cmd
}
