package main

import (
	"fmt"

	"github.com/shenikar/cpr_dispatch/pkg/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations (postgres storage driver)",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := loadEnv()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL environment variable is required for migrations")
			}

			log.WithField("down", down).Info("Running database migrations...")
			if err := postgres.Migrate(cfg.MigrationsPath, cfg.DatabaseURL, down); err != nil {
				return err
			}
			log.Info("Database migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back all migrations")
	return cmd
}
