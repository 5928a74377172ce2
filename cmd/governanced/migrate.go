package main

import (
	"context"
	"fmt"
	"time"

	"wallet-governance/config"
	pgStorage "wallet-governance/internal/adapter/storage/postgres"
	"wallet-governance/pkg/logger"

	"github.com/spf13/cobra"
)

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
			if err != nil {
				return fmt.Errorf("connecting to postgres: %w", err)
			}
			defer pool.Close()

			applied, err := pgStorage.Migrate(ctx, pool, log)
			if err != nil {
				return err
			}
			log.Info().Int("applied", applied).Msg("Migrations complete")
			return nil
		},
	}
}
