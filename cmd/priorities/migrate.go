package main

import (
	"fmt"

	"github.com/notarydesk/priorities/internal/infra/persistence/recordstore"
	"github.com/notarydesk/priorities/internal/orm"
	"github.com/notarydesk/priorities/pkg/config"
	"github.com/notarydesk/priorities/pkg/logger"
	"github.com/spf13/cobra"
)

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the record table on the configured SQL database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			switch cfg.Storage.Driver {
			case "mysql", "postgres", "sqlite":
			default:
				return fmt.Errorf("storage driver %q has no schema to migrate", cfg.Storage.Driver)
			}

			zapLogger, err := logger.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer zapLogger.Sync()

			db, err := orm.Open(*cfg, zapLogger)
			if err != nil {
				return err
			}
			backend, err := recordstore.NewGorm(db)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			defer backend.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "Migration completed successfully!")
			return nil
		},
	}
}
