// Command priorities serves the priority board API and runs its maintenance
// tasks: backup export and import, and spreadsheet reports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/notarydesk/priorities/internal/biz/backup"
	"github.com/notarydesk/priorities/internal/report"
	"github.com/notarydesk/priorities/pkg/config"
	"github.com/notarydesk/priorities/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

const appName = "priorities"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Employee priority board",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(
		serveCmd(&configPath),
		backupCmd(&configPath),
		reportCmd(&configPath),
		migrateCmd(&configPath),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)
	return cmd
}

// bootstrap loads config, builds the logger and wires the application.
func bootstrap(configPath string) (*App, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	app, err := InitializeApp(zapLogger, *cfg)
	if err != nil {
		_ = zapLogger.Sync()
		return nil, nil, fmt.Errorf("initialize: %w", err)
	}
	return app, zapLogger, nil
}

func closeApp(app *App, zapLogger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown failed", zap.Error(err))
	}
	_ = zapLogger.Sync()
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, zapLogger, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer closeApp(app, zapLogger)

			zapLogger.Info("Starting priority board",
				zap.String("version", Version),
				zap.String("storage", app.cfg.Storage.Driver))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := app.Serve(ctx); err != nil {
				return err
			}
			zapLogger.Info("Shutting down...")
			return nil
		},
	}
}

func backupCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore all data",
	}

	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write a backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, zapLogger, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer closeApp(app, zapLogger)

			env, err := app.codec.Export(cmd.Context())
			if err != nil {
				return err
			}
			data, err := backup.Marshal(env)
			if err != nil {
				return err
			}
			if out == "" {
				out = backup.FileName(time.Now())
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup exportado: %s\n", out)
			return nil
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", "Output file, - for stdout (default backup-prioridades-<date>.json)")

	var file string
	restore := &cobra.Command{
		Use:   "import",
		Short: "Replace all data with a backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			app, zapLogger, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer closeApp(app, zapLogger)

			if _, err := app.codec.Import(cmd.Context(), payload); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Restauração concluída!")
			return nil
		},
	}
	restore.Flags().StringVarP(&file, "file", "f", "", "Backup file to restore")
	_ = restore.MarkFlagRequired("file")

	cmd.AddCommand(export, restore)
	return cmd
}

func reportCmd(configPath *string) *cobra.Command {
	var (
		employeeID string
		out        string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the priority report as an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, zapLogger, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer closeApp(app, zapLogger)

			r, err := app.projector.Report(cmd.Context(), employeeID)
			if err != nil {
				return err
			}
			if out == "" {
				out = report.FileName(time.Now())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := report.Write(f, r); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Relatório gerado: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&employeeID, "employee", "e", "all", "Employee id, or all")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default relatorio-prioridades-<date>.xlsx)")
	return cmd
}
