package main

import (
	"os"

	"github.com/shenikar/cpr_dispatch/internal/config"
	"github.com/shenikar/cpr_dispatch/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "cpr-dispatch",
	Short:         "Emergency CPR request ledger and dispatch API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute запускает CLI и завершает процесс с ненулевым кодом при ошибке
func Execute() {
	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

// loadEnv загружает конфигурацию и логгер, общие для всех команд
func loadEnv() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.LogLevel), nil
}
