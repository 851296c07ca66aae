package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papercut-dev/papercut/internal/config"
	"github.com/papercut-dev/papercut/internal/logger"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	appConfig config.Config
	version   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:     "papercut",
	Short:   "Print your tickets on a real receipt printer",
	Long:    `Papercut receives ticket webhooks (Linear supported), renders them as receipts, and prints them on an ESC/POS receipt printer. Every ticket also gets an ASCII preview on the console.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches /config, ./config, .)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
}

// loadConfig loads and validates configuration. Commands that touch the
// printer or the webhook server call this.
func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun 'papercut config' to set up", err)
	}
	appConfig = cfg
	return nil
}

func newLogger() *zap.Logger {
	return logger.New(logLevel, logFormat)
}
