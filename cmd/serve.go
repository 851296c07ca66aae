package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papercut-dev/papercut/internal/printer"
	"github.com/papercut-dev/papercut/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook server",
	Long:  `Listen for ticket webhooks and print each new ticket as a receipt. Runs until interrupted; queued print jobs drain before exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		log := newLogger()
		defer log.Sync()

		vendorID, err := appConfig.VendorID()
		if err != nil {
			return err
		}
		productID, err := appConfig.ProductID()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// The worker gets its own context so queued jobs drain via Stop
		// after the HTTP server has shut down.
		queue := printer.NewQueue(printer.USBOpener{}, vendorID, productID, appConfig.Printer.Profile, log.Named("queue"))
		queue.Start(context.Background())
		defer queue.Stop()

		srv := server.New(appConfig, queue, log)
		if err := srv.Run(ctx, serveAddr); err != nil {
			return fmt.Errorf("running server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8000", "listen address")
	rootCmd.AddCommand(serveCmd)
}
