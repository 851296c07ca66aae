package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercut-dev/papercut/internal/config"
	"github.com/papercut-dev/papercut/internal/printer"
	"github.com/papercut-dev/papercut/internal/render"
	"github.com/papercut-dev/papercut/internal/ticket"
)

var previewPrint bool

var previewCmd = &cobra.Command{
	Use:   "preview <ticket.yaml>",
	Short: "Render a ticket file as a console receipt",
	Long:  `Render a YAML ticket file to the console preview. With --print the receipt is also sent to the configured printer.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		// Only printing needs a fully valid config.
		if previewPrint {
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w\nRun 'papercut config' to set up", err)
			}
		}

		t, err := ticket.LoadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Print(render.NewConsoleRenderer(cfg).Render(t))

		if !previewPrint {
			return nil
		}

		log := newLogger()
		defer log.Sync()

		vendorID, err := cfg.VendorID()
		if err != nil {
			return err
		}
		productID, err := cfg.ProductID()
		if err != nil {
			return err
		}

		session, err := printer.OpenSession(printer.USBOpener{}, vendorID, productID, cfg.Printer.Profile, log)
		if err != nil {
			return fmt.Errorf("opening printer: %w", err)
		}
		defer session.Close()

		if err := render.NewDeviceRenderer(cfg, log).Render(t, session.Device()); err != nil {
			return fmt.Errorf("printing receipt: %w", err)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().BoolVar(&previewPrint, "print", false, "also print the receipt")
	rootCmd.AddCommand(previewCmd)
}
