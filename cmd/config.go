package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/papercut-dev/papercut/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the printer and providers",
	Long:  `Interactively set up the USB printer, the receipt header, and the Linear signing secret. Settings are saved to papercut.toml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		// Existing values become the prompt defaults.
		existing, _ := config.Load(cfgFile)

		prompt := func(label, current string) string {
			if current != "" {
				fmt.Printf("%s [%s]: ", label, current)
			} else {
				fmt.Printf("%s: ", label)
			}
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)
			if input == "" {
				return current
			}
			return input
		}

		cfg := existing
		cfg.Printer.USBVendorID = prompt("USB vendor id (e.g., 0x04b8)", existing.Printer.USBVendorID)
		cfg.Printer.USBProductID = prompt("USB product id (e.g., 0x0e28)", existing.Printer.USBProductID)
		cfg.Printer.Profile = prompt("Printer profile", existing.Printer.Profile)
		cfg.Header.CompanyName = prompt("Company name (blank to omit)", existing.Header.CompanyName)
		cfg.Footer.FooterText = prompt("Footer text (blank to omit)", existing.Footer.FooterText)

		// Signing secret (masked input)
		fmt.Print("Linear signing secret (input hidden): ")
		secretBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading secret: %w", err)
		}
		secret := strings.TrimSpace(string(secretBytes))
		if secret == "" {
			secret = existing.Providers.Linear.SigningSecret
		}
		cfg.Providers.Linear.SigningSecret = secret

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		path := cfgFile
		if path == "" {
			path = "papercut.toml"
		}

		if err := config.Save(cfg, path); err != nil {
			return err
		}

		fmt.Printf("Configuration saved to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
