// Package config loads and validates the papercut.toml configuration.
// The rendering engine receives the resolved Config by value and never
// re-derives defaults; empty strings in optional fields mean "absent".
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Receipt geometry for 80mm thermal paper. The console preview is fixed
// to these; the device renderer asks the printer for its column count.
const (
	ReceiptWidth   = 48
	ReceiptPadding = 2
	ReceiptInner   = ReceiptWidth - ReceiptPadding*2
)

// PrinterConfig identifies the USB printer. Vendor and product ids are
// hex strings in the file ("0x04b8") and parsed by VendorID/ProductID.
type PrinterConfig struct {
	USBVendorID  string `mapstructure:"usb_vendor_id"`
	USBProductID string `mapstructure:"usb_product_id"`
	Profile      string `mapstructure:"profile"`
}

// HeaderConfig is the receipt header block. Every field is optional;
// empty means omitted.
type HeaderConfig struct {
	Disabled     bool   `mapstructure:"disabled"`
	LogoPath     string `mapstructure:"logo_path"`
	CompanyName  string `mapstructure:"company_name"`
	AddressLine1 string `mapstructure:"address_line1"`
	AddressLine2 string `mapstructure:"address_line2"`
	Phone        string `mapstructure:"phone"`
	URL          string `mapstructure:"url"`
}

// FooterConfig is the receipt footer block.
type FooterConfig struct {
	Disabled       bool   `mapstructure:"disabled"`
	QRCodeDisabled bool   `mapstructure:"qr_code_disabled"`
	QRCodeSize     int    `mapstructure:"qr_code_size"`
	QRCodeTitle    string `mapstructure:"qr_code_title"`
	FooterText     string `mapstructure:"footer_text"`
}

// LinearConfig configures the Linear webhook provider.
type LinearConfig struct {
	Disabled             bool   `mapstructure:"disabled"`
	SigningSecret        string `mapstructure:"signing_secret"`
	MaxTitleLength       int    `mapstructure:"max_title_length"`
	MaxDescriptionLength int    `mapstructure:"max_description_length"`
}

// ProvidersConfig groups the statically known providers.
type ProvidersConfig struct {
	Linear LinearConfig `mapstructure:"linear"`
}

// Config is the resolved configuration record.
type Config struct {
	Printer   PrinterConfig   `mapstructure:"printer"`
	Header    HeaderConfig    `mapstructure:"header"`
	Footer    FooterConfig    `mapstructure:"footer"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

// searchPaths, in priority order: mounted config (Docker), local config
// dir, repo default.
var searchPaths = []string{"/config", "./config", "."}

// Load reads configuration from papercut.toml. configPath may be empty to
// search the default locations; the first file found wins.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("papercut")
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
	}

	// Env override so the secret can stay out of the file.
	v.BindEnv("providers.linear.signing_secret", "PAPERCUT_LINEAR_SIGNING_SECRET")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("printer.profile", "default")
	v.SetDefault("footer.qr_code_size", 6)
	v.SetDefault("providers.linear.max_title_length", 100)
	v.SetDefault("providers.linear.max_description_length", 350)
}

// Validate checks the invariants the rest of the process relies on.
func (c Config) Validate() error {
	if _, err := c.VendorID(); err != nil {
		return fmt.Errorf("invalid [printer] usb_vendor_id: %w", err)
	}
	if _, err := c.ProductID(); err != nil {
		return fmt.Errorf("invalid [printer] usb_product_id: %w", err)
	}
	if c.Footer.QRCodeSize < 1 || c.Footer.QRCodeSize > 16 {
		return fmt.Errorf("[footer] qr_code_size must be between 1 and 16, got %d", c.Footer.QRCodeSize)
	}
	if c.Providers.Linear.MaxTitleLength < 4 {
		return fmt.Errorf("[providers.linear] max_title_length must be at least 4")
	}
	if c.Providers.Linear.MaxDescriptionLength < 4 {
		return fmt.Errorf("[providers.linear] max_description_length must be at least 4")
	}
	if !c.Providers.Linear.Disabled && c.Providers.Linear.SigningSecret == "" {
		return fmt.Errorf("[providers.linear] signing_secret is required when the Linear provider is enabled; set it or disable the provider")
	}
	return nil
}

// VendorID parses the configured USB vendor id ("0x04b8" or "1208").
func (c Config) VendorID() (uint16, error) {
	return parseUSBID(c.Printer.USBVendorID)
}

// ProductID parses the configured USB product id.
func (c Config) ProductID() (uint16, error) {
	return parseUSBID(c.Printer.USBProductID)
}

func parseUSBID(s string) (uint16, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	id, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return uint16(id), nil
}

// Save writes the config to the given path as TOML.
func Save(cfg Config, path string) error {
	v := viper.New()
	v.SetConfigType("toml")

	v.Set("printer.usb_vendor_id", cfg.Printer.USBVendorID)
	v.Set("printer.usb_product_id", cfg.Printer.USBProductID)
	v.Set("printer.profile", cfg.Printer.Profile)
	v.Set("header.disabled", cfg.Header.Disabled)
	v.Set("header.logo_path", cfg.Header.LogoPath)
	v.Set("header.company_name", cfg.Header.CompanyName)
	v.Set("header.address_line1", cfg.Header.AddressLine1)
	v.Set("header.address_line2", cfg.Header.AddressLine2)
	v.Set("header.phone", cfg.Header.Phone)
	v.Set("header.url", cfg.Header.URL)
	v.Set("footer.disabled", cfg.Footer.Disabled)
	v.Set("footer.qr_code_disabled", cfg.Footer.QRCodeDisabled)
	v.Set("footer.qr_code_size", cfg.Footer.QRCodeSize)
	v.Set("footer.qr_code_title", cfg.Footer.QRCodeTitle)
	v.Set("footer.footer_text", cfg.Footer.FooterText)
	v.Set("providers.linear.disabled", cfg.Providers.Linear.Disabled)
	v.Set("providers.linear.signing_secret", cfg.Providers.Linear.SigningSecret)
	v.Set("providers.linear.max_title_length", cfg.Providers.Linear.MaxTitleLength)
	v.Set("providers.linear.max_description_length", cfg.Providers.Linear.MaxDescriptionLength)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
