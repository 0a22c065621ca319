package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	QuoteURL      string
	OrderbookURL  string
	AuthToken     string
	DigestKey     string
	EVMPrivateKey string
	BitcoinWIF    string
	LogLevel      string
	HTTPTimeout   time.Duration
}

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetConfigName(".htlc-swap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")

	// Set default values
	viper.SetDefault("quote_url", "http://localhost:6969")
	viper.SetDefault("orderbook_url", "http://localhost:4426")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("http_timeout", "30s")

	// Read from environment variables
	viper.SetEnvPrefix("HTLC_SWAP")
	viper.AutomaticEnv()

	// Read config file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		QuoteURL:      viper.GetString("quote_url"),
		OrderbookURL:  viper.GetString("orderbook_url"),
		AuthToken:     viper.GetString("auth_token"),
		DigestKey:     viper.GetString("digest_key"),
		EVMPrivateKey: viper.GetString("evm_private_key"),
		BitcoinWIF:    viper.GetString("bitcoin_wif"),
		LogLevel:      viper.GetString("log_level"),
		HTTPTimeout:   viper.GetDuration("http_timeout"),
	}

	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("http_timeout must be positive, got %s", viper.GetString("http_timeout"))
	}

	return cfg, nil
}

// RequireSwapCredentials checks the settings needed to create orders
func (c *Config) RequireSwapCredentials() error {
	if c.DigestKey == "" {
		return fmt.Errorf("digest key not found. Please set HTLC_SWAP_DIGEST_KEY or run 'htlc-swap secret new-key'")
	}
	if c.AuthToken == "" {
		return fmt.Errorf("auth token not found. Please set HTLC_SWAP_AUTH_TOKEN environment variable or add auth_token to .htlc-swap.yaml")
	}
	if c.QuoteURL == "" || c.OrderbookURL == "" {
		return fmt.Errorf("quote_url and orderbook_url must be configured")
	}
	return nil
}
