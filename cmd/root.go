package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"htlc-swap/config"
)

var rootCmd = &cobra.Command{
	Use:   "htlc-swap",
	Short: "A CLI for initiating cross-chain atomic swaps",
	Long: `htlc-swap initiates cross-chain atomic swaps secured by hash time-locked
contracts. It derives the swap secret from your digest key, has a solver attest
a quote for your order and submits the order to the orderbook. The secret is
printed once the order is created and never leaves your machine before that.

Examples:
  htlc-swap swap 100000 bitcoin_testnet:primary to 99000000 ethereum_sepolia:0xA5E3... --strategy s1 --btc-address tb1q...
  htlc-swap chains
  htlc-swap status <order-id>
  htlc-swap secret derive --nonce 1700000000000`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(os.Stderr)
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

// loadConfig loads the configuration and applies its log level unless
// --verbose already raised it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose && cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
		}
		log.SetLevel(level)
	}

	return cfg, nil
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

func printSuccess(message string) {
	fmt.Printf("\n%s\n\n", message)
}
