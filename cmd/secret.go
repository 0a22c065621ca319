package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"htlc-swap/pkg/digestkey"
	"htlc-swap/pkg/swap"
)

var secretNonce string

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage the digest key and swap secrets",
	Long: `Manage the digest key swap secrets are derived from.

Every swap secret is derived from the digest key and the swap's nonce, so any
secret can be recovered later from the nonce printed when the order was created.`,
}

var newKeyCmd = &cobra.Command{
	Use:   "new-key",
	Short: "Generate a new digest key",
	Long: `Generate a new random digest key.

Store it as HTLC_SWAP_DIGEST_KEY (or digest_key in .htlc-swap.yaml). Losing the
key means losing the ability to re-derive the secrets of your pending swaps.`,
	Args: cobra.NoArgs,
	Run:  runNewKey,
}

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Re-derive the secret of a swap from its nonce",
	Long: `Re-derive the secret and secret hash of a swap from its nonce.

Examples:
  htlc-swap secret derive --nonce 1700000000000`,
	Args: cobra.NoArgs,
	Run:  runDerive,
}

func init() {
	rootCmd.AddCommand(secretCmd)
	secretCmd.AddCommand(newKeyCmd)
	secretCmd.AddCommand(deriveCmd)

	deriveCmd.Flags().StringVar(&secretNonce, "nonce", "", "Nonce of the swap (REQUIRED)")
	_ = deriveCmd.MarkFlagRequired("nonce")
}

func runNewKey(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	key, err := digestkey.Generate()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(map[string]string{
			"digest_key": key.Hex(),
			"address":    key.Address().Hex(),
		}, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	printSuccess("New digest key generated.")
	fmt.Printf("  Digest Key:  %s\n", color.MagentaString(key.Hex()))
	fmt.Printf("  Address:     %s\n", color.CyanString(key.Address().Hex()))
	color.Yellow("\n  Add it to your environment:")
	fmt.Printf("    export HTLC_SWAP_DIGEST_KEY=%s\n\n", key.Hex())
}

func runDerive(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if cfg.DigestKey == "" {
		printError(fmt.Errorf("digest key not found. Please set HTLC_SWAP_DIGEST_KEY"))
		os.Exit(1)
	}

	key, err := digestkey.FromHex(cfg.DigestKey)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	secret, secretHash, err := swap.GenerateSecret(key, secretNonce)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(map[string]string{
			"nonce":       secretNonce,
			"secret":      hex.EncodeToString(secret),
			"secret_hash": hex.EncodeToString(secretHash),
		}, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	fmt.Printf("\n  Nonce:        %s\n", secretNonce)
	fmt.Printf("  Secret Hash:  %s\n", hex.EncodeToString(secretHash))
	fmt.Printf("  Secret:       %s\n\n", color.MagentaString(hex.EncodeToString(secret)))
}
