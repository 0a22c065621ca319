package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"htlc-swap/config"
	"htlc-swap/pkg/chains"
	"htlc-swap/pkg/client"
	"htlc-swap/pkg/digestkey"
	"htlc-swap/pkg/parser"
	"htlc-swap/pkg/swap"
	"htlc-swap/pkg/types"
	"htlc-swap/pkg/wallet"
)

var (
	strategyID       string
	btcAddress       string
	btcRecipientAddr string
	btcPublicKey     string
	evmAddress       string
	minConfirmations uint64
	noConfirm        bool
	dryRun           bool
)

var swapCmd = &cobra.Command{
	Use:   "swap <send-amount> <chain>:<htlc> to <receive-amount> <chain>:<htlc>",
	Short: "Initiate a cross-chain atomic swap",
	Long: `Initiate a cross-chain atomic swap.

Amounts are integers in the smallest unit of each asset (satoshis, wei, ...).
The send amount covers network fees and slippage, so it must be at least the
receive amount.

IMPORTANT:
  - You MUST specify --strategy (the solver strategy quoting your order)
  - You MUST specify --btc-address when either side is a Bitcoin chain
  - Keep the printed secret and nonce: the secret is needed to redeem and can
    be re-derived with 'htlc-swap secret derive --nonce <nonce>'

Examples:
  # EVM to EVM
  htlc-swap swap 100000 ethereum_sepolia:0x1111... to 99000 arbitrum_sepolia:0x2222... --strategy s1

  # EVM to Bitcoin, receiving to a specific address
  htlc-swap swap 1000000 sepolia:0x1111... to 9000 tbtc:primary --strategy s2 \
    --btc-address tb1q... --btc-recipient tb1q...

  # Only print the order request
  htlc-swap swap 100 eth:0x1111... to 90 arb:0x2222... --strategy s1 --dry-run`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().StringVar(&strategyID, "strategy", "", "Solver strategy id (REQUIRED)")
	swapCmd.Flags().StringVar(&btcAddress, "btc-address", "", "Bitcoin refund/redeem address (required for Bitcoin swaps)")
	swapCmd.Flags().StringVar(&btcRecipientAddr, "btc-recipient", "", "Bitcoin address to receive to (defaults to --btc-address)")
	swapCmd.Flags().StringVar(&btcPublicKey, "btc-pubkey", "", "Bitcoin public key (defaults to the key of bitcoin_wif)")
	swapCmd.Flags().StringVar(&evmAddress, "evm-address", "", "EVM address (defaults to the address of evm_private_key)")
	swapCmd.Flags().Uint64Var(&minConfirmations, "min-confirmations", 0, "Minimum confirmations of the destination initiation")
	swapCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "Skip confirmation prompt")
	swapCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the order request without contacting any service")
}

func runSwap(cmd *cobra.Command, args []string) {
	// Parse the command
	params, err := parser.ParseSwapCommand(strings.Join(args, " "))
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	params.MinDestinationConfirmations = minConfirmations
	params.AdditionalData = types.AdditionalData{
		StrategyID: strategyID,
		BtcAddress: btcAddress,
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// Load configuration
	cfg, err := loadConfig(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if !dryRun {
		err = cfg.RequireSwapCredentials()
	} else if cfg.DigestKey == "" {
		err = fmt.Errorf("digest key not found. Please set HTLC_SWAP_DIGEST_KEY or run 'htlc-swap secret new-key'")
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	registry := chains.Default()

	props, err := buildProps(cfg, registry, *params)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	key, err := digestkey.FromHex(cfg.DigestKey)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	swapper := swap.NewSwapper(
		registry,
		key,
		client.NewQuoteClient(cfg.QuoteURL, cfg.HTTPTimeout),
		client.NewOrderbookClient(cfg.OrderbookURL, cfg.HTTPTimeout),
		client.NewStaticAuth(cfg.AuthToken),
	)

	prepared, err := swapper.Prepare(props)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("\nOrder request:\n")
		reqJSON, _ := json.MarshalIndent(prepared.Request, "", "  ")
		fmt.Println(string(reqJSON))
	}

	if dryRun {
		if jsonOutput {
			jsonData, _ := json.MarshalIndent(prepared.Request, "", "  ")
			fmt.Println(string(jsonData))
		} else {
			displayOrder(&prepared.Request)
			fmt.Println("Dry run: nothing was submitted.")
		}
		return
	}

	if !jsonOutput {
		displayOrder(&prepared.Request)
	}

	// Ask for confirmation
	if !noConfirm && !jsonOutput {
		if !confirmSwap() {
			fmt.Println("\nSwap cancelled.")
			os.Exit(0)
		}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Requesting attested quote and submitting order..."
		s.Start()
	}

	result, err := swapper.Submit(context.Background(), prepared)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		if verbose {
			fmt.Printf("\nDebug: The swap was not initiated. This might be due to:\n")
			fmt.Printf("  1. No solver accepting the strategy or amounts\n")
			fmt.Printf("  2. An expired or invalid auth token\n")
			fmt.Printf("  3. The attested quote expiring before submission\n")
			fmt.Printf("Retrying derives a fresh secret.\n")
		}
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	displayResult(result)
	fmt.Println("You can monitor the order using:")
	color.Cyan("  htlc-swap status %s\n", result.OrderID)
}

// buildProps checks the order rules before resolving addresses, so request
// errors surface ahead of missing key material.
func buildProps(cfg *config.Config, registry *chains.Registry, params types.SwapParams) (types.SwapProps, error) {
	if err := swap.ValidateProps(types.SwapProps{SwapParams: params}, registry); err != nil {
		return types.SwapProps{}, err
	}
	return resolveProps(cfg, registry, params)
}

// resolveProps fills in the addressing material for each leg and checks it
// against the chain registry.
func resolveProps(cfg *config.Config, registry *chains.Registry, params types.SwapParams) (types.SwapProps, error) {
	props := types.SwapProps{SwapParams: params}

	fromBitcoin := registry.IsBitcoin(params.FromAsset.Chain)
	toBitcoin := registry.IsBitcoin(params.ToAsset.Chain)

	if !fromBitcoin || !toBitcoin {
		addr := evmAddress
		if addr == "" && cfg.EVMPrivateKey != "" {
			derived, err := wallet.EVMAddress(cfg.EVMPrivateKey)
			if err != nil {
				return props, err
			}
			addr = derived
		}
		if addr == "" {
			return props, fmt.Errorf("EVM address required. Use --evm-address or set HTLC_SWAP_EVM_PRIVATE_KEY")
		}
		if err := wallet.ValidateEVMAddress(addr); err != nil {
			return props, err
		}
		props.EVMAddress = addr
	}

	if fromBitcoin || toBitcoin {
		bitcoinChain := params.ToAsset.Chain
		if fromBitcoin {
			bitcoinChain = params.FromAsset.Chain
		}

		pubKey := btcPublicKey
		if pubKey == "" && cfg.BitcoinWIF != "" {
			derived, err := wallet.BitcoinPublicKey(cfg.BitcoinWIF)
			if err != nil {
				return props, err
			}
			pubKey = derived
		}
		if pubKey == "" {
			return props, fmt.Errorf("bitcoin public key required. Use --btc-pubkey or set HTLC_SWAP_BITCOIN_WIF")
		}
		if err := wallet.ValidateBitcoinPublicKey(pubKey); err != nil {
			return props, err
		}
		props.BtcPublicKey = pubKey

		if params.AdditionalData.BtcAddress != "" {
			if err := wallet.ValidateBitcoinAddress(params.AdditionalData.BtcAddress, bitcoinChain); err != nil {
				return props, err
			}
		}

		recipient := btcRecipientAddr
		if recipient == "" && toBitcoin {
			recipient = params.AdditionalData.BtcAddress
		}
		if recipient != "" {
			if err := wallet.ValidateBitcoinAddress(recipient, bitcoinChain); err != nil {
				return props, err
			}
			props.BtcRecipientAddress = recipient
		}
	}

	return props, nil
}

func displayOrder(req *types.OrderRequest) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                     SWAP ORDER")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  Send:              %s on %s\n", req.SourceAmount, color.YellowString(req.SourceChain))
	fmt.Printf("  Receive:           %s on %s\n", req.DestinationAmount, color.YellowString(req.DestinationChain))
	fmt.Printf("  Source HTLC:       %s\n", req.SourceAsset)
	fmt.Printf("  Destination HTLC:  %s\n", req.DestinationAsset)
	fmt.Printf("  From:              %s\n", color.CyanString(req.InitiatorSourceAddress))
	fmt.Printf("  To:                %s\n", color.CyanString(req.InitiatorDestinationAddress))
	if req.AdditionalData.BitcoinOptionalRecipient != "" {
		fmt.Printf("  BTC Recipient:     %s\n", color.CyanString(req.AdditionalData.BitcoinOptionalRecipient))
	}
	fmt.Printf("  Strategy:          %s\n", req.AdditionalData.StrategyID)
	fmt.Printf("  Timelock:          %d blocks\n", req.Timelock)
	fmt.Printf("  Secret Hash:       %s\n", color.HiBlackString(req.SecretHash))

	fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
}

func displayResult(result *types.SwapResult) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                   ORDER CREATED")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  Order ID:     %s\n", color.CyanString(result.OrderID))
	fmt.Printf("  Nonce:        %s\n", result.Nonce)
	fmt.Printf("  Secret Hash:  %s\n", result.SecretHash)
	fmt.Printf("  Secret:       %s\n", color.MagentaString(result.Secret))
	color.Yellow("\n  Keep the secret private until you redeem.")

	fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
}

func confirmSwap() bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("\nProceed with swap? (y/N): ")

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
