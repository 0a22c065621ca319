package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"htlc-swap/pkg/chains"
)

var filterNetwork string

var chainsCmd = &cobra.Command{
	Use:     "chains",
	Aliases: []string{"list-chains", "ls"},
	Short:   "List all supported chains",
	Long: `List the chains swaps can be initiated on, with their refund timelocks.

Source and destination of a swap must both be mainnet or both be testnet.

Examples:
  htlc-swap chains
  htlc-swap chains --network testnet`,
	Run: runListChains,
}

func init() {
	rootCmd.AddCommand(chainsCmd)

	chainsCmd.Flags().StringVar(&filterNetwork, "network", "", "Filter by network (mainnet or testnet)")
}

func runListChains(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	var filtered []chains.Chain
	for _, c := range chains.Default().All() {
		if filterNetwork != "" && !strings.EqualFold(string(c.Network), filterNetwork) {
			continue
		}
		filtered = append(filtered, c)
	}

	if filterNetwork != "" && len(filtered) == 0 {
		printError(fmt.Errorf("unknown network %q, expected mainnet or testnet", filterNetwork))
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(filtered, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayChains(filtered)
	}
}

func displayChains(list []chains.Chain) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                        SUPPORTED CHAINS")
	fmt.Println(strings.Repeat("=", 70))

	// Group chains by network
	byNetwork := make(map[chains.Network][]chains.Chain)
	for _, c := range list {
		byNetwork[c.Network] = append(byNetwork[c.Network], c)
	}

	for _, network := range []chains.Network{chains.Mainnet, chains.Testnet} {
		group := byNetwork[network]
		if len(group) == 0 {
			continue
		}

		color.Cyan("\n%s", strings.ToUpper(string(network)))
		fmt.Println(strings.Repeat("-", 70))

		for _, c := range group {
			fmt.Printf("  %-28s  %-8s  %6d blocks  %s\n",
				color.YellowString(c.ID),
				c.Family,
				c.TimeLock,
				color.HiBlackString(c.Name))
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Printf("\nTotal: %d chains\n\n", len(list))
}
