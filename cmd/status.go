package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"htlc-swap/pkg/client"
	"htlc-swap/pkg/types"
)

const maxWatchFailures = 5

var (
	watchStatus   bool
	watchInterval int
)

var statusCmd = &cobra.Command{
	Use:   "status <order-id>",
	Short: "Check the status of a swap order",
	Long: `Check the status of a swap order by its order id.

Examples:
  htlc-swap status 4f3c...e1
  htlc-swap status 4f3c...e1 --watch
  htlc-swap status 4f3c...e1 --watch --interval 10`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Watch status updates continuously")
	statusCmd.Flags().IntVar(&watchInterval, "interval", 5, "Polling interval in seconds (when watching)")
}

func runStatus(cmd *cobra.Command, args []string) {
	orderID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	orderbook := client.NewOrderbookClient(cfg.OrderbookURL, cfg.HTTPTimeout)

	if watchStatus {
		watchOrderStatus(orderbook, orderID, jsonOutput)
	} else {
		checkOrderStatus(orderbook, orderID, jsonOutput)
	}
}

func checkOrderStatus(orderbook *client.OrderbookClient, orderID string, jsonOutput bool) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Checking order status..."
		s.Start()
	}

	order, err := orderbook.GetOrder(context.Background(), orderID)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(order, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayStatus(order, orderID)
	}
}

func watchOrderStatus(orderbook *client.OrderbookClient, orderID string, jsonOutput bool) {
	if jsonOutput {
		fmt.Println(`{"error": "watch mode not supported with JSON output"}`)
		os.Exit(1)
	}
	if watchInterval <= 0 {
		printError(fmt.Errorf("--interval must be positive"))
		os.Exit(1)
	}

	fmt.Printf("\nWatching order status (Order ID: %s)\n", color.CyanString(orderID))
	fmt.Printf("Checking every %d seconds. Press Ctrl+C to stop.\n\n", watchInterval)

	ticker := time.NewTicker(time.Duration(watchInterval) * time.Second)
	defer ticker.Stop()

	failures := 0
	for {
		done, err := checkAndDisplayStatus(orderbook, orderID)
		if err != nil {
			failures++
			color.Red("Error: %v", err)
			if stopWatching(err, failures) {
				os.Exit(1)
			}
		} else {
			failures = 0
		}
		if done {
			return
		}
		<-ticker.C
	}
}

// stopWatching reports whether polling should give up: the orderbook rejected
// the request itself, or it failed too many times in a row.
func stopWatching(err error, consecutiveFailures int) bool {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode >= 400 && httpErr.StatusCode < 500 {
		return true
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return true
	}
	return consecutiveFailures >= maxWatchFailures
}

// checkAndDisplayStatus reports whether the order reached a final state
func checkAndDisplayStatus(orderbook *client.OrderbookClient, orderID string) (bool, error) {
	order, err := orderbook.GetOrder(context.Background(), orderID)
	if err != nil {
		return false, err
	}

	displayStatus(order, orderID)

	status := order.Status()
	return status == types.OrderStatusRedeemed || status == types.OrderStatusRefunded, nil
}

func displayStatus(order *types.MatchedOrder, orderID string) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                        ORDER STATUS")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Order ID:        %s\n", color.CyanString(orderID))
	fmt.Printf("  Status:          %s\n", getColoredStatus(order.Status()))
	if !order.CreatedAt.IsZero() {
		fmt.Printf("  Created:         %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("  Route:           %s -> %s\n",
		color.YellowString(order.SourceSwap.Chain),
		color.YellowString(order.DestinationSwap.Chain))
	fmt.Printf("  Amount In:       %s\n", order.SourceSwap.Amount)
	fmt.Printf("  Amount Out:      %s\n", order.DestinationSwap.Amount)
	fmt.Printf("  Secret Hash:     %s\n", color.HiBlackString(order.SourceSwap.SecretHash))

	displayLeg("Source", order.SourceSwap)
	displayLeg("Destination", order.DestinationSwap)

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func displayLeg(label string, leg types.SwapLeg) {
	txs := []struct{ name, hash string }{
		{"Initiate", leg.InitiateTxHash},
		{"Redeem", leg.RedeemTxHash},
		{"Refund", leg.RefundTxHash},
	}
	for _, tx := range txs {
		if tx.hash != "" {
			fmt.Printf("  %-16s %s\n", label+" "+tx.name+":", color.HiBlackString(tx.hash))
		}
	}
}

func getColoredStatus(status string) string {
	switch status {
	case types.OrderStatusRedeemed:
		return color.GreenString(status)
	case types.OrderStatusMatched, types.OrderStatusInitiated:
		return color.YellowString(status)
	case types.OrderStatusRefunded:
		return color.RedString(status)
	default:
		return status
	}
}
