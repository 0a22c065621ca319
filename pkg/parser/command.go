package parser

import (
	"fmt"
	"regexp"
	"strings"

	"htlc-swap/pkg/types"
)

// <send> <chain>:<htlc> TO <receive> <chain>:<htlc>
var swapPattern = regexp.MustCompile(`^(\S+)\s+([A-Za-z0-9_]+):(\S+)\s+(?i:to)\s+(\S+)\s+([A-Za-z0-9_]+):(\S+)$`)

// ParseSwapCommand parses a swap command into swap parameters.
// Amounts are in the smallest unit of each asset.
// Examples:
//   - "swap 100000 bitcoin_testnet:primary to 99000000 ethereum_sepolia:0xA5E3...1f"
//   - "1000 eth:0x123...abc to 990 arb:0x456...def"
func ParseSwapCommand(command string) (*types.SwapParams, error) {
	command = strings.TrimSpace(command)

	// Remove the word "swap" if present at the beginning
	if len(command) >= 5 && strings.EqualFold(command[:5], "swap ") {
		command = strings.TrimSpace(command[5:])
	}

	matches := swapPattern.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid swap command format. Expected: 'swap <amount> <chain>:<htlc> to <amount> <chain>:<htlc>' (e.g., 'swap 100000 bitcoin_testnet:primary to 99000000 ethereum_sepolia:0xA5E3...')")
	}

	return &types.SwapParams{
		SendAmount:    matches[1],
		FromAsset:     types.Asset{Chain: NormalizeChain(matches[2]), AtomicSwapAddress: matches[3]},
		ReceiveAmount: matches[4],
		ToAsset:       types.Asset{Chain: NormalizeChain(matches[5]), AtomicSwapAddress: matches[6]},
	}, nil
}

// ValidateSwapParams checks that a parsed swap has all required fields
func ValidateSwapParams(params *types.SwapParams) error {
	if params.SendAmount == "" {
		return fmt.Errorf("send amount is required")
	}
	if params.ReceiveAmount == "" {
		return fmt.Errorf("receive amount is required")
	}
	if params.FromAsset.Chain == "" || params.FromAsset.AtomicSwapAddress == "" {
		return fmt.Errorf("source asset is required")
	}
	if params.ToAsset.Chain == "" || params.ToAsset.AtomicSwapAddress == "" {
		return fmt.Errorf("destination asset is required")
	}
	return nil
}

// NormalizeChain normalizes chain identifiers to registry format
func NormalizeChain(chain string) string {
	chain = strings.TrimSpace(strings.ToLower(chain))

	// Handle common aliases
	aliases := map[string]string{
		"btc":     "bitcoin",
		"tbtc":    "bitcoin_testnet",
		"eth":     "ethereum",
		"sepolia": "ethereum_sepolia",
		"arb":     "arbitrum",
	}

	if normalized, exists := aliases[chain]; exists {
		return normalized
	}

	return chain
}
