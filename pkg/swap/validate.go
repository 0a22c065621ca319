package swap

import (
	"strings"

	"htlc-swap/pkg/types"
)

// ValidateProps applies the order business rules to props. The first failing
// rule is reported; props are never modified.
func ValidateProps(props types.SwapProps, chains ChainInfo) error {
	from, to := props.FromAsset, props.ToAsset

	if props.AdditionalData.StrategyID == "" {
		return ErrMissingStrategyID
	}

	if chains.Canonical(from.Chain) == chains.Canonical(to.Chain) &&
		strings.EqualFold(strings.TrimSpace(from.AtomicSwapAddress), strings.TrimSpace(to.AtomicSwapAddress)) {
		return ErrIdenticalAssets
	}

	fromMainnet, err := chains.IsMainnet(from.Chain)
	if err != nil {
		return err
	}
	toMainnet, err := chains.IsMainnet(to.Chain)
	if err != nil {
		return err
	}
	if fromMainnet != toMainnet {
		return ErrNetworkMismatch
	}

	send, err := ValidateAmount(props.SendAmount)
	if err != nil {
		return err
	}
	receive, err := ValidateAmount(props.ReceiveAmount)
	if err != nil {
		return err
	}

	// The send side also pays network fees and slippage.
	if send.LessThan(receive) {
		return ErrSendNotGreaterThanReceive
	}

	if (chains.IsBitcoin(from.Chain) || chains.IsBitcoin(to.Chain)) && props.AdditionalData.BtcAddress == "" {
		return ErrMissingBtcAddress
	}

	return nil
}
