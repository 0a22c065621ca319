package swap

import (
	"strings"

	"htlc-swap/pkg/types"
)

// orderFee is sent until the services negotiate fees themselves.
const orderFee = "1"

// BuildOrderRequest maps validated props onto the order creation payload.
// Chains are sent by their registered identifier and amounts as plain
// integers. Bitcoin legs are addressed by the caller's Bitcoin public key,
// every other leg by the caller's EVM address.
func BuildOrderRequest(
	props types.SwapProps, chains ChainInfo, secretHash, nonce string, timelock uint64,
) types.OrderRequest {
	req := types.OrderRequest{
		SourceChain:                 chains.Canonical(props.FromAsset.Chain),
		DestinationChain:            chains.Canonical(props.ToAsset.Chain),
		SourceAsset:                 props.FromAsset.AtomicSwapAddress,
		DestinationAsset:            props.ToAsset.AtomicSwapAddress,
		InitiatorSourceAddress:      legAddress(props, chains, props.FromAsset.Chain),
		InitiatorDestinationAddress: legAddress(props, chains, props.ToAsset.Chain),
		SourceAmount:                canonicalAmount(props.SendAmount),
		DestinationAmount:           canonicalAmount(props.ReceiveAmount),
		Fee:                         orderFee,
		Nonce:                       nonce,
		MinDestinationConfirmations: props.MinDestinationConfirmations,
		Timelock:                    timelock,
		SecretHash:                  strings.TrimPrefix(secretHash, "0x"),
		AdditionalData: types.OrderAdditionalData{
			StrategyID: props.AdditionalData.StrategyID,
		},
	}

	if props.BtcRecipientAddress != "" {
		req.AdditionalData.BitcoinOptionalRecipient = props.BtcRecipientAddress
	}

	return req
}

func legAddress(props types.SwapProps, chains ChainInfo, chain string) string {
	if chains.IsBitcoin(chain) {
		return props.BtcPublicKey
	}
	return props.EVMAddress
}
