package swap_test

import (
	"encoding/json"
	"testing"

	"htlc-swap/pkg/chains"
	"htlc-swap/pkg/swap"

	"github.com/stretchr/testify/require"
)

func TestBuildOrderRequest(t *testing.T) {
	registry := chains.Default()

	t.Run("evm to evm", func(t *testing.T) {
		props := evmProps()
		props.MinDestinationConfirmations = 2

		req := swap.BuildOrderRequest(props, registry, "0xabcdef", "123", 7200)
		require.Equal(t, "ethereum_sepolia", req.SourceChain)
		require.Equal(t, "arbitrum_sepolia", req.DestinationChain)
		require.Equal(t, sepoliaHTLC, req.SourceAsset)
		require.Equal(t, arbitrumHTLC, req.DestinationAsset)
		require.Equal(t, evmAddress, req.InitiatorSourceAddress)
		require.Equal(t, evmAddress, req.InitiatorDestinationAddress)
		require.Equal(t, "100", req.SourceAmount)
		require.Equal(t, "90", req.DestinationAmount)
		require.Equal(t, "1", req.Fee)
		require.Equal(t, "123", req.Nonce)
		require.Equal(t, uint64(2), req.MinDestinationConfirmations)
		require.Equal(t, uint64(7200), req.Timelock)
		require.Equal(t, "abcdef", req.SecretHash)
		require.Equal(t, "s1", req.AdditionalData.StrategyID)
		require.Empty(t, req.AdditionalData.BitcoinOptionalRecipient)
	})

	t.Run("canonical chains and amounts", func(t *testing.T) {
		props := evmProps()
		props.FromAsset.Chain = " Ethereum_Sepolia"
		props.ToAsset.Chain = "ARBITRUM_SEPOLIA"
		props.SendAmount = "1e3"
		props.ReceiveAmount = "+0900.0"

		req := swap.BuildOrderRequest(props, registry, "abcdef", "123", 7200)
		require.Equal(t, "ethereum_sepolia", req.SourceChain)
		require.Equal(t, "arbitrum_sepolia", req.DestinationChain)
		require.Equal(t, "1000", req.SourceAmount)
		require.Equal(t, "900", req.DestinationAmount)
	})

	t.Run("leading zeros dropped", func(t *testing.T) {
		props := evmProps()
		props.SendAmount = "0100"
		props.ReceiveAmount = "099"

		req := swap.BuildOrderRequest(props, registry, "abcdef", "123", 7200)
		require.Equal(t, "100", req.SourceAmount)
		require.Equal(t, "99", req.DestinationAmount)
	})

	t.Run("evm to bitcoin", func(t *testing.T) {
		req := swap.BuildOrderRequest(btcProps(), registry, "abcdef", "123", 7200)
		require.Equal(t, evmAddress, req.InitiatorSourceAddress)
		require.Equal(t, btcPublicKey, req.InitiatorDestinationAddress)
		require.Equal(t, "abcdef", req.SecretHash)
	})

	t.Run("bitcoin to evm", func(t *testing.T) {
		props := btcProps()
		props.FromAsset, props.ToAsset = props.ToAsset, props.FromAsset

		req := swap.BuildOrderRequest(props, registry, "abcdef", "123", 144)
		require.Equal(t, btcPublicKey, req.InitiatorSourceAddress)
		require.Equal(t, evmAddress, req.InitiatorDestinationAddress)
		require.Equal(t, uint64(144), req.Timelock)
	})

	t.Run("bitcoin recipient", func(t *testing.T) {
		props := btcProps()
		props.BtcRecipientAddress = "tb1qrecipient"

		req := swap.BuildOrderRequest(props, registry, "abcdef", "123", 7200)
		require.Equal(t, "tb1qrecipient", req.AdditionalData.BitcoinOptionalRecipient)

		raw, err := json.Marshal(req)
		require.NoError(t, err)
		require.Contains(t, string(raw), `"bitcoin_optional_recipient":"tb1qrecipient"`)
	})

	t.Run("recipient omitted from wire", func(t *testing.T) {
		raw, err := json.Marshal(swap.BuildOrderRequest(btcProps(), registry, "abcdef", "123", 7200))
		require.NoError(t, err)
		require.NotContains(t, string(raw), "bitcoin_optional_recipient")
		require.Contains(t, string(raw), `"secret_hash":"abcdef"`)
		require.Contains(t, string(raw), `"strategy_id":"s1"`)
	})
}
