package cmd

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"htlc-swap/config"
	"htlc-swap/pkg/chains"
	"htlc-swap/pkg/swap"
	"htlc-swap/pkg/types"
)

const testEVMKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

func resetSwapFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		evmAddress, btcPublicKey, btcRecipientAddr = "", "", ""
	})
}

func testnetTaproot(t *testing.T) (wif, xonlyHex, address string) {
	t.Helper()

	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	w, err := btcutil.NewWIF(priv, &chaincfg.TestNet3Params, true)
	require.NoError(t, err)
	xonly := schnorr.SerializePubKey(priv.PubKey())
	addr, err := btcutil.NewAddressTaproot(xonly, &chaincfg.TestNet3Params)
	require.NoError(t, err)

	return w.String(), hex.EncodeToString(xonly), addr.EncodeAddress()
}

func TestResolveProps(t *testing.T) {
	registry := chains.Default()

	t.Run("evm address from private key", func(t *testing.T) {
		resetSwapFlags(t)
		params := types.SwapParams{
			FromAsset: types.Asset{Chain: "ethereum_sepolia", AtomicSwapAddress: "0x1"},
			ToAsset:   types.Asset{Chain: "arbitrum_sepolia", AtomicSwapAddress: "0x2"},
		}

		props, err := resolveProps(&config.Config{EVMPrivateKey: testEVMKey}, registry, params)
		require.NoError(t, err)
		require.NotEmpty(t, props.EVMAddress)
		require.Empty(t, props.BtcPublicKey)
	})

	t.Run("evm address required", func(t *testing.T) {
		resetSwapFlags(t)
		params := types.SwapParams{
			FromAsset: types.Asset{Chain: "ethereum_sepolia"},
			ToAsset:   types.Asset{Chain: "arbitrum_sepolia"},
		}

		_, err := resolveProps(&config.Config{}, registry, params)
		require.Error(t, err)
	})

	t.Run("bitcoin destination defaults recipient", func(t *testing.T) {
		resetSwapFlags(t)
		wif, xonly, addr := testnetTaproot(t)
		params := types.SwapParams{
			FromAsset:      types.Asset{Chain: "ethereum_sepolia", AtomicSwapAddress: "0x1"},
			ToAsset:        types.Asset{Chain: "bitcoin_testnet", AtomicSwapAddress: "primary"},
			AdditionalData: types.AdditionalData{StrategyID: "s1", BtcAddress: addr},
		}

		props, err := resolveProps(&config.Config{EVMPrivateKey: testEVMKey, BitcoinWIF: wif}, registry, params)
		require.NoError(t, err)
		require.Equal(t, xonly, props.BtcPublicKey)
		require.Equal(t, addr, props.BtcRecipientAddress)
	})

	t.Run("bitcoin source leaves recipient empty", func(t *testing.T) {
		resetSwapFlags(t)
		_, xonly, addr := testnetTaproot(t)
		btcPublicKey = xonly
		evmAddress = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
		params := types.SwapParams{
			FromAsset:      types.Asset{Chain: "bitcoin_testnet", AtomicSwapAddress: "primary"},
			ToAsset:        types.Asset{Chain: "ethereum_sepolia", AtomicSwapAddress: "0x1"},
			AdditionalData: types.AdditionalData{StrategyID: "s1", BtcAddress: addr},
		}

		props, err := resolveProps(&config.Config{}, registry, params)
		require.NoError(t, err)
		require.Equal(t, xonly, props.BtcPublicKey)
		require.Empty(t, props.BtcRecipientAddress)
	})

	t.Run("wrong network btc address", func(t *testing.T) {
		resetSwapFlags(t)
		wif, _, addr := testnetTaproot(t)
		params := types.SwapParams{
			FromAsset:      types.Asset{Chain: "ethereum", AtomicSwapAddress: "0x1"},
			ToAsset:        types.Asset{Chain: "bitcoin", AtomicSwapAddress: "primary"},
			AdditionalData: types.AdditionalData{BtcAddress: addr},
		}

		_, err := resolveProps(&config.Config{EVMPrivateKey: testEVMKey, BitcoinWIF: wif}, registry, params)
		require.Error(t, err)
	})
}

func TestBuildPropsValidatesFirst(t *testing.T) {
	registry := chains.Default()

	t.Run("missing strategy before evm address", func(t *testing.T) {
		resetSwapFlags(t)
		params := types.SwapParams{
			FromAsset:     types.Asset{Chain: "ethereum_sepolia", AtomicSwapAddress: "0x1"},
			ToAsset:       types.Asset{Chain: "arbitrum_sepolia", AtomicSwapAddress: "0x2"},
			SendAmount:    "100",
			ReceiveAmount: "90",
		}

		_, err := buildProps(&config.Config{}, registry, params)
		require.ErrorIs(t, err, swap.ErrMissingStrategyID)
	})

	t.Run("unsupported chain before bitcoin key", func(t *testing.T) {
		resetSwapFlags(t)
		params := types.SwapParams{
			FromAsset:      types.Asset{Chain: "dogecoin", AtomicSwapAddress: "0x1"},
			ToAsset:        types.Asset{Chain: "bitcoin_testnet", AtomicSwapAddress: "primary"},
			SendAmount:     "100",
			ReceiveAmount:  "90",
			AdditionalData: types.AdditionalData{StrategyID: "s1", BtcAddress: "tb1q"},
		}

		_, err := buildProps(&config.Config{}, registry, params)
		require.ErrorIs(t, err, chains.ErrUnsupportedChain)
	})

	t.Run("valid request resolves addresses", func(t *testing.T) {
		resetSwapFlags(t)
		params := types.SwapParams{
			FromAsset:      types.Asset{Chain: "ethereum_sepolia", AtomicSwapAddress: "0x1"},
			ToAsset:        types.Asset{Chain: "arbitrum_sepolia", AtomicSwapAddress: "0x2"},
			SendAmount:     "100",
			ReceiveAmount:  "90",
			AdditionalData: types.AdditionalData{StrategyID: "s1"},
		}

		props, err := buildProps(&config.Config{EVMPrivateKey: testEVMKey}, registry, params)
		require.NoError(t, err)
		require.NotEmpty(t, props.EVMAddress)
	})
}
