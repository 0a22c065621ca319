// Package wallet resolves and checks the addressing material a swap needs:
// the initiator's EVM address, its Bitcoin x-only public key and Bitcoin
// refund/recipient addresses.
package wallet

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"htlc-swap/pkg/chains"
)

var bitcoinParams = map[string]*chaincfg.Params{
	"bitcoin":         &chaincfg.MainNetParams,
	"bitcoin_testnet": &chaincfg.TestNet3Params,
	"bitcoin_regtest": &chaincfg.RegressionNetParams,
}

// EVMAddress returns the checksummed address of a hex-encoded private key
func EVMAddress(privateKeyHex string) (string, error) {
	pk, err := ethcrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid EVM private key: %w", err)
	}
	return ethcrypto.PubkeyToAddress(pk.PublicKey).Hex(), nil
}

// ValidateEVMAddress checks that addr is a 20-byte hex address
func ValidateEVMAddress(addr string) error {
	if !common.IsHexAddress(addr) {
		return fmt.Errorf("invalid EVM address: %s", addr)
	}
	return nil
}

// BitcoinPublicKey returns the hex x-only (BIP-340) public key of a WIF key
func BitcoinPublicKey(wif string) (string, error) {
	decoded, err := btcutil.DecodeWIF(strings.TrimSpace(wif))
	if err != nil {
		return "", fmt.Errorf("invalid bitcoin WIF: %w", err)
	}
	return hex.EncodeToString(schnorr.SerializePubKey(decoded.PrivKey.PubKey())), nil
}

// ValidateBitcoinPublicKey accepts x-only (32 byte) and compressed (33 byte)
// hex public keys.
func ValidateBitcoinPublicKey(pubKeyHex string) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(pubKeyHex, "0x"))
	if err != nil {
		return fmt.Errorf("invalid bitcoin public key: %w", err)
	}

	switch len(raw) {
	case schnorr.PubKeyBytesLen:
		_, err = schnorr.ParsePubKey(raw)
	case btcec.PubKeyBytesLenCompressed:
		_, err = btcec.ParsePubKey(raw)
	default:
		return fmt.Errorf("invalid bitcoin public key: unexpected length %d", len(raw))
	}
	if err != nil {
		return fmt.Errorf("invalid bitcoin public key: %w", err)
	}
	return nil
}

// BitcoinParams returns the network parameters of a Bitcoin-family chain
func BitcoinParams(chain string) (*chaincfg.Params, error) {
	params, ok := bitcoinParams[chains.Normalize(chain)]
	if !ok {
		return nil, fmt.Errorf("no bitcoin network params for chain %s", chain)
	}
	return params, nil
}

// ValidateBitcoinAddress checks that addr decodes and belongs to the chain's network
func ValidateBitcoinAddress(addr, chain string) error {
	params, err := BitcoinParams(chain)
	if err != nil {
		return err
	}

	decoded, err := btcutil.DecodeAddress(addr, params)
	if err != nil {
		return fmt.Errorf("invalid bitcoin address %s: %w", addr, err)
	}
	if !decoded.IsForNet(params) {
		return fmt.Errorf("bitcoin address %s is not valid on %s", addr, chain)
	}
	return nil
}
