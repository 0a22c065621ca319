// Package digestkey holds the long-lived secp256k1 key that swap secrets are
// derived from. Signatures are deterministic (RFC 6979), so the same message
// always yields the same signature and therefore the same secret.
package digestkey

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Key is a digest key
type Key struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// FromHex parses a hex-encoded private key, with or without 0x prefix
func FromHex(keyHex string) (*Key, error) {
	pk, err := ethcrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(keyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("digestkey: invalid private key: %w", err)
	}
	return newKey(pk), nil
}

// Generate creates a new random digest key
func Generate() (*Key, error) {
	pk, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("digestkey: generating key: %w", err)
	}
	return newKey(pk), nil
}

func newKey(pk *ecdsa.PrivateKey) *Key {
	return &Key{
		privateKey: pk,
		address:    ethcrypto.PubkeyToAddress(pk.PublicKey),
	}
}

// Hex returns the private key hex-encoded without prefix
func (k *Key) Hex() string {
	return hex.EncodeToString(ethcrypto.FromECDSA(k.privateKey))
}

// Address returns the EVM address of the key, used to identify the user
func (k *Key) Address() common.Address {
	return k.address
}

// SignMessage signs msg as an EIP-191 personal message and returns the
// 65-byte r || s || v signature.
func (k *Key) SignMessage(msg []byte) ([]byte, error) {
	sig, err := ethcrypto.Sign(accounts.TextHash(msg), k.privateKey)
	if err != nil {
		return nil, fmt.Errorf("digestkey: signing: %w", err)
	}

	// go-ethereum returns v in {0,1}; personal_sign expects {27,28}.
	if sig[64] < 27 {
		sig[64] += 27
	}
	return sig, nil
}
