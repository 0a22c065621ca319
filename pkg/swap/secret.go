package swap

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const secretMessagePrefix = "htlc-swap:"

// GenerateSecret derives the swap secret from the digest key and nonce. The
// same key and nonce always produce the same secret, so a lost secret can be
// recovered from the order's nonce.
func GenerateSecret(key Signer, nonce string) (secret, secretHash []byte, err error) {
	digest := sha256.Sum256([]byte(secretMessagePrefix + nonce))

	sig, err := key.SignMessage([]byte(hex.EncodeToString(digest[:])))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSecretDerivation, err)
	}
	if len(sig) == 0 {
		return nil, nil, fmt.Errorf("%w: empty signature", ErrSecretDerivation)
	}

	s := sha256.Sum256(sig)
	h := sha256.Sum256(s[:])
	return s[:], h[:], nil
}
