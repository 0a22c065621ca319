package swap

import "errors"

var (
	ErrMissingStrategyID         = errors.New("strategy id is required")
	ErrIdenticalAssets           = errors.New("source and destination assets cannot be the same")
	ErrNetworkMismatch           = errors.New("both assets must be on mainnet or both on testnet")
	ErrInvalidAmount             = errors.New("amount must be a positive integer")
	ErrSendNotGreaterThanReceive = errors.New("send amount must be greater than or equal to receive amount")
	ErrMissingBtcAddress         = errors.New("btc address is required for swaps with a bitcoin leg")
	ErrSecretDerivation          = errors.New("failed to derive secret")
)
