// Package swap initiates HTLC swaps: it validates the request, derives the
// swap secret, gets an attested quote and submits the order.
package swap

import (
	"context"
	"encoding/hex"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"htlc-swap/pkg/types"
)

// ChainInfo answers static chain metadata lookups
type ChainInfo interface {
	Canonical(chain string) string
	IsBitcoin(chain string) bool
	IsMainnet(chain string) (bool, error)
	TimeLock(chain string) (uint64, error)
}

// Signer signs messages with the user's digest key
type Signer interface {
	SignMessage(msg []byte) ([]byte, error)
}

// QuoteProvider obtains a solver-attested quote for an order request
type QuoteProvider interface {
	GetAttestedQuote(ctx context.Context, req types.OrderRequest) (types.AttestedQuote, error)
}

// Orderbook accepts attested quotes and returns the created order id
type Orderbook interface {
	CreateOrder(ctx context.Context, quote types.AttestedQuote, authToken string) (string, error)
}

// Authenticator supplies the token the orderbook authenticates orders with
type Authenticator interface {
	AuthToken(ctx context.Context) (string, error)
}

// Stage names a step of Swap, used in logs
type Stage string

const (
	StageValidating      Stage = "validating"
	StageDerivingSecret  Stage = "deriving_secret"
	StageAwaitingQuote   Stage = "awaiting_quote"
	StageSubmittingOrder Stage = "submitting_order"
	StageDone            Stage = "done"
)

// PreparedOrder is everything derived locally before any network call
type PreparedOrder struct {
	Request    types.OrderRequest
	Secret     []byte
	SecretHash []byte
	Nonce      string
}

// Swapper runs the swap initiation handshake. It keeps no per-swap state, so
// concurrent calls to Swap are independent.
type Swapper struct {
	chains    ChainInfo
	key       Signer
	quotes    QuoteProvider
	orderbook Orderbook
	auth      Authenticator
	nonce     func() string
}

// NewSwapper creates a swapper using wall-clock milliseconds as nonces
func NewSwapper(
	chains ChainInfo, key Signer, quotes QuoteProvider, orderbook Orderbook, auth Authenticator,
) *Swapper {
	return &Swapper{
		chains:    chains,
		key:       key,
		quotes:    quotes,
		orderbook: orderbook,
		auth:      auth,
		nonce:     TimestampNonce,
	}
}

// SetNonceSource replaces the nonce generator. Callers issuing several swaps
// within the same millisecond with one digest key must provide one that
// never repeats.
func (s *Swapper) SetNonceSource(fn func() string) {
	if fn != nil {
		s.nonce = fn
	}
}

// TimestampNonce returns the current unix time in milliseconds
func TimestampNonce() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Prepare validates props, derives a fresh secret and builds the order
// request without contacting any service.
func (s *Swapper) Prepare(props types.SwapProps) (*PreparedOrder, error) {
	logger := log.WithFields(log.Fields{
		"source_chain":      props.FromAsset.Chain,
		"destination_chain": props.ToAsset.Chain,
		"strategy_id":       props.AdditionalData.StrategyID,
	})

	logger.WithField("stage", StageValidating).Debug("validating swap request")
	if err := ValidateProps(props, s.chains); err != nil {
		return nil, err
	}

	timelock, err := s.chains.TimeLock(props.FromAsset.Chain)
	if err != nil {
		return nil, err
	}

	nonce := s.nonce()
	logger.WithFields(log.Fields{"stage": StageDerivingSecret, "nonce": nonce}).Debug("deriving secret")
	secret, secretHash, err := GenerateSecret(s.key, nonce)
	if err != nil {
		return nil, err
	}

	return &PreparedOrder{
		Request:    BuildOrderRequest(props, s.chains, hex.EncodeToString(secretHash), nonce, timelock),
		Secret:     secret,
		SecretHash: secretHash,
		Nonce:      nonce,
	}, nil
}

// Swap initiates a swap and returns the order id together with the secret.
// Errors from the quote service and orderbook are returned unchanged; a failed
// swap was not initiated and may be retried, which derives a new secret.
func (s *Swapper) Swap(ctx context.Context, props types.SwapProps) (*types.SwapResult, error) {
	prepared, err := s.Prepare(props)
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, prepared)
}

// Submit runs the network half of Swap for an order built by Prepare
func (s *Swapper) Submit(ctx context.Context, prepared *PreparedOrder) (*types.SwapResult, error) {
	logger := log.WithFields(log.Fields{
		"source_chain":      prepared.Request.SourceChain,
		"destination_chain": prepared.Request.DestinationChain,
		"nonce":             prepared.Nonce,
	})

	logger.WithField("stage", StageAwaitingQuote).Debug("requesting attested quote")
	quote, err := s.quotes.GetAttestedQuote(ctx, prepared.Request)
	if err != nil {
		logger.WithError(err).Warn("failed to get attested quote")
		return nil, err
	}

	logger.WithField("stage", StageSubmittingOrder).Debug("submitting order")
	token, err := s.auth.AuthToken(ctx)
	if err != nil {
		logger.WithError(err).Warn("failed to authenticate")
		return nil, err
	}

	orderID, err := s.orderbook.CreateOrder(ctx, quote, token)
	if err != nil {
		logger.WithError(err).Warn("failed to create order")
		return nil, err
	}

	logger.WithFields(log.Fields{"stage": StageDone, "order_id": orderID}).Info("order created")

	return &types.SwapResult{
		OrderID:    orderID,
		Secret:     hex.EncodeToString(prepared.Secret),
		SecretHash: hex.EncodeToString(prepared.SecretHash),
		Nonce:      prepared.Nonce,
	}, nil
}
