package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"htlc-swap/pkg/types"
)

// QuoteClient talks to the quote service, which has a solver attest to an
// order request within a validity deadline.
type QuoteClient struct {
	baseURL string
	client  *http.Client
}

// NewQuoteClient creates a quote client for the service at baseURL
func NewQuoteClient(baseURL string, timeout time.Duration) *QuoteClient {
	return &QuoteClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// GetAttestedQuote asks a solver to attest the order request
func (c *QuoteClient) GetAttestedQuote(ctx context.Context, req types.OrderRequest) (types.AttestedQuote, error) {
	result, err := callAPI[json.RawMessage](ctx, c.client, http.MethodPost, joinURL(c.baseURL, "/quote/attested"), req, nil)
	if err != nil {
		return types.AttestedQuote{}, fmt.Errorf("failed to get attested quote: %w", err)
	}
	if len(result) == 0 || string(result) == "null" {
		return types.AttestedQuote{}, fmt.Errorf("empty attested quote")
	}

	return types.AttestedQuote{Payload: result}, nil
}
