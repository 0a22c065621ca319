package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"htlc-swap/pkg/types"
)

// OrderbookClient talks to the orderbook that turns attested quotes into orders
type OrderbookClient struct {
	baseURL string
	client  *http.Client
}

// NewOrderbookClient creates an orderbook client for the service at baseURL
func NewOrderbookClient(baseURL string, timeout time.Duration) *OrderbookClient {
	return &OrderbookClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// CreateOrder submits an attested quote and returns the new order id
func (c *OrderbookClient) CreateOrder(ctx context.Context, quote types.AttestedQuote, authToken string) (string, error) {
	if len(quote.Payload) == 0 {
		return "", fmt.Errorf("attested quote is empty")
	}

	headers := map[string]string{}
	if authToken != "" {
		headers["Authorization"] = "Bearer " + authToken
	}

	orderID, err := callAPI[string](ctx, c.client, http.MethodPost, joinURL(c.baseURL, "/relayer/create-order"), quote.Payload, headers)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	if orderID == "" {
		return "", fmt.Errorf("orderbook returned an empty order id")
	}

	return orderID, nil
}

// GetOrder fetches a matched order by id
func (c *OrderbookClient) GetOrder(ctx context.Context, orderID string) (*types.MatchedOrder, error) {
	endpoint := joinURL(c.baseURL, "/orders/id/"+url.PathEscape(orderID)+"/matched")

	order, err := callAPI[types.MatchedOrder](ctx, c.client, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}

	return &order, nil
}
