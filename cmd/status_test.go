package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"htlc-swap/pkg/client"
)

func TestStopWatching(t *testing.T) {
	t.Run("unknown order stops at once", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := client.NewOrderbookClient(srv.URL, time.Second).GetOrder(context.Background(), "missing")
		require.Error(t, err)
		require.True(t, stopWatching(err, 1))
	})

	t.Run("error envelope stops at once", func(t *testing.T) {
		err := fmt.Errorf("failed to get order x: %w", &client.APIError{Message: "order not found"})
		require.True(t, stopWatching(err, 1))
	})

	t.Run("server errors retried", func(t *testing.T) {
		err := fmt.Errorf("failed to get order x: %w", &client.HTTPError{StatusCode: http.StatusBadGateway})
		require.False(t, stopWatching(err, 1))
		require.False(t, stopWatching(err, maxWatchFailures-1))
		require.True(t, stopWatching(err, maxWatchFailures))
	})

	t.Run("transport errors retried until limit", func(t *testing.T) {
		err := errors.New("connection refused")
		require.False(t, stopWatching(err, 2))
		require.True(t, stopWatching(err, maxWatchFailures))
	})
}
