package config_test

import (
	"testing"
	"time"

	"htlc-swap/config"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)
		require.NotEmpty(t, cfg.QuoteURL)
		require.NotEmpty(t, cfg.OrderbookURL)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("HTLC_SWAP_QUOTE_URL", "http://quote.internal:6969")
		t.Setenv("HTLC_SWAP_AUTH_TOKEN", "jwt")
		t.Setenv("HTLC_SWAP_DIGEST_KEY", "abcd")
		t.Setenv("HTLC_SWAP_HTTP_TIMEOUT", "5s")

		cfg, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, "http://quote.internal:6969", cfg.QuoteURL)
		require.Equal(t, "jwt", cfg.AuthToken)
		require.Equal(t, "abcd", cfg.DigestKey)
		require.Equal(t, 5*time.Second, cfg.HTTPTimeout)
		require.NoError(t, cfg.RequireSwapCredentials())
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("HTLC_SWAP_HTTP_TIMEOUT", "-1s")

		_, err := config.Load()
		require.Error(t, err)
	})
}

func TestRequireSwapCredentials(t *testing.T) {
	cfg := &config.Config{QuoteURL: "q", OrderbookURL: "o", AuthToken: "jwt"}
	err := cfg.RequireSwapCredentials()
	require.Error(t, err)
	require.Contains(t, err.Error(), "digest key")

	cfg.DigestKey = "abcd"
	cfg.AuthToken = ""
	err = cfg.RequireSwapCredentials()
	require.Error(t, err)
	require.Contains(t, err.Error(), "auth token")

	cfg.AuthToken = "jwt"
	require.NoError(t, cfg.RequireSwapCredentials())
}
