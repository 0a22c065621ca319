package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTimeout = 30 * time.Second

	statusOk    = "Ok"
	statusError = "Error"
)

// response is the envelope every service endpoint answers with
type response[T any] struct {
	Status string `json:"status"`
	Result T      `json:"result"`
	Error  string `json:"error,omitempty"`
}

// HTTPError is returned when a service answers with a non-2xx status
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// APIError is returned when a service answers with an error envelope
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// callAPI sends reqBody as JSON and decodes the envelope's result. A
// json.RawMessage body is sent as is.
func callAPI[T any](
	ctx context.Context, c *http.Client, method, url string, reqBody any, headers map[string]string,
) (T, error) {
	var zero T

	var body io.Reader
	if reqBody != nil {
		raw, ok := reqBody.(json.RawMessage)
		if !ok {
			b, err := json.Marshal(reqBody)
			if err != nil {
				return zero, fmt.Errorf("marshal request: %w", err)
			}
			raw = b
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return zero, fmt.Errorf("new %s %s: %w", method, url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return zero, fmt.Errorf("read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		// Prefer the service's own error message when the body is an envelope
		var env response[json.RawMessage]
		if err := json.Unmarshal(raw, &env); err == nil && env.Error != "" {
			return zero, &APIError{Message: env.Error}
		}

		msg := strings.TrimSpace(string(raw))
		if len(msg) > 2000 {
			msg = msg[:2000] + "...(truncated)"
		}
		return zero, &HTTPError{
			Method:     method,
			URL:        url,
			StatusCode: res.StatusCode,
			Body:       msg,
		}
	}

	var env response[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		snip := strings.TrimSpace(string(raw))
		if len(snip) > 300 {
			snip = snip[:300] + "...(truncated)"
		}
		return zero, fmt.Errorf("unmarshal JSON: %w (body: %q)", err, snip)
	}

	if env.Status == statusError || env.Error != "" {
		return zero, &APIError{Message: env.Error}
	}
	if env.Status != statusOk {
		return zero, fmt.Errorf("unexpected response status %q", env.Status)
	}

	return env.Result, nil
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
