package client

import (
	"context"
	"fmt"
)

// StaticAuth authenticates with a pre-issued bearer token
type StaticAuth struct {
	token string
}

// NewStaticAuth creates an authenticator that always returns token
func NewStaticAuth(token string) *StaticAuth {
	return &StaticAuth{token: token}
}

// AuthToken returns the configured token
func (a *StaticAuth) AuthToken(context.Context) (string, error) {
	if a.token == "" {
		return "", fmt.Errorf("auth token not configured")
	}
	return a.token, nil
}
