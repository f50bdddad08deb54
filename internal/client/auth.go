package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wms-client/internal/http"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// AuthClient implements wms.AuthClient.
type AuthClient struct {
	httpClient *http.Client
	session    wms.SessionStore
}

// NewAuthClient creates a new auth client bound to session.
func NewAuthClient(httpClient *http.Client, session wms.SessionStore) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
		session:    session,
	}
}

// Register implements wms.AuthClient.Register.
func (c *AuthClient) Register(ctx context.Context, payload wms.Payload) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpRegister, body: payload})
	if err != nil {
		return env, fmt.Errorf("registering account: %w", err)
	}

	return env, nil
}

// Login implements wms.AuthClient.Login.
func (c *AuthClient) Login(ctx context.Context, credentials *wms.Credentials) (*wms.LoginResult, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpLogin, body: credentials})
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	result, err := wms.DecodeData[wms.LoginResult](env)
	if err != nil {
		return nil, fmt.Errorf("parsing login result: %w", err)
	}

	if result.Token != "" {
		c.session.SetToken(result.Token)
	}

	return result, nil
}

// Logout implements wms.AuthClient.Logout.
func (c *AuthClient) Logout(ctx context.Context) (*wms.Envelope, error) {
	env, err := envelope(ctx, c.httpClient, call{op: wms.OpLogout})
	if err != nil {
		return env, fmt.Errorf("logging out: %w", err)
	}

	c.session.Destroy()

	return env, nil
}
