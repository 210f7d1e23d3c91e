// Package auth talks to the external authentication provider. The provider
// owns credentials, sessions, and email confirmation; this service only
// proxies sign-up and sign-in and validates the session tokens the provider
// issues.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
	"github.com/jorchsg/fashion-eccommerce/pkg/httpclient"
)

// SignUpInput is the payload forwarded to the provider on registration.
type SignUpInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SignInInput is the payload forwarded to the provider on login.
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the provider's session response. When the provider requires
// email confirmation first, Token is empty and ConfirmationPending is true.
type Session struct {
	UserID              string `json:"user_id"`
	Email               string `json:"email"`
	Token               string `json:"token"`
	ExpiresIn           int64  `json:"expires_in"`
	ConfirmationPending bool   `json:"confirmation_pending"`
}

// ProviderClient calls the external auth provider over HTTP, behind a
// retrying client and a circuit breaker.
type ProviderClient struct {
	baseURL string
	client  *httpclient.CircuitBreakerClient
	logger  *slog.Logger
}

// NewProviderClient creates a client for the auth provider at baseURL.
func NewProviderClient(baseURL string, client *httpclient.CircuitBreakerClient, logger *slog.Logger) *ProviderClient {
	return &ProviderClient{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

// SignUp registers a new account. A provider rejection comes back as a
// single user-visible error and no state changes on this side.
func (c *ProviderClient) SignUp(ctx context.Context, input SignUpInput) (*Session, error) {
	return c.post(ctx, "/v1/signup", input)
}

// SignIn exchanges credentials for a session.
func (c *ProviderClient) SignIn(ctx context.Context, input SignInInput) (*Session, error) {
	return c.post(ctx, "/v1/token", input)
}

func (c *ProviderClient) post(ctx context.Context, path string, payload any) (*Session, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal auth request: %w", err)
	}

	resp, err := c.client.Post(ctx, c.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		c.logger.ErrorContext(ctx, "auth provider unreachable",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.Unavailable("authentication service is unavailable, please try again")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, httpclient.ParseResponseError(resp, "auth provider")
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}

	return &session, nil
}
