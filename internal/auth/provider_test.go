package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
	"github.com/jorchsg/fashion-eccommerce/pkg/httpclient"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *ProviderClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.DefaultConfig()),
		httpclient.DefaultCircuitBreakerConfig("auth-test-"+t.Name()),
		logger,
	)
	return NewProviderClient(srv.URL, client, logger)
}

func TestProviderClient_SignUp_Success(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/signup", r.URL.Path)

		var input SignUpInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "ada@example.com", input.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Session{
			UserID:              "user-1",
			Email:               input.Email,
			ConfirmationPending: true,
		})
	})

	session, err := provider.SignUp(context.Background(), SignUpInput{
		Email:     "ada@example.com",
		Password:  "Abcdefgh1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.True(t, session.ConfirmationPending)
	assert.Empty(t, session.Token)
}

func TestProviderClient_SignIn_Success(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/token", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Session{
			UserID:    "user-1",
			Email:     "ada@example.com",
			Token:     "session-token",
			ExpiresIn: 3600,
		})
	})

	session, err := provider.SignIn(context.Background(), SignInInput{
		Email:    "ada@example.com",
		Password: "Abcdefgh1",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-token", session.Token)
}

func TestProviderClient_SignIn_InvalidCredentials(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"invalid login credentials"}}`))
	})

	_, err := provider.SignIn(context.Background(), SignInInput{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid login credentials")
}

func TestProviderClient_SignUp_EmailTaken(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"CONFLICT","message":"email already registered"}}`))
	})

	_, err := provider.SignUp(context.Background(), SignUpInput{Email: "taken@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestProviderClient_Unreachable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := httpclient.DefaultConfig()
	cfg.MaxRetries = 0
	client := httpclient.NewCircuitBreakerClient(
		httpclient.New(cfg),
		httpclient.DefaultCircuitBreakerConfig("auth-test-unreachable"),
		logger,
	)
	provider := NewProviderClient("http://127.0.0.1:1", client, logger)

	_, err := provider.SignIn(context.Background(), SignInInput{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavail)
}
