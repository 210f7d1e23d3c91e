package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testCBConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      50 * time.Millisecond,
		FailureRatio: 0.5,
		MinRequests:  2,
	}
}

func TestCircuitBreaker_PassesThroughSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cb := NewCircuitBreakerClient(New(fastConfig()), testCBConfig("cb-pass"), testLogger())
	resp, err := cb.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := fastConfig()
	cfg.MaxRetries = 0
	cb := NewCircuitBreakerClient(New(cfg), testCBConfig("cb-open"), testLogger())

	for i := 0; i < 3; i++ {
		_, _ = cb.Get(context.Background(), srv.URL)
	}

	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Get(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	failing := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := fastConfig()
	cfg.MaxRetries = 0
	cb := NewCircuitBreakerClient(New(cfg), testCBConfig("cb-recover"), testLogger())

	for i := 0; i < 3; i++ {
		_, _ = cb.Get(context.Background(), srv.URL)
	}
	require.Equal(t, gobreaker.StateOpen, cb.State())

	// Wait out the open interval, then succeed through the half-open probe.
	failing = false
	time.Sleep(60 * time.Millisecond)

	resp, err := cb.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}
