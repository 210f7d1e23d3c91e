package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/jorchsg/fashion-eccommerce/internal/auth"
	"github.com/jorchsg/fashion-eccommerce/pkg/httputil"
	"github.com/jorchsg/fashion-eccommerce/pkg/middleware"
)

// ResolveUser is middleware that determines who owns the cart, wishlist, and
// UI state of the request. A valid Bearer token wins; without one, the
// X-User-ID header identifies a guest session (the storefront client mints a
// stable guest ID per browser). Requests carrying neither are rejected.
func ResolveUser(tokens *auth.TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authHeader := r.Header.Get("Authorization"); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
					writeUnauthorized(w, "invalid authorization header format")
					return
				}
				claims, err := tokens.Validate(parts[1])
				if err != nil {
					writeUnauthorized(w, "invalid or expired token")
					return
				}
				ctx := middleware.WithUserID(r.Context(), claims.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if uid := r.Header.Get("X-User-ID"); uid != "" {
				ctx := middleware.WithUserID(r.Context(), uid)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			writeUnauthorized(w, "authentication or a guest session is required")
		})
	}
}

// userIDFromContext extracts the resolved user ID from the request context.
func userIDFromContext(ctx context.Context) (string, bool) {
	uid := middleware.UserIDFromContext(ctx)
	return uid, uid != ""
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.Response{
					Error: &httputil.ErrorResponse{Code: "UNSUPPORTED_MEDIA_TYPE", Message: "Content-Type must be application/json"},
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	httputil.WriteJSON(w, http.StatusUnauthorized, httputil.Response{
		Error: &httputil.ErrorResponse{Code: "UNAUTHORIZED", Message: message},
	})
}
