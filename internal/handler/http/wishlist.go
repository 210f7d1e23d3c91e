package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	"github.com/jorchsg/fashion-eccommerce/internal/service"
	"github.com/jorchsg/fashion-eccommerce/pkg/httputil"
)

// WishlistHandler handles HTTP requests for wishlist and UI overlay endpoints.
type WishlistHandler struct {
	service *service.WishlistService
	logger  *slog.Logger
}

// NewWishlistHandler creates a new wishlist HTTP handler.
func NewWishlistHandler(svc *service.WishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: svc,
		logger:  logger,
	}
}

// Get handles GET /api/v1/wishlist
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	wishlist, err := h.service.Wishlist(userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlist})
}

// Add handles PUT /api/v1/wishlist/{productId}
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.service.AddToWishlist)
}

// Remove handles DELETE /api/v1/wishlist/{productId}
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.service.RemoveFromWishlist)
}

// Toggle handles POST /api/v1/wishlist/{productId}/toggle
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.service.ToggleWishlist)
}

// GetUI handles GET /api/v1/ui
func (h *WishlistHandler) GetUI(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.UIState(userID)})
}

// UpdateUI returns a handler for POST /api/v1/ui/{overlay}/{action} routes.
// Each route binds one mutation of the per-user overlay state.
func (h *WishlistHandler) UpdateUI(apply func(*domain.UIState)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromContext(r.Context())
		if !ok {
			writeUnauthorized(w, "authentication required")
			return
		}

		state := h.service.UpdateUI(userID, apply)
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: state})
	}
}

func (h *WishlistHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, userID, productID string) (*domain.Wishlist, error),
) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	wishlist, err := op(r.Context(), userID, chi.URLParam(r, "productId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlist})
}
