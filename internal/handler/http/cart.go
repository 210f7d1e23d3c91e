package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jorchsg/fashion-eccommerce/internal/service"
	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
	"github.com/jorchsg/fashion-eccommerce/pkg/httputil"
	"github.com/jorchsg/fashion-eccommerce/pkg/validator"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// AddItemRequest is the JSON request body for adding an item to the cart.
// Quantity defaults to 1 when omitted.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,lte=100"`
}

// UpdateQuantityRequest is the JSON request body for overwriting a line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"lte=100"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	cart, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), userID, service.AddItemInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// UpdateQuantity handles PUT /api/v1/cart/items/{itemId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	itemID := chi.URLParam(r, "itemId")

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), userID, itemID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// RemoveItem handles DELETE /api/v1/cart/items/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), userID, chi.URLParam(r, "itemId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	if err := h.service.ClearCart(r.Context(), userID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "cleared"}})
}

// Totals handles GET /api/v1/cart/totals
func (h *CartHandler) Totals(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	totals, err := h.service.Totals(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: totals})
}

// OpenDrawer handles POST /api/v1/cart/drawer/open
func (h *CartHandler) OpenDrawer(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	h.service.OpenCart(userID)
	h.writeDrawerState(w, true)
}

// CloseDrawer handles POST /api/v1/cart/drawer/close
func (h *CartHandler) CloseDrawer(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	h.service.CloseCart(userID)
	h.writeDrawerState(w, false)
}

// ToggleDrawer handles POST /api/v1/cart/drawer/toggle
func (h *CartHandler) ToggleDrawer(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	h.writeDrawerState(w, h.service.ToggleCart(userID))
}

func (h *CartHandler) writeDrawerState(w http.ResponseWriter, open bool) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]bool{"is_open": open}})
}
