package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jorchsg/fashion-eccommerce/internal/event"
	"github.com/jorchsg/fashion-eccommerce/internal/forms"
	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
	"github.com/jorchsg/fashion-eccommerce/pkg/httputil"
)

// CheckoutHandler validates checkout forms and accepts newsletter sign-ups.
type CheckoutHandler struct {
	producer *event.Producer
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(producer *event.Producer, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		producer: producer,
		logger:   logger,
	}
}

// ValidateCheckout handles POST /api/v1/checkout/validate. It runs the full
// shipping and payment validation without placing an order, so the client can
// surface field errors before the final step.
func (h *CheckoutHandler) ValidateCheckout(w http.ResponseWriter, r *http.Request) {
	var form forms.Checkout
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	if fields := forms.Validate(form); len(fields) > 0 {
		writeFormErrors(w, fields)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]bool{"valid": true}})
}

// SubscribeNewsletter handles POST /api/v1/newsletter/subscribe
func (h *CheckoutHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var form forms.Newsletter
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	if fields := forms.Validate(form); len(fields) > 0 {
		writeFormErrors(w, fields)
		return
	}

	// The subscription itself is owned by a downstream consumer; publishing
	// the event is the whole of this endpoint's job.
	if err := h.producer.PublishNewsletterSubscribed(r.Context(), form.Email); err != nil {
		h.logger.WarnContext(r.Context(), "newsletter event publish failed",
			slog.String("error", err.Error()),
		)
	}

	httputil.WriteJSON(w, http.StatusAccepted, httputil.Response{Data: map[string]string{"status": "subscribed"}})
}
