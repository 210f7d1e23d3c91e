package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jorchsg/fashion-eccommerce/internal/auth"
	"github.com/jorchsg/fashion-eccommerce/internal/forms"
	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
	"github.com/jorchsg/fashion-eccommerce/pkg/httputil"
)

// AuthHandler proxies registration and login to the external auth provider
// after validating the submitted forms locally.
type AuthHandler struct {
	provider *auth.ProviderClient
	logger   *slog.Logger
}

// NewAuthHandler creates a new auth HTTP handler.
func NewAuthHandler(provider *auth.ProviderClient, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		logger:   logger,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form forms.Registration
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	if fields := forms.Validate(form); len(fields) > 0 {
		writeFormErrors(w, fields)
		return
	}

	session, err := h.provider.SignUp(r.Context(), auth.SignUpInput{
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: session})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form forms.Login
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	if fields := forms.Validate(form); len(fields) > 0 {
		writeFormErrors(w, fields)
		return
	}

	session, err := h.provider.SignIn(r.Context(), auth.SignInInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// writeFormErrors writes a 400 with the field-keyed validation messages a
// storefront client renders next to the inputs.
func writeFormErrors(w http.ResponseWriter, fields map[string]string) {
	httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
		Error: &httputil.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "form validation failed",
			Fields:  fields,
		},
	})
}
