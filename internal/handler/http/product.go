package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jorchsg/fashion-eccommerce/internal/catalog"
	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	"github.com/jorchsg/fashion-eccommerce/internal/service"
	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
	"github.com/jorchsg/fashion-eccommerce/pkg/httputil"
	"github.com/jorchsg/fashion-eccommerce/pkg/money"
	"github.com/jorchsg/fashion-eccommerce/pkg/pagination"
)

// ProductHandler handles HTTP requests for catalog endpoints.
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new catalog HTTP handler.
func NewProductHandler(svc *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/products. Filters, sort, and pagination come from
// the query string; see filterFromQuery for the accepted parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	result, err := h.service.List(r.Context(), f)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// productDetail decorates a product with the display strings the product
// page renders: a formatted price and the sale badge percentage.
type productDetail struct {
	domain.Product
	PriceLabel      string `json:"price_label"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
}

// GetBySlug handles GET /api/v1/products/{slug}
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: productDetail{
		Product:         *product,
		PriceLabel:      money.Format(product.Price),
		DiscountPercent: money.DiscountPercent(product.OriginalPrice, product.Price),
	}})
}

// Featured handles GET /api/v1/products/featured
func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products := h.service.Featured(r.Context(), sectionLimitFromQuery(r))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// NewArrivals handles GET /api/v1/products/new-arrivals
func (h *ProductHandler) NewArrivals(w http.ResponseWriter, r *http.Request) {
	products := h.service.NewArrivals(r.Context(), sectionLimitFromQuery(r))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// OnSale handles GET /api/v1/products/sale
func (h *ProductHandler) OnSale(w http.ResponseWriter, r *http.Request) {
	products := h.service.OnSale(r.Context(), sectionLimitFromQuery(r))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// Categories handles GET /api/v1/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.service.Categories(r.Context())
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: categories})
}

// filterFromQuery builds a catalog filter from the request query string.
// Prices are in cents. Sizes is a comma-separated list of size labels.
func filterFromQuery(r *http.Request) (catalog.Filter, error) {
	q := r.URL.Query()
	params := pagination.FromRequest(r)

	f := catalog.Filter{
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		SortBy:      q.Get("sort"),
		Search:      q.Get("search"),
		Page:        params.Page,
		Limit:       params.PerPage,
	}

	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return catalog.Filter{}, apperrors.InvalidInput(fmt.Sprintf("min_price must be an integer amount in cents, got %q", raw))
		}
		f.MinPrice = &v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return catalog.Filter{}, apperrors.InvalidInput(fmt.Sprintf("max_price must be an integer amount in cents, got %q", raw))
		}
		f.MaxPrice = &v
	}
	if raw := q.Get("sizes"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Sizes = append(f.Sizes, s)
			}
		}
	}

	return f, nil
}

func sectionLimitFromQuery(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return 0
}
