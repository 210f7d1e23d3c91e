package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jorchsg/fashion-eccommerce/internal/catalog"
	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
	"github.com/jorchsg/fashion-eccommerce/pkg/pagination"
)

// DefaultSectionLimit caps the featured/new/sale storefront sections.
const DefaultSectionLimit = 8

// CatalogService exposes read operations over the static catalog.
type CatalogService struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store *catalog.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// List runs a filtered, sorted, paginated catalog query. A canceled context
// aborts the query so a navigated-away request does not produce a result.
func (s *CatalogService) List(ctx context.Context, f catalog.Filter) (pagination.Result[domain.Product], error) {
	res, err := s.store.Apply(ctx, f)
	if err != nil {
		return pagination.Result[domain.Product]{}, fmt.Errorf("filter catalog: %w", err)
	}

	s.logger.DebugContext(ctx, "catalog query",
		slog.String("category", f.Category),
		slog.String("search", f.Search),
		slog.Int("total", res.Total),
	)

	return res, nil
}

// GetBySlug looks up a single product.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if slug == "" {
		return nil, apperrors.InvalidInput("slug is required")
	}
	return s.store.GetBySlug(slug)
}

// Featured returns the promotional section, up to limit (default applied
// when limit is 0).
func (s *CatalogService) Featured(ctx context.Context, limit int) []domain.Product {
	return s.store.Featured(sectionLimit(limit))
}

// NewArrivals returns the new-in section.
func (s *CatalogService) NewArrivals(ctx context.Context, limit int) []domain.Product {
	return s.store.NewArrivals(sectionLimit(limit))
}

// OnSale returns the sale section.
func (s *CatalogService) OnSale(ctx context.Context, limit int) []domain.Product {
	return s.store.OnSale(sectionLimit(limit))
}

// Categories returns the browsing categories.
func (s *CatalogService) Categories(ctx context.Context) []domain.Category {
	return s.store.Categories()
}

func sectionLimit(limit int) int {
	if limit <= 0 {
		return DefaultSectionLimit
	}
	if limit > pagination.MaxPerPage {
		return pagination.MaxPerPage
	}
	return limit
}
