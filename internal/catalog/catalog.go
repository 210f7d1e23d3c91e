package catalog

import (
	"strings"
	"sync"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	apperrors "github.com/jorchsg/fashion-eccommerce/pkg/errors"
	"github.com/jorchsg/fashion-eccommerce/pkg/slug"
)

// Store is an immutable in-memory catalog. Products are held in seed order,
// which is the stable baseline for sorting and pagination. Thread-safe via
// sync.RWMutex, although nothing mutates the catalog after construction.
type Store struct {
	mu         sync.RWMutex
	products   []domain.Product
	bySlug     map[string]int
	byID       map[string]int
	categories []domain.Category
}

// New creates a catalog populated with the default seed data.
func New() *Store {
	return NewWithProducts(seedProducts(), seedCategories())
}

// NewWithProducts creates a catalog from an explicit product collection.
// Products without a slug get one derived from their name.
func NewWithProducts(products []domain.Product, categories []domain.Category) *Store {
	s := &Store{
		products:   products,
		bySlug:     make(map[string]int, len(products)),
		byID:       make(map[string]int, len(products)),
		categories: categories,
	}
	for i := range products {
		if products[i].Slug == "" {
			products[i].Slug = slug.Make(products[i].Name)
		}
		s.bySlug[products[i].Slug] = i
		s.byID[products[i].ID] = i
	}
	return s
}

// All returns the full product collection in catalog order.
func (s *Store) All() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetBySlug looks up a single product by its slug.
func (s *Store) GetBySlug(slug string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.bySlug[slug]
	if !ok {
		return nil, apperrors.NotFound("product", slug)
	}
	p := s.products[i]
	return &p, nil
}

// PriceByID returns the current price of a product and whether the product
// exists. Satisfies domain.PriceResolver.
func (s *Store) PriceByID(productID string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[productID]
	if !ok {
		return 0, false
	}
	return s.products[i].Price, true
}

// GetByID looks up a single product by its ID.
func (s *Store) GetByID(productID string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[productID]
	if !ok {
		return nil, apperrors.NotFound("product", productID)
	}
	p := s.products[i]
	return &p, nil
}

// ByCategory returns products in the given category, up to limit.
// A limit of 0 means no limit.
func (s *Store) ByCategory(category string, limit int) []domain.Product {
	return s.collect(limit, func(p *domain.Product) bool {
		return p.Category == category
	})
}

// Featured returns promotionally placed products, up to limit.
func (s *Store) Featured(limit int) []domain.Product {
	return s.collect(limit, func(p *domain.Product) bool { return p.IsFeatured })
}

// NewArrivals returns products flagged as new, up to limit.
func (s *Store) NewArrivals(limit int) []domain.Product {
	return s.collect(limit, func(p *domain.Product) bool { return p.IsNew })
}

// OnSale returns discounted products, up to limit.
func (s *Store) OnSale(limit int) []domain.Product {
	return s.collect(limit, func(p *domain.Product) bool { return p.IsSale })
}

// Search returns products whose name, brand, tags, category, or subcategory
// contain the query as a case-insensitive substring.
func (s *Store) Search(query string) []domain.Product {
	q := strings.ToLower(query)
	return s.collect(0, func(p *domain.Product) bool {
		return matchesQuery(p, q)
	})
}

// Categories returns the browsing categories.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) collect(limit int, keep func(*domain.Product) bool) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0)
	for i := range s.products {
		if !keep(&s.products[i]) {
			continue
		}
		out = append(out, s.products[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func matchesQuery(p *domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Subcategory), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
