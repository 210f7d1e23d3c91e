package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	"github.com/jorchsg/fashion-eccommerce/pkg/pagination"
)

// Sort keys accepted by the filter layer.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
	SortRating    = "rating"
	SortPopular   = "popular"
)

// Filter describes a catalog query. Zero values mean "not filtered".
type Filter struct {
	Category    string
	Subcategory string
	MinPrice    *int64
	MaxPrice    *int64
	Sizes       []string
	SortBy      string
	Search      string
	Page        int
	Limit       int
}

// Apply runs the filter pipeline over the catalog and returns one page of
// results. A search term takes precedence over the category and subcategory
// filters, which are skipped entirely while a search is active; price and
// size filters still apply. An empty result set is valid output, and pages
// past the end return an empty slice with correct metadata.
func (s *Store) Apply(ctx context.Context, f Filter) (pagination.Result[domain.Product], error) {
	if err := ctx.Err(); err != nil {
		return pagination.Result[domain.Product]{}, err
	}

	products := s.All()
	matched := make([]domain.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(f.Search))
	for i := range products {
		p := &products[i]

		if search != "" {
			if !matchesQuery(p, search) {
				continue
			}
		} else {
			if f.Category != "" && p.Category != f.Category {
				continue
			}
			if f.Subcategory != "" && p.Subcategory != f.Subcategory {
				continue
			}
		}

		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}

		if len(f.Sizes) > 0 && !p.HasAvailableSize(f.Sizes) {
			continue
		}

		matched = append(matched, *p)
	}

	sortProducts(matched, f.SortBy)

	if err := ctx.Err(); err != nil {
		return pagination.Result[domain.Product]{}, err
	}

	params := pagination.Params{Page: f.Page, PerPage: f.Limit}.Normalize()

	total := len(matched)
	offset := params.Offset
	if offset > total {
		offset = total
	}
	end := offset + params.PerPage
	if end > total {
		end = total
	}

	return pagination.NewResult(matched[offset:end], total, params), nil
}

// sortProducts orders the matched set in place. All comparisons use stable
// sorting so that catalog order breaks ties.
func sortProducts(products []domain.Product, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// SortPopular and unknown keys sort by review count.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	}
}
