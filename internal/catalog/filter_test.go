package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

// fixtureStore builds a catalog of n uniform products for pagination tests.
func fixtureStore(n int) *Store {
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, domain.Product{
			ID:       fmt.Sprintf("p%d", i+1),
			Slug:     fmt.Sprintf("fixture-product-%d", i+1),
			Name:     fmt.Sprintf("Fixture Product %d", i+1),
			Category: domain.CategoryMen,
			Price:    1000,
		})
	}
	return NewWithProducts(products, nil)
}

func TestApply_NoFilters_DefaultPage(t *testing.T) {
	s := New()

	res, err := s.Apply(context.Background(), Filter{})
	require.NoError(t, err)

	assert.Equal(t, 12, res.Total)
	assert.Len(t, res.Data, 12)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 12, res.PerPage)
	assert.Equal(t, 1, res.TotalPages)
	assert.False(t, res.HasMore)
}

func TestApply_CategoryFilter(t *testing.T) {
	s := New()

	res, err := s.Apply(context.Background(), Filter{Category: domain.CategoryWomen})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	for _, p := range res.Data {
		assert.Equal(t, domain.CategoryWomen, p.Category)
	}
}

func TestApply_SubcategoryFilter(t *testing.T) {
	s := New()

	res, err := s.Apply(context.Background(), Filter{
		Category:    domain.CategoryMen,
		Subcategory: domain.SubcategoryJackets,
	})
	require.NoError(t, err)

	require.Equal(t, 1, res.Total)
	assert.Equal(t, "infused-fit-puffer-jacket", res.Data[0].Slug)
}

func TestApply_SearchReplacesCategoryFilters(t *testing.T) {
	// A search term takes precedence: the category filter is skipped while a
	// search is active, so results may come from any category.
	s := New()

	res, err := s.Apply(context.Background(), Filter{
		Search:   "hoodie",
		Category: domain.CategoryWomen,
	})
	require.NoError(t, err)

	require.Equal(t, 1, res.Total)
	assert.Equal(t, domain.CategoryMen, res.Data[0].Category)
	assert.Equal(t, "loose-fit-hoodie-white", res.Data[0].Slug)
}

func TestApply_SearchStillHonorsPriceBounds(t *testing.T) {
	s := New()

	res, err := s.Apply(context.Background(), Filter{
		Search:   "winter",
		MinPrice: int64Ptr(10000),
	})
	require.NoError(t, err)

	for _, p := range res.Data {
		assert.GreaterOrEqual(t, p.Price, int64(10000))
	}
	assert.Equal(t, 3, res.Total) // hoodie 12099, puffer 15209, women's puffer 12999
}

func TestApply_PriceBoundsInclusive(t *testing.T) {
	s := New()

	res, err := s.Apply(context.Background(), Filter{
		MinPrice: int64Ptr(12099),
		MaxPrice: int64Ptr(12099),
	})
	require.NoError(t, err)

	require.Equal(t, 1, res.Total)
	assert.Equal(t, int64(12099), res.Data[0].Price)
}

func TestApply_SizeFilterRequiresAvailability(t *testing.T) {
	s := New()

	// Size M exists on the women's puffer jacket but is marked unavailable
	// there, so only products where M is actually available match.
	res, err := s.Apply(context.Background(), Filter{
		Category: domain.CategoryWomen,
		Sizes:    []string{"M"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)

	res, err = s.Apply(context.Background(), Filter{
		Category: domain.CategoryMen,
		Sizes:    []string{"M"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total) // hoodie, puffer jacket, graphic tee
}

func TestApply_Sorting(t *testing.T) {
	s := New()

	t.Run("price ascending", func(t *testing.T) {
		res, err := s.Apply(context.Background(), Filter{SortBy: SortPriceAsc})
		require.NoError(t, err)
		for i := 1; i < len(res.Data); i++ {
			assert.LessOrEqual(t, res.Data[i-1].Price, res.Data[i].Price)
		}
	})

	t.Run("price descending", func(t *testing.T) {
		res, err := s.Apply(context.Background(), Filter{SortBy: SortPriceDesc})
		require.NoError(t, err)
		for i := 1; i < len(res.Data); i++ {
			assert.GreaterOrEqual(t, res.Data[i-1].Price, res.Data[i].Price)
		}
	})

	t.Run("newest puts new products first, stable otherwise", func(t *testing.T) {
		res, err := s.Apply(context.Background(), Filter{SortBy: SortNewest})
		require.NoError(t, err)

		sawOld := false
		for _, p := range res.Data {
			if !p.IsNew {
				sawOld = true
			} else {
				assert.False(t, sawOld, "new product after an old one")
			}
		}
		// Stability: new products keep their catalog order.
		assert.Equal(t, "4", res.Data[0].ID)
		assert.Equal(t, "5", res.Data[1].ID)
	})

	t.Run("rating descending", func(t *testing.T) {
		res, err := s.Apply(context.Background(), Filter{SortBy: SortRating})
		require.NoError(t, err)
		for i := 1; i < len(res.Data); i++ {
			assert.GreaterOrEqual(t, res.Data[i-1].Rating, res.Data[i].Rating)
		}
	})

	t.Run("popular is the default", func(t *testing.T) {
		res, err := s.Apply(context.Background(), Filter{})
		require.NoError(t, err)
		for i := 1; i < len(res.Data); i++ {
			assert.GreaterOrEqual(t, res.Data[i-1].ReviewCount, res.Data[i].ReviewCount)
		}
	})
}

func TestApply_Pagination(t *testing.T) {
	s := fixtureStore(25)

	t.Run("total pages is ceiling", func(t *testing.T) {
		res, err := s.Apply(context.Background(), Filter{Page: 1, Limit: 12})
		require.NoError(t, err)

		assert.Equal(t, 25, res.Total)
		assert.Equal(t, 3, res.TotalPages)
		assert.Len(t, res.Data, 12)
		assert.True(t, res.HasMore)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		res, err := s.Apply(context.Background(), Filter{Page: 3, Limit: 12})
		require.NoError(t, err)

		assert.Len(t, res.Data, 1)
		assert.False(t, res.HasMore)
	})

	t.Run("page past the end is empty with correct metadata", func(t *testing.T) {
		res, err := s.Apply(context.Background(), Filter{Page: 4, Limit: 12})
		require.NoError(t, err)

		assert.Empty(t, res.Data)
		assert.Equal(t, 25, res.Total)
		assert.Equal(t, 3, res.TotalPages)
		assert.Equal(t, 4, res.Page)
		assert.False(t, res.HasMore)
	})
}

func TestApply_EmptyResultIsNotAnError(t *testing.T) {
	s := New()

	res, err := s.Apply(context.Background(), Filter{Category: domain.CategoryGifts})
	require.NoError(t, err)

	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0, res.TotalPages)
	assert.False(t, res.HasMore)
}

func TestApply_CanceledContext(t *testing.T) {
	s := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Apply(ctx, Filter{})
	assert.ErrorIs(t, err, context.Canceled)
}
