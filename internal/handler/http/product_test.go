package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorchsg/fashion-eccommerce/internal/domain"
	"github.com/jorchsg/fashion-eccommerce/pkg/pagination"
)

func TestListProducts_Defaults(t *testing.T) {
	router := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var result pagination.Result[domain.Product]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 12, result.PerPage)
	assert.False(t, result.HasMore)
}

func TestListProducts_CategoryAndPriceFilter(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=men&min_price=10000&max_price=16000", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result pagination.Result[domain.Product]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	for _, p := range result.Data {
		assert.Equal(t, "men", p.Category)
		assert.GreaterOrEqual(t, p.Price, int64(10000))
		assert.LessOrEqual(t, p.Price, int64(16000))
	}
}

func TestListProducts_SortPriceAsc(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?sort=price-asc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result pagination.Result[domain.Product]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	require.NotEmpty(t, result.Data)
	for i := 1; i < len(result.Data); i++ {
		assert.LessOrEqual(t, result.Data[i-1].Price, result.Data[i].Price)
	}
}

func TestListProducts_InvalidMinPrice(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?min_price=cheap", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "min_price")
}

func TestGetProductBySlug(t *testing.T) {
	router := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/loose-fit-hoodie-white", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			domain.Product
			PriceLabel      string `json:"price_label"`
			DiscountPercent int    `json:"discount_percent"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Loose Fit Hoodie", resp.Data.Name)
	assert.Equal(t, int64(12099), resp.Data.Price)
	assert.Equal(t, "$120.99", resp.Data.PriceLabel)
	assert.Zero(t, resp.Data.DiscountPercent)
}

func TestGetProductBySlug_SaleBadge(t *testing.T) {
	router := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/infused-fit-puffer-jacket", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			domain.Product
			PriceLabel      string `json:"price_label"`
			DiscountPercent int    `json:"discount_percent"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "$152.09", resp.Data.PriceLabel)
	// 19999 down to 15209 is a 24% discount, rounded.
	assert.Equal(t, 24, resp.Data.DiscountPercent)
}

func TestGetProductBySlug_NotFound(t *testing.T) {
	router := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/no-such-product", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestProductSections(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		path  string
		check func(t *testing.T, products []domain.Product)
	}{
		{
			path: "/api/v1/products/featured",
			check: func(t *testing.T, products []domain.Product) {
				for _, p := range products {
					assert.True(t, p.IsFeatured)
				}
			},
		},
		{
			path: "/api/v1/products/new-arrivals",
			check: func(t *testing.T, products []domain.Product) {
				for _, p := range products {
					assert.True(t, p.IsNew)
				}
			},
		},
		{
			path: "/api/v1/products/sale",
			check: func(t *testing.T, products []domain.Product) {
				for _, p := range products {
					assert.True(t, p.IsSale)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Data []domain.Product `json:"data"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.NotEmpty(t, resp.Data)
			tt.check(t, resp.Data)
		})
	}
}

func TestListCategories(t *testing.T) {
	router := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []domain.Category `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 5)
}
