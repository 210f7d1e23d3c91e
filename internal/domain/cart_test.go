package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineItem(productID string, price int64, qty int, size, color string) CartItem {
	return CartItem{
		ID:       "line-" + productID + "-" + size + "-" + color,
		Product:  Product{ID: productID, Price: price},
		Quantity: qty,
		Size:     size,
		Color:    color,
	}
}

// ============================================================================
// Cart.Subtotal Tests
// ============================================================================

func TestSubtotal_SingleLine(t *testing.T) {
	c := &Cart{Items: []CartItem{lineItem("p1", 1999, 2, "M", "Black")}}
	assert.Equal(t, int64(3998), c.Subtotal(nil))
}

func TestSubtotal_MultipleLines(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			lineItem("p1", 1000, 2, "M", "Black"),
			lineItem("p2", 500, 3, "S", "White"),
			lineItem("p3", 2500, 1, "L", "Black"),
		},
	}
	// 2000 + 1500 + 2500 = 6000
	assert.Equal(t, int64(6000), c.Subtotal(nil))
}

func TestSubtotal_EmptyCart(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, int64(0), c.Subtotal(nil))
}

func TestSubtotal_UsesLiveCatalogPrice(t *testing.T) {
	c := &Cart{Items: []CartItem{lineItem("p1", 1000, 2, "M", "Black")}}

	// The catalog has repriced the product since it was added.
	resolver := func(productID string) (int64, bool) {
		if productID == "p1" {
			return 1500, true
		}
		return 0, false
	}
	assert.Equal(t, int64(3000), c.Subtotal(resolver))
}

func TestSubtotal_FallsBackToSnapshotWhenProductGone(t *testing.T) {
	c := &Cart{Items: []CartItem{lineItem("p1", 1000, 2, "M", "Black")}}

	resolver := func(string) (int64, bool) { return 0, false }
	assert.Equal(t, int64(2000), c.Subtotal(resolver))
}

// ============================================================================
// Shipping / Tax Tests
// ============================================================================

func TestShippingFor(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"below threshold pays flat rate", 14999, 999},
		{"exactly at threshold is free", 15000, 0},
		{"above threshold is free", 20000, 0},
		{"empty cart pays flat rate", 0, 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShippingFor(tt.subtotal))
		})
	}
}

func TestTaxFor(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"zero subtotal", 0, 0},
		{"even amount", 10000, 800},
		{"rounds half up", 12099, 968}, // 967.92 cents
		{"rounds down below half", 100, 8},
		{"small amount", 6, 0}, // 0.48 cents
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TaxFor(tt.subtotal))
		})
	}
}

// ============================================================================
// Cart.ComputeTotals Tests
// ============================================================================

func TestComputeTotals(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			lineItem("p1", 12099, 1, "M", "White"),
			lineItem("p2", 8802, 2, "One Size", "Plaid"),
		},
	}

	totals := c.ComputeTotals(nil)
	assert.Equal(t, 3, totals.TotalItems)
	assert.Equal(t, int64(29703), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Shipping) // above threshold
	assert.Equal(t, int64(2376), totals.Tax)   // 2376.24 rounds to 2376
	assert.Equal(t, int64(32079), totals.Total)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	c := &Cart{}
	totals := c.ComputeTotals(nil)

	assert.Equal(t, 0, totals.TotalItems)
	assert.Equal(t, int64(0), totals.Subtotal)
	assert.Equal(t, int64(999), totals.Shipping)
	assert.Equal(t, int64(0), totals.Tax)
	assert.Equal(t, int64(999), totals.Total)
}

func TestComputeTotals_ShippingBoundary(t *testing.T) {
	c := &Cart{Items: []CartItem{lineItem("p1", 15000, 1, "M", "Black")}}
	totals := c.ComputeTotals(nil)

	assert.Equal(t, int64(15000), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Shipping)
}

// ============================================================================
// Cart.FindItemIndex / FindLineIndex Tests
// ============================================================================

func TestFindItemIndex_MergeIdentity(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			lineItem("p1", 1000, 1, "M", "Black"),
			lineItem("p1", 1000, 1, "L", "Black"),
			lineItem("p1", 1000, 1, "M", "White"),
		},
	}

	assert.Equal(t, 0, c.FindItemIndex("p1", "M", "Black"))
	assert.Equal(t, 1, c.FindItemIndex("p1", "L", "Black"))
	assert.Equal(t, 2, c.FindItemIndex("p1", "M", "White"))
	assert.Equal(t, -1, c.FindItemIndex("p1", "XL", "Black"))
	assert.Equal(t, -1, c.FindItemIndex("p2", "M", "Black"))
}

func TestFindItemIndex_EmptyCart(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, -1, c.FindItemIndex("p1", "M", "Black"))
}

func TestFindLineIndex(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			{ID: "line-a"},
			{ID: "line-b"},
		},
	}
	assert.Equal(t, 0, c.FindLineIndex("line-a"))
	assert.Equal(t, 1, c.FindLineIndex("line-b"))
	assert.Equal(t, -1, c.FindLineIndex("line-z"))
}

// ============================================================================
// Cart.TotalItems Tests
// ============================================================================

func TestTotalItems(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			lineItem("p1", 1000, 2, "M", "Black"),
			lineItem("p2", 1000, 3, "S", "White"),
		},
	}
	assert.Equal(t, 5, c.TotalItems())
}

func TestTotalItems_EmptyCart(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, 0, c.TotalItems())
}
