package domain

import "time"

// Monetary constants, in cents. Subtotals at or above the free-shipping
// threshold ship for free; everything below pays the flat rate.
const (
	FreeShippingThreshold int64 = 15000
	ShippingCost          int64 = 999

	// Tax rate of 8%, expressed in basis points.
	TaxRateBasisPoints int64 = 800
)

// Cart represents a user's shopping cart.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a single cart line. The same product added with a different
// size or color produces a separate line; the triple (product ID, size,
// color) identifies a line for merging.
type CartItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
}

// Totals holds the derived monetary summary of a cart, in cents.
type Totals struct {
	TotalItems int   `json:"total_items"`
	Subtotal   int64 `json:"subtotal"`
	Shipping   int64 `json:"shipping"`
	Tax        int64 `json:"tax"`
	Total      int64 `json:"total"`
}

// PriceResolver returns the current price of a product and whether the
// product is still known. Lines whose product has left the catalog fall back
// to the price snapshot stored on the line.
type PriceResolver func(productID string) (int64, bool)

// FindItemIndex returns the index of the line matching the given merge
// identity, or -1 when no line matches.
func (c *Cart) FindItemIndex(productID, size, color string) int {
	for i := range c.Items {
		item := &c.Items[i]
		if item.Product.ID == productID && item.Size == size && item.Color == color {
			return i
		}
	}
	return -1
}

// FindLineIndex returns the index of the line with the given line ID, or -1.
func (c *Cart) FindLineIndex(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// TotalItems returns the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal computes the cart subtotal using current catalog prices. A nil
// resolver prices every line from its stored snapshot.
func (c *Cart) Subtotal(price PriceResolver) int64 {
	var subtotal int64
	for _, item := range c.Items {
		unit := item.Product.Price
		if price != nil {
			if current, ok := price(item.Product.ID); ok {
				unit = current
			}
		}
		subtotal += unit * int64(item.Quantity)
	}
	return subtotal
}

// ShippingFor returns the shipping cost for a given subtotal.
func ShippingFor(subtotal int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return ShippingCost
}

// TaxFor returns the tax on a given subtotal, rounded to the nearest cent.
func TaxFor(subtotal int64) int64 {
	return (subtotal*TaxRateBasisPoints + 5000) / 10000
}

// ComputeTotals derives the full monetary summary from the current lines.
// Totals are never cached; callers get a fresh computation on every call.
func (c *Cart) ComputeTotals(price PriceResolver) Totals {
	subtotal := c.Subtotal(price)
	shipping := ShippingFor(subtotal)
	tax := TaxFor(subtotal)
	return Totals{
		TotalItems: c.TotalItems(),
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		Total:      subtotal + shipping + tax,
	}
}
