package domain

// Product categories.
const (
	CategoryMen         = "men"
	CategoryWomen       = "women"
	CategoryKids        = "kids"
	CategoryAccessories = "accessories"
	CategoryGifts       = "gifts"
)

// Product subcategories.
const (
	SubcategoryHoodies  = "hoodies"
	SubcategoryJackets  = "jackets"
	SubcategoryJeans    = "jeans"
	SubcategoryShirts   = "shirts"
	SubcategorySneakers = "sneakers"
	SubcategoryBags     = "bags"
	SubcategoryHats     = "hats"
	SubcategoryScarves  = "scarves"
	SubcategoryGloves   = "gloves"
	SubcategoryDresses  = "dresses"
	SubcategorySuits    = "suits"
	SubcategoryTrainers = "trainers"
)

// Product represents a catalog item. Prices are in cents.
type Product struct {
	ID            string         `json:"id"`
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	Brand         string         `json:"brand"`
	Price         int64          `json:"price"`
	OriginalPrice int64          `json:"original_price,omitempty"`
	Images        []string       `json:"images"`
	Category      string         `json:"category"`
	Subcategory   string         `json:"subcategory"`
	Description   string         `json:"description"`
	Sizes         []ProductSize  `json:"sizes"`
	Colors        []ProductColor `json:"colors"`
	Tags          []string       `json:"tags"`
	IsNew         bool           `json:"is_new"`
	IsSale        bool           `json:"is_sale"`
	IsFeatured    bool           `json:"is_featured"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"review_count"`
	InStock       bool           `json:"in_stock"`
	StockCount    int            `json:"stock_count"`
}

// ProductSize is a size option with its availability.
type ProductSize struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// ProductColor is a color variant with its own image set.
type ProductColor struct {
	Name   string   `json:"name"`
	Hex    string   `json:"hex"`
	Images []string `json:"images"`
}

// Category represents a top-level browsing category.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	ProductCount int    `json:"product_count"`
}

// ValidCategories returns the set of valid category slugs.
func ValidCategories() []string {
	return []string{CategoryMen, CategoryWomen, CategoryKids, CategoryAccessories, CategoryGifts}
}

// IsValidCategory checks whether the given slug is a known category.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// HasAvailableSize reports whether any of the requested size labels is
// present on the product and marked available.
func (p *Product) HasAvailableSize(labels []string) bool {
	for _, s := range p.Sizes {
		if !s.Available {
			continue
		}
		for _, l := range labels {
			if s.Label == l {
				return true
			}
		}
	}
	return false
}
