package catalog

import "github.com/jorchsg/fashion-eccommerce/internal/domain"

// seedProducts returns the static catalog. Prices are in cents.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:    "1",
			Slug:  "loose-fit-hoodie-white",
			Name:  "Loose Fit Hoodie",
			Brand: "MODO ORIGINALS",
			Price: 12099,
			Images: []string{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600&q=80",
				"https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=600&q=80",
			},
			Category:    domain.CategoryMen,
			Subcategory: domain.SubcategoryHoodies,
			Description: "A relaxed, oversized hoodie crafted from premium organic cotton. Features a kangaroo pocket, ribbed cuffs, and an adjustable drawstring hood.",
			Sizes: []domain.ProductSize{
				{Label: "XS", Available: true},
				{Label: "S", Available: true},
				{Label: "M", Available: true},
				{Label: "L", Available: true},
				{Label: "XL", Available: false},
				{Label: "XXL", Available: false},
			},
			Colors: []domain.ProductColor{
				{Name: "White", Hex: "#FFFFFF", Images: []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600&q=80"}},
				{Name: "Black", Hex: "#0A0A0A", Images: []string{"https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=600&q=80"}},
			},
			Tags:        []string{"hoodie", "casual", "winter", "oversized"},
			IsFeatured:  true,
			Rating:      4.7,
			ReviewCount: 128,
			InStock:     true,
			StockCount:  42,
		},
		{
			ID:    "2",
			Slug:  "patterned-wool-scarf",
			Name:  "Patterned Wool Scarf",
			Brand: "MODO ORIGINALS",
			Price: 8802,
			Images: []string{
				"https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=600&q=80",
			},
			Category:    domain.CategoryAccessories,
			Subcategory: domain.SubcategoryScarves,
			Description: "Classic patterned wool scarf with fringed ends. Soft, warm and versatile for all winter outfits.",
			Sizes: []domain.ProductSize{
				{Label: "One Size", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "Plaid", Hex: "#8B7355", Images: []string{"https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=600&q=80"}},
			},
			Tags:        []string{"scarf", "accessories", "winter", "wool"},
			IsFeatured:  true,
			Rating:      4.5,
			ReviewCount: 87,
			InStock:     true,
			StockCount:  30,
		},
		{
			ID:            "3",
			Slug:          "infused-fit-puffer-jacket",
			Name:          "Infused Fit Puffer Jacket",
			Brand:         "MODO ORIGINALS",
			Price:         15209,
			OriginalPrice: 19999,
			Images: []string{
				"https://images.unsplash.com/photo-1547624643-3bf761b09502?w=600&q=80",
				"https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=600&q=80",
			},
			Category:    domain.CategoryMen,
			Subcategory: domain.SubcategoryJackets,
			Description: "Lightweight yet warm puffer jacket with a modern silhouette. Down-filled for exceptional warmth in cold weather.",
			Sizes: []domain.ProductSize{
				{Label: "S", Available: true},
				{Label: "M", Available: true},
				{Label: "L", Available: true},
				{Label: "XL", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "Black", Hex: "#0A0A0A", Images: []string{"https://images.unsplash.com/photo-1547624643-3bf761b09502?w=600&q=80"}},
			},
			Tags:        []string{"jacket", "puffer", "winter", "warm"},
			IsSale:      true,
			IsFeatured:  true,
			Rating:      4.8,
			ReviewCount: 214,
			InStock:     true,
			StockCount:  18,
		},
		{
			ID:    "4",
			Slug:  "rib-knit-beanie-hat",
			Name:  "Rib-Knit Beanie Hat",
			Brand: "MODO ORIGINALS",
			Price: 7509,
			Images: []string{
				"https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=600&q=80",
			},
			Category:    domain.CategoryAccessories,
			Subcategory: domain.SubcategoryHats,
			Description: "Cozy rib-knit beanie made from a soft acrylic-wool blend. Fold-over cuff for adjustable fit.",
			Sizes: []domain.ProductSize{
				{Label: "One Size", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "Cream", Hex: "#F5F0E8", Images: []string{"https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=600&q=80"}},
			},
			Tags:        []string{"hat", "beanie", "accessories", "winter"},
			IsNew:       true,
			IsFeatured:  true,
			Rating:      4.6,
			ReviewCount: 65,
			InStock:     true,
			StockCount:  55,
		},
		{
			ID:    "5",
			Slug:  "lightweight-puffer-jacket",
			Name:  "Lightweight Puffer Jacket",
			Brand: "MODO ORIGINALS",
			Price: 12999,
			Images: []string{
				"https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=600&q=80",
			},
			Category:    domain.CategoryWomen,
			Subcategory: domain.SubcategoryJackets,
			Description: "Ultra-light puffer jacket perfect for layering. Packable design for easy travel and storage.",
			Sizes: []domain.ProductSize{
				{Label: "XS", Available: true},
				{Label: "S", Available: true},
				{Label: "M", Available: false},
				{Label: "L", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "Black", Hex: "#0A0A0A", Images: []string{"https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=600&q=80"}},
			},
			Tags:        []string{"jacket", "lightweight", "packable", "winter"},
			IsNew:       true,
			IsFeatured:  true,
			Rating:      4.9,
			ReviewCount: 302,
			InStock:     true,
			StockCount:  12,
		},
		{
			ID:    "6",
			Slug:  "cotton-bucket-hat-white",
			Name:  "Cotton Bucket Hat",
			Brand: "MODO ORIGINALS",
			Price: 8802,
			Images: []string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&q=80",
			},
			Category:    domain.CategoryAccessories,
			Subcategory: domain.SubcategoryHats,
			Description: "Classic cotton bucket hat with a wide brim. Lightweight and breathable for year-round wear.",
			Sizes: []domain.ProductSize{
				{Label: "S/M", Available: true},
				{Label: "L/XL", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "White", Hex: "#FFFFFF", Images: []string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&q=80"}},
				{Name: "Pink", Hex: "#F9A8D4", Images: []string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&q=80"}},
			},
			Tags:        []string{"hat", "bucket", "accessories", "casual"},
			IsFeatured:  true,
			Rating:      4.3,
			ReviewCount: 44,
			InStock:     true,
			StockCount:  70,
		},
		{
			ID:    "7",
			Slug:  "leather-touchscreen-gloves",
			Name:  "Leather Touchscreen Gloves",
			Brand: "MODO ORIGINALS",
			Price: 7509,
			Images: []string{
				"https://images.unsplash.com/photo-1614252235316-8c857d38b5f4?w=600&q=80",
			},
			Category:    domain.CategoryAccessories,
			Subcategory: domain.SubcategoryGloves,
			Description: "Premium leather gloves with touchscreen-compatible fingertips. Cashmere lining for extra warmth.",
			Sizes: []domain.ProductSize{
				{Label: "S", Available: true},
				{Label: "M", Available: true},
				{Label: "L", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "Black", Hex: "#0A0A0A", Images: []string{"https://images.unsplash.com/photo-1614252235316-8c857d38b5f4?w=600&q=80"}},
			},
			Tags:        []string{"gloves", "leather", "accessories", "winter"},
			IsFeatured:  true,
			Rating:      4.4,
			ReviewCount: 38,
			InStock:     true,
			StockCount:  25,
		},
		{
			ID:    "8",
			Slug:  "chunky-sole-trainers-white",
			Name:  "Chunky Sole Trainers",
			Brand: "MODO ORIGINALS",
			Price: 16500,
			Images: []string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&q=80",
				"https://images.unsplash.com/photo-1539185441755-769473a23570?w=600&q=80",
			},
			Category:    domain.CategoryMen,
			Subcategory: domain.SubcategoryTrainers,
			Description: "Bold chunky sole trainers with a retro-inspired silhouette. Leather upper with rubber outsole.",
			Sizes: []domain.ProductSize{
				{Label: "40", Available: true},
				{Label: "41", Available: true},
				{Label: "42", Available: true},
				{Label: "43", Available: false},
				{Label: "44", Available: true},
				{Label: "45", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "White", Hex: "#FFFFFF", Images: []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&q=80"}},
			},
			Tags:        []string{"sneakers", "trainers", "chunky", "casual"},
			IsNew:       true,
			IsFeatured:  true,
			Rating:      4.7,
			ReviewCount: 156,
			InStock:     true,
			StockCount:  34,
		},
		{
			ID:            "9",
			Slug:          "slim-fit-denim-jeans",
			Name:          "Slim Fit Denim Jeans",
			Brand:         "MODO ORIGINALS",
			Price:         9500,
			OriginalPrice: 12500,
			Images: []string{
				"https://images.unsplash.com/photo-1542272604-787c3835535d?w=600&q=80",
			},
			Category:    domain.CategoryMen,
			Subcategory: domain.SubcategoryJeans,
			Description: "Classic slim fit jeans crafted from premium stretch denim. Five-pocket design with a modern tapered leg.",
			Sizes: []domain.ProductSize{
				{Label: "28", Available: true},
				{Label: "30", Available: true},
				{Label: "32", Available: true},
				{Label: "34", Available: false},
				{Label: "36", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "Indigo", Hex: "#3730A3", Images: []string{"https://images.unsplash.com/photo-1542272604-787c3835535d?w=600&q=80"}},
			},
			Tags:        []string{"jeans", "denim", "casual", "slim"},
			IsSale:      true,
			IsFeatured:  true,
			Rating:      4.6,
			ReviewCount: 195,
			InStock:     true,
			StockCount:  48,
		},
		{
			ID:    "10",
			Slug:  "structured-shoulder-bag",
			Name:  "Structured Shoulder Bag",
			Brand: "MODO ORIGINALS",
			Price: 18500,
			Images: []string{
				"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=600&q=80",
			},
			Category:    domain.CategoryWomen,
			Subcategory: domain.SubcategoryBags,
			Description: "Elegant structured shoulder bag in premium vegan leather. Features a zip-top closure, interior pockets, and an adjustable strap.",
			Sizes: []domain.ProductSize{
				{Label: "One Size", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "Taupe", Hex: "#A08060", Images: []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=600&q=80"}},
				{Name: "Black", Hex: "#0A0A0A", Images: []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=600&q=80"}},
			},
			Tags:        []string{"bag", "shoulder bag", "accessories", "vegan leather"},
			IsNew:       true,
			IsFeatured:  true,
			Rating:      4.8,
			ReviewCount: 92,
			InStock:     true,
			StockCount:  21,
		},
		{
			ID:    "11",
			Slug:  "oversized-graphic-tee",
			Name:  "Oversized Graphic Tee",
			Brand: "MODO ORIGINALS",
			Price: 5500,
			Images: []string{
				"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=600&q=80",
			},
			Category:    domain.CategoryMen,
			Subcategory: domain.SubcategoryShirts,
			Description: "Statement graphic tee with a boxy oversized fit. 100% organic cotton with a comfortable drop shoulder.",
			Sizes: []domain.ProductSize{
				{Label: "XS", Available: true},
				{Label: "S", Available: true},
				{Label: "M", Available: true},
				{Label: "L", Available: true},
				{Label: "XL", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "Off White", Hex: "#F5F5F0", Images: []string{"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=600&q=80"}},
				{Name: "Black", Hex: "#0A0A0A", Images: []string{"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=600&q=80"}},
			},
			Tags:        []string{"t-shirt", "graphic", "casual", "oversized"},
			IsNew:       true,
			Rating:      4.5,
			ReviewCount: 73,
			InStock:     true,
			StockCount:  85,
		},
		{
			ID:            "12",
			Slug:          "minimalist-running-sneakers",
			Name:          "Minimalist Running Sneakers",
			Brand:         "MODO ORIGINALS",
			Price:         13500,
			OriginalPrice: 16000,
			Images: []string{
				"https://images.unsplash.com/photo-1539185441755-769473a23570?w=600&q=80",
			},
			Category:    domain.CategoryWomen,
			Subcategory: domain.SubcategorySneakers,
			Description: "Lightweight running sneakers with a breathable knit upper. Cushioned midsole for all-day comfort.",
			Sizes: []domain.ProductSize{
				{Label: "36", Available: true},
				{Label: "37", Available: true},
				{Label: "38", Available: true},
				{Label: "39", Available: false},
				{Label: "40", Available: true},
				{Label: "41", Available: true},
			},
			Colors: []domain.ProductColor{
				{Name: "White/Grey", Hex: "#E5E5E5", Images: []string{"https://images.unsplash.com/photo-1539185441755-769473a23570?w=600&q=80"}},
			},
			Tags:        []string{"sneakers", "running", "sport", "minimalist"},
			IsSale:      true,
			Rating:      4.6,
			ReviewCount: 118,
			InStock:     true,
			StockCount:  29,
		},
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{
			ID:           domain.CategoryMen,
			Name:         "Men",
			Slug:         domain.CategoryMen,
			Image:        "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?w=800&q=80",
			Description:  "Explore men's clothing, footwear and accessories.",
			ProductCount: 5,
		},
		{
			ID:           domain.CategoryWomen,
			Name:         "Women",
			Slug:         domain.CategoryWomen,
			Image:        "https://images.unsplash.com/photo-1483985988355-763728e1935b?w=800&q=80",
			Description:  "Discover women's fashion, bags and more.",
			ProductCount: 3,
		},
		{
			ID:           domain.CategoryKids,
			Name:         "Kids",
			Slug:         domain.CategoryKids,
			Image:        "https://images.unsplash.com/photo-1503944583220-791c11b05b26?w=800&q=80",
			Description:  "Stylish and comfortable clothing for kids.",
			ProductCount: 0,
		},
		{
			ID:           domain.CategoryAccessories,
			Name:         "Accessories",
			Slug:         domain.CategoryAccessories,
			Image:        "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=800&q=80",
			Description:  "Complete your look with our range of accessories.",
			ProductCount: 4,
		},
		{
			ID:           domain.CategoryGifts,
			Name:         "Gifts",
			Slug:         domain.CategoryGifts,
			Image:        "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?w=800&q=80",
			Description:  "Perfect gifts for every occasion.",
			ProductCount: 0,
		},
	}
}
