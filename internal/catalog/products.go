package catalog

// products is the built-in storefront catalog.
var products = []Product{
	{
		ID:          "p1",
		Name:        "Classic Oxford Shirt",
		Description: "Crisp cotton oxford shirt with a button-down collar.",
		Price:       49.99,
		Category:    "Shirts",
		ImageURL:    "https://cdn.stylevault.dev/products/oxford-shirt.jpg",
		Rating:      4.6,
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"White", "Blue"},
	},
	{
		ID:          "p2",
		Name:        "Linen Summer Shirt",
		Description: "Breathable linen shirt for warm days.",
		Price:       39.99,
		Category:    "Shirts",
		ImageURL:    "https://cdn.stylevault.dev/products/linen-shirt.jpg",
		Rating:      4.2,
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"Sand", "Olive"},
	},
	{
		ID:          "p3",
		Name:        "Slim Fit Chinos",
		Description: "Stretch-cotton chinos with a tapered leg.",
		Price:       59.99,
		Category:    "Trousers",
		ImageURL:    "https://cdn.stylevault.dev/products/slim-chinos.jpg",
		Rating:      4.4,
		Sizes:       []string{"30", "32", "34", "36"},
		Colors:      []string{"Khaki", "Navy"},
	},
	{
		ID:          "p4",
		Name:        "Relaxed Denim Jeans",
		Description: "Mid-wash denim with a relaxed, straight cut.",
		Price:       69.99,
		Category:    "Trousers",
		ImageURL:    "https://cdn.stylevault.dev/products/denim-jeans.jpg",
		Rating:      4.1,
		Sizes:       []string{"30", "32", "34"},
		Colors:      []string{"Blue", "Black"},
	},
	{
		ID:          "p5",
		Name:        "Merino Crewneck Sweater",
		Description: "Fine-gauge merino wool crewneck.",
		Price:       89.99,
		Category:    "Knitwear",
		ImageURL:    "https://cdn.stylevault.dev/products/merino-crewneck.jpg",
		Rating:      4.8,
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Charcoal", "Burgundy"},
	},
	{
		ID:          "p6",
		Name:        "Chunky Cable Cardigan",
		Description: "Heavyweight cable-knit cardigan with horn buttons.",
		Price:       99.99,
		Category:    "Knitwear",
		ImageURL:    "https://cdn.stylevault.dev/products/cable-cardigan.jpg",
		Rating:      4.3,
		Sizes:       []string{"M", "L", "XL"},
		Colors:      []string{"Cream"},
	},
	{
		ID:          "p7",
		Name:        "Water-Resistant Field Jacket",
		Description: "Four-pocket field jacket with a waxed finish.",
		Price:       129.99,
		Category:    "Outerwear",
		ImageURL:    "https://cdn.stylevault.dev/products/field-jacket.jpg",
		Rating:      4.7,
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Olive", "Tan"},
	},
	{
		ID:          "p8",
		Name:        "Packable Down Vest",
		Description: "Lightweight down vest that packs into its own pocket.",
		Price:       79.99,
		Category:    "Outerwear",
		ImageURL:    "https://cdn.stylevault.dev/products/down-vest.jpg",
		Rating:      3.9,
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"Black", "Navy"},
	},
	{
		ID:          "p9",
		Name:        "Leather Belt",
		Description: "Full-grain leather belt with a brushed buckle.",
		Price:       34.99,
		Category:    "Accessories",
		ImageURL:    "https://cdn.stylevault.dev/products/leather-belt.jpg",
		Rating:      4.5,
		Sizes:       []string{"32", "34", "36"},
		Colors:      []string{"Brown", "Black"},
	},
	{
		ID:          "p10",
		Name:        "Wool Beanie",
		Description: "Ribbed lambswool beanie.",
		Price:       24.99,
		Category:    "Accessories",
		ImageURL:    "https://cdn.stylevault.dev/products/wool-beanie.jpg",
		Rating:      4.0,
		Sizes:       []string{"One Size"},
		Colors:      []string{"Grey", "Rust", "Navy"},
	},
}
