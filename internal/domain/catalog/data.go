// internal/domain/catalog/data.go
package catalog

// DefaultProducts is the static seed catalog for the demo storefront.
// Edit or extend this slice to add more products; images live in the
// frontend's assets/images directory.
var DefaultProducts = []Product{
	{
		ID:          "p1",
		Name:        "Linen Classic Shirt",
		Price:       29.99,
		SalePrice:   salePrice(24.99),
		Category:    "Clothing",
		Color:       "Beige",
		Size:        "M",
		Image:       "assets/images/product-1.svg",
		Description: "Lightweight linen shirt, breathable and perfect for warm days.",
		Rating:      4.5,
		ReviewCount: 128,
		Badge:       "20% OFF",
	},
	{
		ID:          "p2",
		Name:        "Everyday Sneakers",
		Price:       64.99,
		Category:    "Shoes",
		Color:       "White",
		Size:        "42",
		Image:       "assets/images/product-2.svg",
		Description: "Comfortable sneakers with a minimalist design.",
		Rating:      4.2,
		ReviewCount: 89,
		Badge:       "BESTSELLER",
	},
	{
		ID:          "p3",
		Name:        "Minimalist Watch",
		Price:       89.00,
		Category:    "Accessories",
		Color:       "Black",
		Size:        "One Size",
		Image:       "assets/images/product-3.svg",
		Description: "Slim profile watch with leather strap.",
		Rating:      4.8,
		ReviewCount: 256,
		Badge:       "NEW",
	},
	{
		ID:          "p4",
		Name:        "Cozy Knit Sweater",
		Price:       49.50,
		SalePrice:   salePrice(39.99),
		Category:    "Clothing",
		Color:       "Olive",
		Size:        "L",
		Image:       "assets/images/product-4.svg",
		Description: "Warm knit sweater with soft fibers and relaxed fit.",
		Rating:      4.3,
		ReviewCount: 67,
		Badge:       "20% OFF",
	},
	{
		ID:          "p5",
		Name:        "Classic Denim",
		Price:       54.00,
		Category:    "Clothing",
		Color:       "Blue",
		Size:        "32",
		Image:       "assets/images/product-5.svg",
		Description: "Durable denim jeans with modern cut.",
		Rating:      4.1,
		ReviewCount: 145,
	},
	{
		ID:          "p6",
		Name:        "Canvas Tote Bag",
		Price:       19.99,
		Category:    "Accessories",
		Color:       "Natural",
		Size:        "One Size",
		Image:       "assets/images/product-6.svg",
		Description: "Spacious tote for daily errands and light travel.",
		Rating:      4.0,
		ReviewCount: 52,
	},
	{
		ID:          "p7",
		Name:        "Leather Belt",
		Price:       34.50,
		Category:    "Accessories",
		Color:       "Brown",
		Size:        "95",
		Image:       "assets/images/product-7.svg",
		Description: "Full-grain leather belt with brushed buckle.",
		Rating:      4.6,
		ReviewCount: 73,
		Badge:       "NEW",
	},
	{
		ID:          "p8",
		Name:        "Wool Scarf",
		Price:       27.00,
		SalePrice:   salePrice(21.60),
		Category:    "Accessories",
		Color:       "Grey",
		Size:        "One Size",
		Image:       "assets/images/product-8.svg",
		Description: "Soft merino scarf for cold mornings.",
		Rating:      4.4,
		ReviewCount: 38,
		Badge:       "20% OFF",
	},
}

func salePrice(v float64) *float64 {
	return &v
}
