package catalog

// Seed is the built-in product list served when no database is configured.
var Seed = []Product{
	{ID: "1", Name: "Wireless Headphones", Price: "$129.99", OriginalPrice: "$199.99", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500", Discount: "35% OFF", Category: "Electronics", Rating: 4.5, Reviews: 124},
	{ID: "2", Name: "Smart Watch Pro", Price: "$249.99", OriginalPrice: "$349.99", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500", Discount: "29% OFF", Category: "Electronics", Rating: 4.8, Reviews: 89},
	{ID: "3", Name: "Running Shoes", Price: "$89.99", OriginalPrice: "$129.99", Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500", Discount: "31% OFF", Category: "Sports", Rating: 4.6, Reviews: 156},
	{ID: "4", Name: "Laptop Backpack", Price: "$49.99", OriginalPrice: "$79.99", Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500", Discount: "38% OFF", Category: "Fashion", Rating: 4.4, Reviews: 203},
	{ID: "5", Name: "Bluetooth Speaker", Price: "$79.99", OriginalPrice: "$119.99", Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500", Discount: "33% OFF", Category: "Electronics", Rating: 4.7, Reviews: 98},
	{ID: "6", Name: "Designer Sunglasses", Price: "$159.99", OriginalPrice: "$229.99", Discount: "30% OFF", Category: "Fashion", Rating: 4.5, Reviews: 167},
	{ID: "7", Name: "Yoga Mat Premium", Price: "$39.99", OriginalPrice: "$59.99", Discount: "33% OFF", Category: "Sports", Rating: 4.6, Reviews: 134},
	{ID: "8", Name: "Coffee Maker", Price: "$89.99", OriginalPrice: "$129.99", Discount: "31% OFF", Category: "Home & Garden", Rating: 4.8, Reviews: 245},
	{ID: "9", Name: "Smartphone Case", Price: "$24.99", OriginalPrice: "$39.99", Discount: "38% OFF", Category: "Electronics", Rating: 4.3, Reviews: 189},
	{ID: "10", Name: "Leather Wallet", Price: "$59.99", OriginalPrice: "$89.99", Discount: "33% OFF", Category: "Fashion", Rating: 4.7, Reviews: 112},
	{ID: "11", Name: "Fitness Tracker", Price: "$99.99", OriginalPrice: "$149.99", Discount: "33% OFF", Category: "Sports", Rating: 4.6, Reviews: 178},
	{ID: "12", Name: "Plant Stand Set", Price: "$69.99", OriginalPrice: "$99.99", Discount: "30% OFF", Category: "Home & Garden", Rating: 4.5, Reviews: 91},
}
