package catalog

// Default returns the built-in FreshMart sample catalog: twelve grocery
// products and the five bestseller IDs shown on the homepage grid.
func Default() *Catalog {
	products := []Product{
		{ID: "prod001", Name: "Apples", Category: "fruits", Price: 300, Unit: "/ kg", Description: "Crisp and sweet organic Fuji apples.", ImageSrc: "https://images.pexels.com/photos/209339/pexels-photo-209339.jpeg"},
		{ID: "prod002", Name: "Bananas", Category: "fruits", Price: 120, Unit: "/ kg", Description: "Naturally ripened fresh bananas.", ImageSrc: "https://images.pexels.com/photos/2875814/pexels-photo-2875814.jpeg"},
		{ID: "prod003", Name: "Spinach", Category: "vegetables", Price: 150, Unit: "/ kg", Description: "Fresh organic baby spinach leaves.", ImageSrc: "https://images.pexels.com/photos/1751149/pexels-photo-1751149.jpeg"},
		{ID: "prod004", Name: "Milk", Category: "dairy", Price: 220, Unit: "/ kg", Description: "Fresh whole milk, grade A pasteurized.", ImageSrc: "https://images.pexels.com/photos/2198626/pexels-photo-2198626.jpeg"},
		{ID: "prod005", Name: "Potato Chips", Category: "snacks", Price: 20, Unit: "", Description: "Classic salted potato chips, crispy.", ImageSrc: "https://images.pexels.com/photos/479628/pexels-photo-479628.jpeg"},
		{ID: "prod006", Name: "Carrots", Category: "vegetables", Price: 150, Unit: "/ kg", Description: "Sweet and crunchy organic carrots.", ImageSrc: "https://images.pexels.com/photos/6631952/pexels-photo-6631952.jpeg"},
		{ID: "prod007", Name: "Cheddar Cheese", Category: "dairy", Price: 520, Unit: "/ block", Description: "Sharp cheddar cheese block, 8oz.", ImageSrc: "https://images.pexels.com/photos/139746/pexels-photo-139746.jpeg"},
		{ID: "prod008", Name: "Bread", Category: "bakery", Price: 100, Unit: "/ loaf", Description: "Sliced whole wheat sandwich bread.", ImageSrc: "https://images.pexels.com/photos/1209029/pexels-photo-1209029.jpeg"},
		{ID: "prod009", Name: "Strawberries", Category: "fruits", Price: 600, Unit: "/ pint", Description: "Fresh, juicy local strawberries.", ImageSrc: "https://images.pexels.com/photos/2820144/pexels-photo-2820144.jpeg"},
		{ID: "prod010", Name: "Greek Yogurt", Category: "dairy", Price: 200, Unit: "/ kg", Description: "Plain Greek yogurt, high protein.", ImageSrc: "https://images.pexels.com/photos/414262/pexels-photo-414262.jpeg"},
		{ID: "prod011", Name: "Broccoli", Category: "vegetables", Price: 220, Unit: "/ kg", Description: "Fresh cut broccoli florets.", ImageSrc: "https://media.istockphoto.com/id/1301178557/photo/raw-broccoli-in-hand.jpg"},
		{ID: "prod012", Name: "Chocolate Chip Cookies", Category: "bakery", Price: 50, Unit: "/ dozen", Description: "Classic bakery-style chocolate chip cookies.", ImageSrc: "https://images.pexels.com/photos/3250406/pexels-photo-3250406.jpeg"},
	}
	bestsellers := []string{"prod001", "prod004", "prod008", "prod011", "prod005"}
	return New(products, bestsellers)
}
