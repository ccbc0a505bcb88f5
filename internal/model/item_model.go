package model

// InternetItem is a catalog entry, independent of any user's cart.
// ItemQuantity is the display descriptor ("500g", "1 dozen"), not a count.
type InternetItem struct {
	ID           int64  `json:"id"`
	ItemName     string `json:"stringResourceId"`
	ItemCategory string `json:"itemCategoryId"`
	ItemQuantity string `json:"itemQuantity"`
	ItemPrice    int    `json:"item_price"`
	ImageURL     string `json:"imageResourceId"`
}
