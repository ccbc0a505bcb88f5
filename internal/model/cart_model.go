package model

// CartItem is one cart line, at most one per (user, item name).
// JSON names mirror the Android client's SerialName mapping and must not change.
type CartItem struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	ItemName  string `json:"stringResourceId"`
	ItemPrice int    `json:"item_price"`
	ImageURL  string `json:"imageResourceId"`
	Quantity  int    `json:"quantity"`
}
