package model

import "time"

// OrderEntity is the snapshot written when a cart is turned into an order.
// UserID is stored as a raw value with no relational reference, and
// ItemDetails is denormalized text ("Milk x2, Bread x1"), never joined back
// to cart rows.
type OrderEntity struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	TotalAmount int       `json:"totalAmount"`
	ItemDetails string    `json:"itemDetails"`
	OrderDate   time.Time `json:"orderDate"`
}
