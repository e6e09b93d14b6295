package domain

import "time"

// DeliveryAddress is collected during checkout and handed between
// stages by value. It is not persisted beyond the current order flow.
type DeliveryAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
	Notes  string `json:"notes,omitempty"`
}

// OrderDraftItem is the cart line snapshot carried inside an OrderDraft.
type OrderDraftItem struct {
	ProductID int64   `json:"id"`
	Quantity  int     `json:"qty"`
	UnitPrice float64 `json:"price"`
}

// OrderDraft is the transient checkout payload consumed exactly once
// by order placement.
type OrderDraft struct {
	Items      []OrderDraftItem `json:"items"`
	Delivery   DeliveryAddress  `json:"delivery"`
	GrandTotal float64          `json:"total"`
	CreatedAt  time.Time        `json:"timestamp"`
}

// PlacedOrder is returned by order placement and never mutated afterwards.
type PlacedOrder struct {
	OrderID    string  `json:"order_id"`
	GrandTotal float64 `json:"grand_total"`
}
