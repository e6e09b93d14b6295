package domain

// CartItem is one product line in the cart with its quantity.
// The json tags define the persisted snapshot layout, so they must
// stay stable across releases.
type CartItem struct {
	ProductID int64   `json:"id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image"`
}

// Subtotal returns the price contribution of this line.
func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
