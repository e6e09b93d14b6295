package checkout

import "github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"

// The checkout flow hands state between sequential stages as explicit,
// serializable messages instead of a shared mutable session: each stage's
// output is the next stage's sole input.

// AddressConfirmed is produced by the delivery-address stage after validation.
type AddressConfirmed struct {
	Address domain.DeliveryAddress `json:"address"`
}

// SummaryReady carries the priced order review shown before confirmation.
type SummaryReady struct {
	Address     domain.DeliveryAddress `json:"address"`
	Items       []domain.CartItem      `json:"items"`
	Subtotal    float64                `json:"subtotal"`
	ShippingFee float64                `json:"shipping_fee"`
	ServiceTax  float64                `json:"service_tax"`
	GrandTotal  float64                `json:"grand_total"`
}

// OrderPlaced is the terminal stage message, handed to delivery tracking.
type OrderPlaced struct {
	OrderID    string  `json:"order_id"`
	GrandTotal float64 `json:"grand_total"`
}
