package checkout

// Fixed pricing policy applied to every order.
const (
	ShippingFee = 5.00
	TaxRate     = 0.05
)

// price breaks a cart subtotal down into the summary figures.
func price(subtotal float64) (tax, grand float64) {
	tax = subtotal * TaxRate
	grand = subtotal + ShippingFee + tax
	return tax, grand
}
