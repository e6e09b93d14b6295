package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/cart"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/placing"
)

// Coordinator drives the checkout stage sequence:
// address confirmation → order summary → placement.
type Coordinator struct {
	cart   *cart.Store
	placer placing.Client

	mu       sync.Mutex
	inFlight bool
}

func NewCoordinator(cartStore *cart.Store, placer placing.Client) *Coordinator {
	return &Coordinator{cart: cartStore, placer: placer}
}

// ConfirmAddress validates the delivery address and produces the stage
// message carried to the summary. Street, city and zip are required; the
// returned error names the first missing field.
func (c *Coordinator) ConfirmAddress(addr domain.DeliveryAddress) (AddressConfirmed, error) {
	if err := validateAddress(addr); err != nil {
		return AddressConfirmed{}, err
	}
	return AddressConfirmed{Address: addr}, nil
}

// BuildSummary prices the current cart snapshot against the fixed fee and
// tax policy. An empty cart is rejected so the caller redirects to the
// catalog instead of allowing a zero-item checkout.
func (c *Coordinator) BuildSummary(confirmed AddressConfirmed) (SummaryReady, error) {
	if err := validateAddress(confirmed.Address); err != nil {
		return SummaryReady{}, ErrAddressRequired
	}

	items := c.cart.Items()
	if len(items) == 0 {
		return SummaryReady{}, ErrEmptyCart
	}

	subtotal := c.cart.TotalPrice()
	tax, grand := price(subtotal)
	return SummaryReady{
		Address:     confirmed.Address,
		Items:       items,
		Subtotal:    subtotal,
		ShippingFee: ShippingFee,
		ServiceTax:  tax,
		GrandTotal:  grand,
	}, nil
}

// PlaceOrder consumes a summary, builds the order draft from the current
// cart and invokes the external placement call. Exactly one placement may be
// pending at a time. On success the cart is cleared; on failure cart and
// address stay intact and the error is retryable.
func (c *Coordinator) PlaceOrder(ctx context.Context, summary SummaryReady) (OrderPlaced, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return OrderPlaced{}, ErrPlacementInFlight
	}
	c.inFlight = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	if err := validateAddress(summary.Address); err != nil {
		return OrderPlaced{}, ErrAddressRequired
	}

	// Reprice from the live cart: the summary may be stale if a line was
	// removed between stages.
	items := c.cart.Items()
	if len(items) == 0 {
		return OrderPlaced{}, ErrEmptyCart
	}

	var subtotal float64
	draftItems := make([]domain.OrderDraftItem, len(items))
	for i, item := range items {
		subtotal += item.Subtotal()
		draftItems[i] = domain.OrderDraftItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	_, grand := price(subtotal)

	draft := domain.OrderDraft{
		Items:      draftItems,
		Delivery:   summary.Address,
		GrandTotal: grand,
		CreatedAt:  time.Now(),
	}

	placed, err := c.placer.PlaceOrder(ctx, draft)
	if err != nil {
		return OrderPlaced{}, fmt.Errorf("could not place order: %w", err)
	}

	// Clear exactly once, only after the placement succeeded.
	c.cart.ClearCart()

	return OrderPlaced{OrderID: placed.OrderID, GrandTotal: placed.GrandTotal}, nil
}

func validateAddress(addr domain.DeliveryAddress) error {
	switch {
	case addr.Street == "":
		return &ValidationError{Field: "street"}
	case addr.City == "":
		return &ValidationError{Field: "city"}
	case addr.Zip == "":
		return &ValidationError{Field: "zip"}
	}
	return nil
}
