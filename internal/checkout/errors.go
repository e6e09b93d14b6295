package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart signals a zero-item checkout attempt; the caller should
	// send the user back to the catalog.
	ErrEmptyCart = errors.New("cart is empty, nothing to check out")

	// ErrAddressRequired means no valid delivery address reached this stage.
	ErrAddressRequired = errors.New("delivery address required")

	// ErrPlacementInFlight guards against a second concurrent placement
	// while one is still pending.
	ErrPlacementInFlight = errors.New("order placement already in progress")
)

// ValidationError names the address field that blocked advancement.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required address field: %s", e.Field)
}
