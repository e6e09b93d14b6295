package placing

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
)

// Client is the external order-placement contract. The reference backend
// always succeeds, but callers must treat placement as fallible.
type Client interface {
	PlaceOrder(ctx context.Context, draft domain.OrderDraft) (domain.PlacedOrder, error)
}

// Simulated stands in for the real order backend: fixed latency, then an
// opaque order id.
type Simulated struct {
	latency time.Duration
}

func NewSimulated(latency time.Duration) *Simulated {
	return &Simulated{latency: latency}
}

func (s *Simulated) PlaceOrder(ctx context.Context, draft domain.OrderDraft) (domain.PlacedOrder, error) {
	select {
	case <-time.After(s.latency):
	case <-ctx.Done():
		return domain.PlacedOrder{}, fmt.Errorf("order placement interrupted: %w", ctx.Err())
	}

	order := domain.PlacedOrder{
		OrderID:    "ORD-" + uuid.NewString(),
		GrandTotal: draft.GrandTotal,
	}
	log.Printf("order placed: id=%s total=%.2f items=%d", order.OrderID, order.GrandTotal, len(draft.Items))
	return order, nil
}
