package delivery

import (
	"sync"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
)

// Tracker holds the live trackings keyed by order id. Entering the status
// screen starts (or restarts) a timeline, exiting it cancels the pending
// transitions.
type Tracker struct {
	sim *Simulator

	mu        sync.RWMutex
	trackings map[string]*Tracking
}

func NewTracker(sim *Simulator) *Tracker {
	return &Tracker{
		sim:       sim,
		trackings: make(map[string]*Tracking),
	}
}

// Enter starts tracking for the order. A prior timeline for the same order is
// stopped first: re-entering restarts the sequence from PENDING with no
// leftover transition from the old instance.
func (t *Tracker) Enter(order domain.PlacedOrder) *Tracking {
	t.mu.Lock()
	prev := t.trackings[order.OrderID]
	t.mu.Unlock()
	if prev != nil {
		prev.Stop()
	}

	tr := t.sim.Start(order)

	t.mu.Lock()
	t.trackings[order.OrderID] = tr
	t.mu.Unlock()
	return tr
}

// Status reports the current stage for the order, if it is being tracked.
func (t *Tracker) Status(orderID string) (Status, bool) {
	t.mu.RLock()
	tr, ok := t.trackings[orderID]
	t.mu.RUnlock()
	if !ok {
		return "", false
	}
	return tr.Status(), true
}

// Order returns the placed order behind a live tracking.
func (t *Tracker) Order(orderID string) (domain.PlacedOrder, bool) {
	t.mu.RLock()
	tr, ok := t.trackings[orderID]
	t.mu.RUnlock()
	if !ok {
		return domain.PlacedOrder{}, false
	}
	return tr.Order(), true
}

// Exit stops the order's timeline and forgets it.
func (t *Tracker) Exit(orderID string) bool {
	t.mu.Lock()
	tr, ok := t.trackings[orderID]
	delete(t.trackings, orderID)
	t.mu.Unlock()
	if !ok {
		return false
	}
	tr.Stop()
	return true
}

// Close stops every live timeline. Used on shutdown.
func (t *Tracker) Close() {
	t.mu.Lock()
	trackings := t.trackings
	t.trackings = make(map[string]*Tracking)
	t.mu.Unlock()

	for _, tr := range trackings {
		tr.Stop()
	}
}
