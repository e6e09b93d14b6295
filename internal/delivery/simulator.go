package delivery

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
)

const notifyTimeout = time.Second

// Notifier emits one notification per reached stage. Failure is logged by the
// simulator and never blocks status progression.
type Notifier interface {
	Notify(ctx context.Context, orderID string, status Status) error
}

// Simulator advances a placed order through the delivery stages on a fixed
// schedule, standing in for a real tracking feed.
type Simulator struct {
	sched      Scheduler
	notifier   Notifier
	stageDelay time.Duration
}

func NewSimulator(sched Scheduler, notifier Notifier, stageDelay time.Duration) *Simulator {
	return &Simulator{sched: sched, notifier: notifier, stageDelay: stageDelay}
}

// Tracking is one live status timeline for a placed order.
type Tracking struct {
	order domain.PlacedOrder

	mu      sync.Mutex
	status  Status
	stopped bool
	cancels []CancelFunc
}

// Start begins a fresh timeline at PENDING, fires the PENDING notification
// immediately and schedules the two remaining transitions at stageDelay and
// 2×stageDelay from now.
func (s *Simulator) Start(order domain.PlacedOrder) *Tracking {
	tr := &Tracking{order: order, status: StatusPending}
	s.emit(order.OrderID, StatusPending)

	tr.mu.Lock()
	tr.cancels = []CancelFunc{
		s.sched.Schedule(s.stageDelay, func() { s.advance(tr, StatusEnRoute) }),
		s.sched.Schedule(2*s.stageDelay, func() { s.advance(tr, StatusDelivered) }),
	}
	tr.mu.Unlock()
	return tr
}

// advance moves the tracking to next if it is the legal successor and the
// tracking has not been stopped. A timer firing concurrently with Stop must
// not produce a transition or a notification.
func (s *Simulator) advance(tr *Tracking, next Status) {
	tr.mu.Lock()
	successor, ok := tr.status.next()
	if tr.stopped || !ok || successor != next {
		tr.mu.Unlock()
		return
	}
	tr.status = next
	tr.mu.Unlock()

	s.emit(tr.order.OrderID, next)
}

func (s *Simulator) emit(orderID string, status Status) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := s.notifier.Notify(ctx, orderID, status); err != nil {
		log.Printf("failed to send %s notification for order %s: %v", status, orderID, err)
	}
}

// Status returns the current stage.
func (tr *Tracking) Status() Status {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.status
}

// Order returns the placed order this timeline tracks.
func (tr *Tracking) Order() domain.PlacedOrder {
	return tr.order
}

// Stop cancels all pending transitions. The current status is frozen; no
// further transition fires and no further notification is sent.
func (tr *Tracking) Stop() {
	tr.mu.Lock()
	if tr.stopped {
		tr.mu.Unlock()
		return
	}
	tr.stopped = true
	cancels := tr.cancels
	tr.cancels = nil
	tr.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}
