package notify

import (
	"context"
	"log"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/delivery"
)

// LogNotifier is used when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, orderID string, status delivery.Status) error {
	log.Printf("notification: order=%s status=%s body=%q", orderID, status, statusBody(status))
	return nil
}
