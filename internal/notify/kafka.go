package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/delivery"
)

const Topic = "order-notifications"

// statusBody maps a delivery stage to the user-facing notification text.
func statusBody(status delivery.Status) string {
	switch status {
	case delivery.StatusPending:
		return "Your order has been confirmed!"
	case delivery.StatusEnRoute:
		return "Good news! Your order is out for delivery!"
	case delivery.StatusDelivered:
		return "Your order has been delivered!"
	default:
		return "Your order status has been updated."
	}
}

type statusEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// KafkaNotifier publishes one status event per transition, keyed by order id
// so events for the same order stay ordered.
type KafkaNotifier struct {
	writer *kafka.Writer
}

func NewKafkaNotifier(brokers ...string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaNotifier{writer: w}
}

func (n *KafkaNotifier) Notify(ctx context.Context, orderID string, status delivery.Status) error {
	event := statusEvent{
		OrderID: orderID,
		Status:  status.String(),
		Title:   "Order Status Update",
		Body:    statusBody(status),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(orderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_status_changed")},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() {
	if err := n.writer.Close(); err != nil {
		log.Printf("error closing kafka writer: %v", err)
	}
}
