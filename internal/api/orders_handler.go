package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/delivery"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
)

type OrdersHandler struct {
	tracker *delivery.Tracker
}

func NewOrdersHandler(tracker *delivery.Tracker) *OrdersHandler {
	return &OrdersHandler{tracker: tracker}
}

type OrderStatusResponseDTO struct {
	OrderID    string  `json:"order_id"`
	Status     string  `json:"status"`
	GrandTotal float64 `json:"grand_total"`
	Terminal   bool    `json:"terminal"`
}

type EnterTrackingRequestDTO struct {
	GrandTotal float64 `json:"grand_total"`
}

func (h *OrdersHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	status, ok := h.tracker.Status(orderID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_tracked", "order is not being tracked")
		return
	}
	order, _ := h.tracker.Order(orderID)

	respondJSON(w, http.StatusOK, OrderStatusResponseDTO{
		OrderID:    orderID,
		Status:     status.String(),
		GrandTotal: order.GrandTotal,
		Terminal:   status.IsTerminal(),
	})
}

// EnterTracking (re)starts the status timeline: re-entering the screen
// restarts the sequence from PENDING.
func (h *OrdersHandler) EnterTracking(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	order, ok := h.tracker.Order(orderID)
	if !ok {
		order = domain.PlacedOrder{OrderID: orderID}
		// Optional body carries the grand total handed over from checkout.
		var req EnterTrackingRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			order.GrandTotal = req.GrandTotal
		}
	}

	tr := h.tracker.Enter(order)

	respondJSON(w, http.StatusOK, OrderStatusResponseDTO{
		OrderID:    orderID,
		Status:     tr.Status().String(),
		GrandTotal: order.GrandTotal,
		Terminal:   tr.Status().IsTerminal(),
	})
}

// ExitTracking cancels all pending transitions for the order's timeline.
func (h *OrdersHandler) ExitTracking(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	if !h.tracker.Exit(orderID) {
		respondError(w, http.StatusNotFound, "not_tracked", "order is not being tracked")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
