package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/checkout"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/delivery"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
)

// CheckoutHandler exposes the three checkout stages. Each stage takes the
// previous stage's serialized message as its body and returns the next one,
// so no checkout state lives on the server between requests.
type CheckoutHandler struct {
	flow    *checkout.Coordinator
	tracker *delivery.Tracker
}

func NewCheckoutHandler(flow *checkout.Coordinator, tracker *delivery.Tracker) *CheckoutHandler {
	return &CheckoutHandler{flow: flow, tracker: tracker}
}

func (h *CheckoutHandler) ConfirmAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.DeliveryAddress
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	confirmed, err := h.flow.ConfirmAddress(addr)
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusUnprocessableEntity, "missing_"+verr.Field, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, "invalid_address", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, confirmed)
}

func (h *CheckoutHandler) BuildSummary(w http.ResponseWriter, r *http.Request) {
	var confirmed checkout.AddressConfirmed
	if err := json.NewDecoder(r.Body).Decode(&confirmed); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	summary, err := h.flow.BuildSummary(confirmed)
	if err != nil {
		h.respondFlowError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *CheckoutHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	var summary checkout.SummaryReady
	if err := json.NewDecoder(r.Body).Decode(&summary); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	placed, err := h.flow.PlaceOrder(r.Context(), summary)
	if err != nil {
		h.respondFlowError(w, err)
		return
	}

	// The delivery timeline starts as the client lands on the status screen,
	// carrying orderId and grandTotal forward.
	h.tracker.Enter(domain.PlacedOrder{OrderID: placed.OrderID, GrandTotal: placed.GrandTotal})

	respondJSON(w, http.StatusCreated, placed)
}

func (h *CheckoutHandler) respondFlowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		// Signals the client to redirect back to the catalog.
		respondError(w, http.StatusConflict, "cart_empty", err.Error())
	case errors.Is(err, checkout.ErrAddressRequired):
		respondError(w, http.StatusUnprocessableEntity, "address_required", err.Error())
	case errors.Is(err, checkout.ErrPlacementInFlight):
		respondError(w, http.StatusConflict, "placement_in_flight", err.Error())
	default:
		respondRetryable(w, http.StatusBadGateway, "placement_failed", "could not place order, please try again")
	}
}
