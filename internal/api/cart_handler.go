package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/cart"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
)

type CartHandler struct {
	store *cart.Store
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

type AddItemRequestDTO struct {
	ProductID int64   `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items      []domain.CartItem `json:"items"`
	TotalPrice float64           `json:"total_price"`
}

// ready gates every cart read behind the initial restore: answering from an
// unloaded store could show a transient empty cart and overwrite real data.
func (h *CartHandler) ready(w http.ResponseWriter) bool {
	if !h.store.IsLoaded() {
		respondRetryable(w, http.StatusServiceUnavailable, "cart_not_ready", "cart is still loading")
		return false
	}
	return true
}

func (h *CartHandler) respondCart(w http.ResponseWriter, status int) {
	respondJSON(w, status, CartResponseDTO{
		Items:      h.store.Items(),
		TotalPrice: h.store.TotalPrice(),
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	h.respondCart(w, http.StatusOK)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "id must be positive")
		return
	}
	if req.Quantity < 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}
	if req.Price < 0 {
		respondError(w, http.StatusBadRequest, "invalid_price", "price must not be negative")
		return
	}

	h.store.AddToCart(domain.Product{
		ID:       req.ProductID,
		Title:    req.Title,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}, req.Quantity)

	h.respondCart(w, http.StatusCreated)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}

	productID, err := parseProductID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
		return
	}

	// Zero or negative removes the line; an unknown id is a no-op.
	h.store.UpdateQuantity(productID, req.Quantity)
	h.respondCart(w, http.StatusOK)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}

	productID, err := parseProductID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	h.store.UpdateQuantity(productID, 0)
	h.respondCart(w, http.StatusOK)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	h.store.ClearCart()
	h.respondCart(w, http.StatusOK)
}

func parseProductID(r *http.Request) (int64, error) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return 0, strconv.ErrSyntax
	}
	return productID, nil
}
