package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the storefront API.
func NewRouter(cartH *CartHandler, catalogH *CatalogHandler, checkoutH *CheckoutHandler, ordersH *OrdersHandler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", catalogH.ListProducts)
		r.Get("/profile", catalogH.GetProfile)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartH.GetCart)
			r.Delete("/", cartH.ClearCart)
			r.Post("/items", cartH.AddItem)
			r.Put("/items/{product_id}", cartH.UpdateQuantity)
			r.Delete("/items/{product_id}", cartH.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/address", checkoutH.ConfirmAddress)
			r.Post("/summary", checkoutH.BuildSummary)
			r.Post("/confirm", checkoutH.ConfirmOrder)
		})

		r.Route("/orders/{order_id}", func(r chi.Router) {
			r.Get("/status", ordersH.GetStatus)
			r.Post("/tracking", ordersH.EnterTracking)
			r.Delete("/tracking", ordersH.ExitTracking)
		})
	})

	return r
}
