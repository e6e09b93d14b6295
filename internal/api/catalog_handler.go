package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/catalog"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
)

// CatalogFetcher is the slice of the catalog client these handlers need.
type CatalogFetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchUserProfile(ctx context.Context) (*domain.UserProfile, error)
}

type CatalogHandler struct {
	client CatalogFetcher
}

func NewCatalogHandler(client CatalogFetcher) *CatalogHandler {
	return &CatalogHandler{client: client}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.client.FetchProducts(r.Context())
	if err != nil {
		h.respondFetchError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.client.FetchUserProfile(r.Context())
	if err != nil {
		h.respondFetchError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (h *CatalogHandler) respondFetchError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrUnavailable) {
		respondRetryable(w, http.StatusServiceUnavailable, "could_not_load", "could not load data, please retry")
		return
	}
	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
