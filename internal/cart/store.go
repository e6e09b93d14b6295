package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/cart/kv"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
)

// StorageKey is the fixed key the cart snapshot is persisted under.
// There is no schema versioning; an incompatible blob is treated as absent.
const StorageKey = "storefront:cart"

const persistTimeout = time.Second

// Store is the single source of truth for the shopping cart.
// In-memory state is authoritative; persistence is best-effort.
type Store struct {
	mu     sync.RWMutex
	items  []domain.CartItem
	loaded bool
	kv     kv.KV
}

func NewStore(persistence kv.KV) *Store {
	return &Store{kv: persistence}
}

// Load restores the persisted snapshot. Any failure (storage unavailable,
// corrupt blob) falls back to an empty cart and logs; it never fails the flow.
// Consumers must not read cart contents before Load has run.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.loaded = true }()

	blob, err := s.kv.Load(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Printf("failed to load cart from storage: %v", err)
		}
		return
	}

	var items []domain.CartItem
	if err := json.Unmarshal(blob, &items); err != nil {
		log.Printf("stored cart blob is malformed, starting empty: %v", err)
		return
	}
	s.items = items
}

// IsLoaded reports whether the initial restore attempt has completed.
func (s *Store) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// AddToCart increments the quantity of an existing line with the product's id,
// or inserts a new line. quantity must be a positive integer.
func (s *Store) AddToCart(product domain.Product, quantity int) {
	if quantity < 1 {
		log.Printf("ignoring AddToCart with non-positive quantity %d for product %d", quantity, product.ID)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			s.mu.Unlock()
			s.persist()
			return
		}
	}
	s.items = append(s.items, domain.CartItem{
		ProductID: product.ID,
		Title:     product.Title,
		UnitPrice: product.Price,
		Quantity:  quantity,
		ImageURL:  product.ImageURL,
	})
	s.mu.Unlock()
	s.persist()
}

// UpdateQuantity sets the quantity of the line with productID. A quantity of
// zero or less removes the line. An unknown id is a no-op: a bare quantity
// update never creates a line, adding goes through AddToCart.
func (s *Store) UpdateQuantity(productID int64, newQuantity int) {
	s.mu.Lock()
	changed := false
	if newQuantity <= 0 {
		for i := range s.items {
			if s.items[i].ProductID == productID {
				s.items = append(s.items[:i], s.items[i+1:]...)
				changed = true
				break
			}
		}
	} else {
		for i := range s.items {
			if s.items[i].ProductID == productID {
				s.items[i].Quantity = newQuantity
				changed = true
				break
			}
		}
	}
	s.mu.Unlock()

	if changed {
		s.persist()
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.persist()
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalPrice is the derived sum of unitPrice × quantity over current lines.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// persist writes the full current snapshot. Failures are logged, never
// surfaced, and never roll back the in-memory mutation. Overlapping writes
// from successive mutations may land in any order; the in-memory state is
// authoritative so last-writer-wins is acceptable.
func (s *Store) persist() {
	s.mu.RLock()
	items := s.items
	if items == nil {
		items = []domain.CartItem{}
	}
	blob, err := json.Marshal(items)
	s.mu.RUnlock()
	if err != nil {
		log.Printf("failed to marshal cart snapshot: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.kv.Store(ctx, StorageKey, blob); err != nil {
		log.Printf("failed to save cart to storage: %v", err)
	}
}
