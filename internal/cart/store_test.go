package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/cart/kv"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct {
	m       sync.Mutex
	loadErr error
	saveErr error
	blob    []byte
	stores  int
}

func (f *failingKV) Load(context.Context, string) ([]byte, error) {
	f.m.Lock()
	defer f.m.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.blob == nil {
		return nil, kv.ErrNotFound
	}
	return f.blob, nil
}

func (f *failingKV) Store(_ context.Context, _ string, blob []byte) error {
	f.m.Lock()
	defer f.m.Unlock()
	f.stores++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.blob = blob
	return nil
}

func burger() domain.Product {
	return domain.Product{ID: 1, Title: "Burger", Price: 9.50, ImageURL: "burger.png"}
}

func fries() domain.Product {
	return domain.Product{ID: 2, Title: "Fries", Price: 3.25, ImageURL: "fries.png"}
}

func newLoadedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(kv.NewMemoryKV())
	s.Load(context.Background())
	require.True(t, s.IsLoaded())
	return s
}

func TestAddToCart_InsertsNewLine(t *testing.T) {
	s := newLoadedStore(t)

	s.AddToCart(burger(), 1)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, "Burger", items[0].Title)
	assert.Equal(t, 1, items[0].Quantity)
	assert.InDelta(t, 9.50, s.TotalPrice(), 1e-9)
}

func TestAddToCart_MergesByProductID(t *testing.T) {
	s := newLoadedStore(t)

	s.AddToCart(burger(), 1)
	s.AddToCart(burger(), 2)
	s.AddToCart(fries(), 1)

	items := s.Items()
	require.Len(t, items, 2, "no two lines may share a product id")
	assert.Equal(t, 3, items[0].Quantity)
	assert.InDelta(t, 3*9.50+3.25, s.TotalPrice(), 1e-9)
}

func TestAddToCart_NonPositiveQuantityIgnored(t *testing.T) {
	s := newLoadedStore(t)

	s.AddToCart(burger(), 0)
	s.AddToCart(burger(), -3)

	assert.Empty(t, s.Items())
	assert.Zero(t, s.TotalPrice())
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	s := newLoadedStore(t)
	s.AddToCart(burger(), 1)

	s.UpdateQuantity(1, 5)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.InDelta(t, 5*9.50, s.TotalPrice(), 1e-9)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	s := newLoadedStore(t)
	s.AddToCart(burger(), 2)
	s.AddToCart(fries(), 1)

	s.UpdateQuantity(1, 0)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)
	assert.InDelta(t, 3.25, s.TotalPrice(), 1e-9)
}

func TestUpdateQuantity_NegativeRemovesLine(t *testing.T) {
	s := newLoadedStore(t)
	s.AddToCart(burger(), 2)

	s.UpdateQuantity(1, -1)

	assert.Empty(t, s.Items())
	assert.Zero(t, s.TotalPrice())
}

func TestUpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	s := newLoadedStore(t)
	s.AddToCart(burger(), 2)

	s.UpdateQuantity(42, 7)
	s.UpdateQuantity(42, 0)

	items := s.Items()
	require.Len(t, items, 1, "a bare quantity update must not create a line")
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 2*9.50, s.TotalPrice(), 1e-9)
}

func TestClearCart(t *testing.T) {
	s := newLoadedStore(t)
	s.AddToCart(burger(), 2)
	s.AddToCart(fries(), 3)

	s.ClearCart()

	assert.Empty(t, s.Items())
	assert.Zero(t, s.TotalPrice())
}

func TestQuantity_NeverBelowOne(t *testing.T) {
	s := newLoadedStore(t)

	s.AddToCart(burger(), 1)
	s.AddToCart(fries(), 4)
	s.UpdateQuantity(1, 3)
	s.UpdateQuantity(2, 0)
	s.AddToCart(fries(), 1)
	s.UpdateQuantity(99, -5)

	var total float64
	seen := map[int64]bool{}
	for _, item := range s.Items() {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.False(t, seen[item.ProductID], "duplicate id %d", item.ProductID)
		seen[item.ProductID] = true
		total += item.UnitPrice * float64(item.Quantity)
	}
	assert.InDelta(t, total, s.TotalPrice(), 1e-9)
}

func TestLoad_RestoresPersistedSnapshot(t *testing.T) {
	persistence := kv.NewMemoryKV()

	first := NewStore(persistence)
	first.Load(context.Background())
	first.AddToCart(burger(), 2)
	first.AddToCart(fries(), 1)

	// A fresh store over the same persistence sees the same cart.
	second := NewStore(persistence)
	assert.False(t, second.IsLoaded())
	second.Load(context.Background())
	require.True(t, second.IsLoaded())

	assert.Equal(t, first.Items(), second.Items())
	assert.InDelta(t, first.TotalPrice(), second.TotalPrice(), 1e-9)
}

func TestLoad_MissingSnapshotStartsEmpty(t *testing.T) {
	s := NewStore(kv.NewMemoryKV())
	s.Load(context.Background())

	assert.True(t, s.IsLoaded())
	assert.Empty(t, s.Items())
}

func TestLoad_CorruptBlobStartsEmpty(t *testing.T) {
	persistence := kv.NewMemoryKV()
	require.NoError(t, persistence.Store(context.Background(), StorageKey, []byte("{not json")))

	s := NewStore(persistence)
	s.Load(context.Background())

	assert.True(t, s.IsLoaded())
	assert.Empty(t, s.Items())
}

func TestLoad_StorageErrorStartsEmpty(t *testing.T) {
	s := NewStore(&failingKV{loadErr: fmt.Errorf("storage unavailable")})
	s.Load(context.Background())

	assert.True(t, s.IsLoaded())
	assert.Empty(t, s.Items())
}

func TestMutation_PersistsFullSnapshot(t *testing.T) {
	persistence := kv.NewMemoryKV()
	s := NewStore(persistence)
	s.Load(context.Background())

	s.AddToCart(burger(), 2)

	blob, err := persistence.Load(context.Background(), StorageKey)
	require.NoError(t, err)

	var stored []domain.CartItem
	require.NoError(t, json.Unmarshal(blob, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, int64(1), stored[0].ProductID)
	assert.Equal(t, "Burger", stored[0].Title)
	assert.InDelta(t, 9.50, stored[0].UnitPrice, 1e-9)
	assert.Equal(t, 2, stored[0].Quantity)
}

func TestMutation_PersistFailureKeepsMemoryState(t *testing.T) {
	s := NewStore(&failingKV{saveErr: fmt.Errorf("disk full")})
	s.Load(context.Background())

	s.AddToCart(burger(), 1)

	items := s.Items()
	require.Len(t, items, 1, "persistence failure must not roll back the mutation")
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantity_NoOpDoesNotPersist(t *testing.T) {
	persistence := &failingKV{}
	s := NewStore(persistence)
	s.Load(context.Background())
	s.AddToCart(burger(), 1)

	before := persistence.stores
	s.UpdateQuantity(42, 3)

	assert.Equal(t, before, persistence.stores)
}
