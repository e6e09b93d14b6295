package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsPayload = `[
	{"id":1,"title":"Backpack","price":109.95,"description":"A backpack","category":"men's clothing","image":"https://img/1.jpg","rating":{"rate":3.9,"count":120}},
	{"id":2,"title":"T-Shirt","price":22.3,"description":"A shirt","category":"men's clothing","image":"https://img/2.jpg","rating":{"rate":4.1,"count":259}}
]`

const profilePayload = `{
	"id":1,"name":"Leanne Graham","email":"leanne@example.com","phone":"1-770-736-8031",
	"address":{"street":"Kulas Light","suite":"Apt. 556","city":"Gwenborough","zipcode":"92998-3874"}
}`

func TestFetchProducts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL+"/users/1")
	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.InDelta(t, 109.95, products[0].Price, 1e-9)
	assert.Equal(t, 120, products[0].Rating.Count)
}

func TestFetchProducts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)
	_, err := client.FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchProducts_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, srv.URL)
	_, err := client.FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchProducts_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)
	_, err := client.FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchUserProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/1", r.URL.Path)
		w.Write([]byte(profilePayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL+"/users/1")
	profile, err := client.FetchUserProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Leanne Graham", profile.Name)
	assert.Equal(t, "Gwenborough", profile.Address.City)
}

func TestFetchProducts_ConcurrentCallsCollapse(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(productsPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			products, err := client.FetchProducts(context.Background())
			assert.NoError(t, err)
			assert.Len(t, products, 2)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load(), "concurrent fetches share one upstream call")
}
