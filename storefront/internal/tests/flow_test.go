package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	httpapi "eatsfront/storefront/internal/api/http"
	"eatsfront/storefront/internal/backend"
	"eatsfront/storefront/internal/domain"
	"eatsfront/storefront/internal/identity"
	"eatsfront/storefront/internal/search"
	"eatsfront/storefront/internal/service"
	"eatsfront/storefront/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a stand-in for the REST backend with just enough behaviour
// for a browse, add to cart and checkout visit.
type fakeBackend struct {
	mu        sync.Mutex
	checkouts []domain.CheckoutSessionRequest
	tokens    []string
}

func (b *fakeBackend) routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/restaurant/search/{city}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.RestaurantSearchResponse{
			Data:       []domain.Restaurant{*sampleRestaurant()},
			Pagination: domain.Pagination{Total: 1, Page: 1, Pages: 1},
		})
	}).Methods("GET")
	r.HandleFunc("/api/restaurant/{id}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] != "r1" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(sampleRestaurant())
	}).Methods("GET")
	r.HandleFunc("/api/order/checkout/create-checkout-session", func(w http.ResponseWriter, r *http.Request) {
		var req domain.CheckoutSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		b.checkouts = append(b.checkouts, req)
		b.tokens = append(b.tokens, r.Header.Get("Authorization"))
		b.mu.Unlock()
		json.NewEncoder(w).Encode(domain.CheckoutSession{URL: "https://pay.example.com/cs_42"})
	}).Methods("POST")
	return r
}

type storefrontApp struct {
	router http.Handler
}

func newStorefrontApp(t *testing.T, backendURL string, store storage.ScratchStore) *storefrontApp {
	t.Helper()
	api := backend.NewClient(backendURL, &http.Client{Timeout: 5 * time.Second})
	sessions := service.NewSessions(api, store, time.Hour, quietLogger())
	svc := service.NewStorefrontService(api, sessions, service.Options{
		QR:       &service.DefaultQRGenerator{BaseURL: "http://localhost:8080"},
		Location: time.UTC,
		Log:      quietLogger(),
	})
	h := httpapi.NewHandler(svc, identity.NewHeaderProvider(authConfig), quietLogger())
	return &storefrontApp{router: httpapi.NewRouter(h, []string{"http://localhost:5173"}, quietLogger())}
}

func (a *storefrontApp) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestFullOrderFlow(t *testing.T) {
	fake := &fakeBackend{}
	backendServer := httptest.NewServer(fake.routes())
	defer backendServer.Close()

	mr := miniredis.RunT(t)
	store := storage.NewRedisScratchStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 48*time.Hour)

	app := newStorefrontApp(t, backendServer.URL, store)

	t.Run("SearchCity", func(t *testing.T) {
		w := app.do(t, newRequest(http.MethodGet, "/api/search/london?sortOption=bestMatch", ""))
		require.Equal(t, http.StatusOK, w.Code)

		var state search.State
		require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
		assert.Equal(t, search.StatusSuccess, state.Status)
		require.NotNil(t, state.Results)
		assert.Len(t, state.Results.Data, 1)
	})

	t.Run("FillCart", func(t *testing.T) {
		for _, id := range []string{"m1", "m2", "m1"} {
			w := app.do(t, newRequest(http.MethodPost, "/api/restaurants/r1/cart/items", `{"menuItemId":"`+id+`"}`))
			require.Equal(t, http.StatusOK, w.Code)
		}

		w := app.do(t, newRequest(http.MethodGet, "/api/restaurants/r1", ""))
		require.Equal(t, http.StatusOK, w.Code)
		var view service.DetailView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		assert.Equal(t, 1499, view.TotalPrice)
		require.Len(t, view.CartItems, 2)
		assert.Equal(t, 2, view.CartItems[0].Quantity)
	})

	t.Run("CartSurvivesRestart", func(t *testing.T) {
		restarted := newStorefrontApp(t, backendServer.URL, store)

		w := restarted.do(t, newRequest(http.MethodGet, "/api/restaurants/r1", ""))
		require.Equal(t, http.StatusOK, w.Code)
		var view service.DetailView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		assert.Equal(t, 1499, view.TotalPrice)
	})

	t.Run("Checkout", func(t *testing.T) {
		body, _ := json.Marshal(domain.DeliveryDetails{Name: "Sam", AddressLine1: "1 High St", City: "London", Country: "UK"})
		w := app.do(t, asSam(newRequest(http.MethodPost, "/api/restaurants/r1/checkout", string(body))))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"url":"https://pay.example.com/cs_42"}`, w.Body.String())

		fake.mu.Lock()
		defer fake.mu.Unlock()
		require.Len(t, fake.checkouts, 1)
		assert.Equal(t, "Bearer tok", fake.tokens[0])
		sent := fake.checkouts[0]
		assert.Equal(t, "r1", sent.RestaurantID)
		assert.Equal(t, sam.Email, sent.DeliveryDetails.Email)
		assert.Equal(t, []domain.CheckoutCartItem{
			{MenuItemID: "m1", Name: "Bacon Naan", Quantity: "2"},
			{MenuItemID: "m2", Name: "Chai", Quantity: "1"},
		}, sent.CartItems)
	})

	t.Run("ClearAfterPayment", func(t *testing.T) {
		w := app.do(t, newRequest(http.MethodDelete, "/api/restaurants/r1/cart", ""))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = app.do(t, asSam(newRequest(http.MethodPost, "/api/restaurants/r1/checkout", `{}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownRestaurant", func(t *testing.T) {
		w := app.do(t, newRequest(http.MethodGet, "/api/restaurants/r404", ""))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	fake := &fakeBackend{}
	backendServer := httptest.NewServer(fake.routes())
	defer backendServer.Close()

	app := newStorefrontApp(t, backendServer.URL, storage.NewMemoryScratchStore())

	w := app.do(t, newRequest(http.MethodPost, "/api/restaurants/r1/cart/items", `{"menuItemId":"m1"}`))
	require.Equal(t, http.StatusOK, w.Code)

	other := httptest.NewRequest(http.MethodGet, "/api/restaurants/r1", bytes.NewReader(nil))
	other.AddCookie(&http.Cookie{Name: httpapi.CookieSessionID, Value: "s2"})
	w = app.do(t, other)
	require.Equal(t, http.StatusOK, w.Code)

	var view service.DetailView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Empty(t, view.CartItems)
	assert.Equal(t, 199, view.TotalPrice)
}
