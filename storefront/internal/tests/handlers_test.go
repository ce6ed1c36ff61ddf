package tests

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpapi "eatsfront/storefront/internal/api/http"
	"eatsfront/storefront/internal/domain"
	"eatsfront/storefront/internal/identity"
	"eatsfront/storefront/internal/manage"
	"eatsfront/storefront/internal/mocks"
	"eatsfront/storefront/internal/search"
	"eatsfront/storefront/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var authConfig = identity.Config{
	Domain:      "eats.eu.auth0.com",
	ClientID:    "client",
	Audience:    "eats-api",
	CallbackURL: "http://localhost:8080/api/auth/callback",
}

func newTestRouter(t *testing.T) (*mocks.StorefrontServiceInterface, http.Handler) {
	svc := mocks.NewStorefrontServiceInterface(t)
	h := httpapi.NewHandler(svc, identity.NewHeaderProvider(authConfig), quietLogger())
	return svc, httpapi.NewRouter(h, []string{"http://localhost:5173"}, quietLogger())
}

func newRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: httpapi.CookieSessionID, Value: "s1"})
	return req
}

func asSam(req *http.Request) *http.Request {
	req.Header.Set(identity.HeaderSubject, sam.Subject)
	req.Header.Set(identity.HeaderEmail, sam.Email)
	req.Header.Set("Authorization", "Bearer "+sam.Token)
	return req
}

func TestHealthHandler(t *testing.T) {
	_, router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(http.MethodGet, "/health", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "storefront", body["service"])
}

func TestSessionCookieIssuedOnFirstVisit(t *testing.T) {
	svc, router := newTestRouter(t)
	var seen string
	svc.On("SearchState", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { seen = args.String(0) }).
		Return(search.State{Status: search.StatusNotReady})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", nil))

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, httpapi.CookieSessionID, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, cookies[0].Value, seen)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(http.MethodGet, "/api/search", ""))
	assert.Empty(t, w.Result().Cookies())
	assert.Equal(t, "s1", seen)
}

func TestSearchHandler(t *testing.T) {
	svc, router := newTestRouter(t)
	descriptor := search.NewDescriptor().
		WithSearchQuery("pizza").
		WithSelectedCuisines([]string{"italian", "vegan"}).
		WithPage(2)
	svc.On("Search", mock.Anything, "s1", "london", descriptor).
		Return(search.State{Status: search.StatusSuccess, Location: "london", Descriptor: descriptor}).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(http.MethodGet,
		"/api/search/london?searchQuery=pizza&selectedCuisines=italian,vegan&sortOption=bestMatch&page=2", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var state search.State
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, search.StatusSuccess, state.Status)
}

func TestSearchTransitionHandlers(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(*mocks.StorefrontServiceInterface)
		wantCode  int
	}{
		{
			name:   "set query",
			method: http.MethodPut,
			target: "/api/search/query",
			body:   `{"searchQuery":"sushi"}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("SetSearchQuery", mock.Anything, "s1", "sushi").Return(search.State{}).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "clear cuisines",
			method: http.MethodPut,
			target: "/api/search/cuisines",
			body:   `{}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("SetSelectedCuisines", mock.Anything, "s1", []string{}).Return(search.State{}).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "sort",
			method: http.MethodPut,
			target: "/api/search/sort",
			body:   `{"sortOption":"deliveryPrice"}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("SetSortOption", mock.Anything, "s1", "deliveryPrice").Return(search.State{}).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "sort missing",
			method:    http.MethodPut,
			target:    "/api/search/sort",
			body:      `{}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "page",
			method: http.MethodPut,
			target: "/api/search/page",
			body:   `{"page":3}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("SetPage", mock.Anything, "s1", 3).Return(search.State{}).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "page zero",
			method:    http.MethodPut,
			target:    "/api/search/page",
			body:      `{"page":0}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid JSON",
			method:    http.MethodPut,
			target:    "/api/search/query",
			body:      `{invalid}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "reset",
			method: http.MethodPost,
			target: "/api/search/reset",
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("ResetSearch", mock.Anything, "s1").Return(search.State{}).Once()
			},
			wantCode: http.StatusOK,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, router := newTestRouter(t)
			testCase.setupMock(svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(testCase.method, testCase.target, testCase.body))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCartHandlers(t *testing.T) {
	view := &service.DetailView{
		Restaurant: sampleRestaurant(),
		CartItems:  nil,
		TotalPrice: 199,
	}

	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(*mocks.StorefrontServiceInterface)
		wantCode  int
	}{
		{
			name:   "detail",
			method: http.MethodGet,
			target: "/api/restaurants/r1",
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("RestaurantDetail", mock.Anything, "s1", "r1").Return(view, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "detail unknown restaurant",
			method: http.MethodGet,
			target: "/api/restaurants/nope",
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("RestaurantDetail", mock.Anything, "s1", "nope").Return(nil, service.ErrRestaurantNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "add item",
			method: http.MethodPost,
			target: "/api/restaurants/r1/cart/items",
			body:   `{"menuItemId":"m1"}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("AddToCart", mock.Anything, "s1", "r1", "m1").Return(view, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "add without item id",
			method:    http.MethodPost,
			target:    "/api/restaurants/r1/cart/items",
			body:      `{}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "add unknown item",
			method: http.MethodPost,
			target: "/api/restaurants/r1/cart/items",
			body:   `{"menuItemId":"zz"}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("AddToCart", mock.Anything, "s1", "r1", "zz").Return(nil, service.ErrMenuItemNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "add with store down",
			method: http.MethodPost,
			target: "/api/restaurants/r1/cart/items",
			body:   `{"menuItemId":"m1"}`,
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("AddToCart", mock.Anything, "s1", "r1", "m1").Return(nil, errors.New("redis down")).Once()
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name:   "remove item",
			method: http.MethodDelete,
			target: "/api/restaurants/r1/cart/items/m1",
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("RemoveFromCart", mock.Anything, "s1", "r1", "m1").Return(view, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "clear",
			method: http.MethodDelete,
			target: "/api/restaurants/r1/cart",
			setupMock: func(m *mocks.StorefrontServiceInterface) {
				m.On("ClearCart", mock.Anything, "s1", "r1").Return(nil).Once()
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, router := newTestRouter(t)
			testCase.setupMock(svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(testCase.method, testCase.target, testCase.body))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCheckoutHandler(t *testing.T) {
	details := domain.DeliveryDetails{Name: "Sam", AddressLine1: "1 High St", City: "London", Country: "UK"}
	body, _ := json.Marshal(details)

	t.Run("anonymous gets login url", func(t *testing.T) {
		_, router := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest(http.MethodPost, "/api/restaurants/r1/checkout", string(body)))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		loginURL, err := url.Parse(resp["loginUrl"])
		require.NoError(t, err)
		assert.Equal(t, "eats.eu.auth0.com", loginURL.Host)
		assert.Equal(t, "/detail/r1", identity.ReturnToFromState(loginURL.Query().Get("state")))
	})

	t.Run("redirect url returned", func(t *testing.T) {
		svc, router := newTestRouter(t)
		svc.On("Checkout", mock.Anything, "s1", sam, "r1", details).
			Return(&domain.CheckoutSession{URL: "https://pay.example.com/cs_1"}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, asSam(newRequest(http.MethodPost, "/api/restaurants/r1/checkout", string(body))))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"url":"https://pay.example.com/cs_1"}`, w.Body.String())
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, router := newTestRouter(t)
		svc.On("Checkout", mock.Anything, "s1", sam, "r1", details).Return(nil, service.ErrEmptyCart).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, asSam(newRequest(http.MethodPost, "/api/restaurants/r1/checkout", string(body))))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandlers(t *testing.T) {
	t.Run("login redirects to provider", func(t *testing.T) {
		_, router := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest(http.MethodGet, "/api/auth/login?returnTo=/manage-restaurant", ""))

		require.Equal(t, http.StatusFound, w.Code)
		location, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/authorize", location.Path)
		assert.Equal(t, "/manage-restaurant", identity.ReturnToFromState(location.Query().Get("state")))
	})

	t.Run("callback creates user and returns", func(t *testing.T) {
		svc, router := newTestRouter(t)
		svc.On("EnsureUser", mock.Anything, "s1", sam).Return(nil).Once()

		state := stateFor(t, "/detail/r1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, asSam(newRequest(http.MethodGet, "/api/auth/callback?state="+state, "")))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/detail/r1", w.Header().Get("Location"))
	})

	t.Run("callback still redirects when user creation fails", func(t *testing.T) {
		svc, router := newTestRouter(t)
		svc.On("EnsureUser", mock.Anything, "s1", sam).Return(errors.New("backend down")).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, asSam(newRequest(http.MethodGet, "/api/auth/callback", "")))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("callback refuses control characters in returnTo", func(t *testing.T) {
		_, router := newTestRouter(t)

		for _, returnTo := range []string{"/\t/evil.com", "/\n/evil.com", "/\r/evil.com"} {
			w := httptest.NewRecorder()
			raw, err := json.Marshal(map[string]string{"returnTo": returnTo})
			require.NoError(t, err)
			state := base64.RawURLEncoding.EncodeToString(raw)
			router.ServeHTTP(w, newRequest(http.MethodGet, "/api/auth/callback?state="+state, ""))

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"))
		}
	})

	t.Run("callback without identity skips user creation", func(t *testing.T) {
		_, router := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest(http.MethodGet, "/api/auth/callback?state="+stateFor(t, "https://evil.example.com"), ""))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func stateFor(t *testing.T, returnTo string) string {
	t.Helper()
	provider := identity.NewHeaderProvider(authConfig)
	loginURL, err := url.Parse(provider.LoginRedirectURL(returnTo))
	require.NoError(t, err)
	return url.QueryEscape(loginURL.Query().Get("state"))
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/my/user"},
		{http.MethodPut, "/api/my/user"},
		{http.MethodGet, "/api/my/restaurant"},
		{http.MethodPost, "/api/my/restaurant"},
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/orders/o1/qrcode"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			_, router := newTestRouter(t)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(route.method, route.target, `{}`))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "loginUrl")
		})
	}
}

func TestUserProfileHandlers(t *testing.T) {
	svc, router := newTestRouter(t)
	profile := &domain.User{ID: "u1", Email: sam.Email, Name: "Sam"}
	update := domain.UpdateUserRequest{Name: "Sam", AddressLine1: "1 High St", City: "London", Country: "UK"}
	svc.On("GetUser", mock.Anything, sam).Return(profile, nil).Once()
	svc.On("UpdateUser", mock.Anything, sam, update).Return(profile, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, asSam(newRequest(http.MethodGet, "/api/my/user", "")))
	assert.Equal(t, http.StatusOK, w.Code)

	body, _ := json.Marshal(update)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, asSam(newRequest(http.MethodPut, "/api/my/user", string(body))))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSaveMyRestaurantHandler(t *testing.T) {
	form := `{"restaurantName":"Dishoom","city":"London","country":"UK","deliveryPrice":"1.99",` +
		`"estimateDeliveryTime":"35","cuisines":["Indian"],"menuItems":[{"name":"Chai","price":"3"}],"imageUrl":"https://img"}`

	tests := []struct {
		name      string
		result    *service.SaveResult
		err       error
		wantCode  int
		wantInRes string
	}{
		{
			name:     "created",
			result:   &service.SaveResult{Created: true, Restaurant: sampleRestaurant()},
			wantCode: http.StatusCreated,
		},
		{
			name:     "updated",
			result:   &service.SaveResult{Restaurant: sampleRestaurant()},
			wantCode: http.StatusOK,
		},
		{
			name: "violations",
			err: &manage.ValidationError{Violations: []manage.Violation{
				{Field: "cuisines", Message: "please select at least one item"},
			}},
			wantCode:  http.StatusUnprocessableEntity,
			wantInRes: "please select at least one item",
		},
		{
			name:     "backend failure",
			err:      errors.New("boom"),
			wantCode: http.StatusBadGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, router := newTestRouter(t)
			svc.On("SaveMyRestaurant", mock.Anything, sam, mock.MatchedBy(func(f manage.Form) bool {
				return f.RestaurantName == "Dishoom" && len(f.MenuItems) == 1 && f.MenuItems[0].Price == "3"
			})).Return(testCase.result, testCase.err).Once()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, asSam(newRequest(http.MethodPost, "/api/my/restaurant", form)))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantInRes != "" {
				assert.Contains(t, w.Body.String(), testCase.wantInRes)
			}
		})
	}
}

func TestMyRestaurantFormHandler(t *testing.T) {
	svc, router := newTestRouter(t)
	svc.On("MyRestaurantForm", mock.Anything, sam).
		Return(&service.RestaurantFormView{Exists: false, Form: manage.NewForm()}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, asSam(newRequest(http.MethodGet, "/api/my/restaurant", "")))

	require.Equal(t, http.StatusOK, w.Code)
	var view service.RestaurantFormView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.False(t, view.Exists)
	assert.Equal(t, []manage.MenuItemInput{{Name: "", Price: "0"}}, view.Form.MenuItems)
}

func TestOrderHandlers(t *testing.T) {
	t.Run("orders", func(t *testing.T) {
		svc, router := newTestRouter(t)
		svc.On("MyOrders", mock.Anything, sam).Return([]service.OrderView{}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, asSam(newRequest(http.MethodGet, "/api/orders", "")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("qr code", func(t *testing.T) {
		svc, router := newTestRouter(t)
		svc.On("OrderQRCode", mock.Anything, sam, "o1").Return([]byte("\x89PNG"), nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, asSam(newRequest(http.MethodGet, "/api/orders/o1/qrcode", "")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "\x89PNG", w.Body.String())
	})

	t.Run("qr code for someone else's order", func(t *testing.T) {
		svc, router := newTestRouter(t)
		svc.On("OrderQRCode", mock.Anything, sam, "o2").Return(nil, service.ErrOrderNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, asSam(newRequest(http.MethodGet, "/api/orders/o2/qrcode", "")))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/restaurants/r1/cart/items", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
