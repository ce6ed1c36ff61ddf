package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"eatsfront/storefront/internal/domain"
	"eatsfront/storefront/internal/identity"
	"eatsfront/storefront/internal/manage"
	"eatsfront/storefront/internal/search"
	"eatsfront/storefront/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Storefront service.StorefrontServiceInterface
	Identity   identity.Provider
	Log        logrus.FieldLogger
}

func NewHandler(storefront service.StorefrontServiceInterface, provider identity.Provider, log logrus.FieldLogger) *Handler {
	return &Handler{Storefront: storefront, Identity: provider, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	r.HandleFunc("/api/search", h.searchState).Methods("GET")
	r.HandleFunc("/api/search/query", h.setSearchQuery).Methods("PUT")
	r.HandleFunc("/api/search/cuisines", h.setSelectedCuisines).Methods("PUT")
	r.HandleFunc("/api/search/sort", h.setSortOption).Methods("PUT")
	r.HandleFunc("/api/search/page", h.setPage).Methods("PUT")
	r.HandleFunc("/api/search/reset", h.resetSearch).Methods("POST")
	r.HandleFunc("/api/search/{city}", h.search).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}", h.restaurantDetail).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart/items/{itemId}", h.removeFromCart).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/auth/login", h.login).Methods("GET")
	r.HandleFunc("/api/auth/callback", h.authCallback).Methods("GET")

	r.HandleFunc("/api/my/user", h.requireUser("/user-profile", h.getUser)).Methods("GET")
	r.HandleFunc("/api/my/user", h.requireUser("/user-profile", h.updateUser)).Methods("PUT")
	r.HandleFunc("/api/my/restaurant", h.requireUser("/manage-restaurant", h.getMyRestaurant)).Methods("GET")
	r.HandleFunc("/api/my/restaurant", h.requireUser("/manage-restaurant", h.saveMyRestaurant)).Methods("POST")

	r.HandleFunc("/api/orders", h.requireUser("/order-status", h.myOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}/qrcode", h.requireUser("/order-status", h.orderQRCode)).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "storefront",
	})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	descriptor := search.ParseDescriptor(r.URL.Query())
	state := h.Storefront.Search(r.Context(), sessionID(r), mux.Vars(r)["city"], descriptor)
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) searchState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Storefront.SearchState(sessionID(r)))
}

func (h *Handler) setSearchQuery(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SearchQuery string `json:"searchQuery"`
	}
	if !decode(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusOK, h.Storefront.SetSearchQuery(r.Context(), sessionID(r), payload.SearchQuery))
}

func (h *Handler) setSelectedCuisines(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SelectedCuisines []string `json:"selectedCuisines"`
	}
	if !decode(w, r, &payload) {
		return
	}
	if payload.SelectedCuisines == nil {
		payload.SelectedCuisines = []string{}
	}
	writeJSON(w, http.StatusOK, h.Storefront.SetSelectedCuisines(r.Context(), sessionID(r), payload.SelectedCuisines))
}

func (h *Handler) setSortOption(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SortOption string `json:"sortOption"`
	}
	if !decode(w, r, &payload) {
		return
	}
	if payload.SortOption == "" {
		writeError(w, http.StatusBadRequest, "sortOption is required")
		return
	}
	writeJSON(w, http.StatusOK, h.Storefront.SetSortOption(r.Context(), sessionID(r), payload.SortOption))
}

func (h *Handler) setPage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Page int `json:"page"`
	}
	if !decode(w, r, &payload) {
		return
	}
	if payload.Page < 1 {
		writeError(w, http.StatusBadRequest, "page must be at least 1")
		return
	}
	writeJSON(w, http.StatusOK, h.Storefront.SetPage(r.Context(), sessionID(r), payload.Page))
}

func (h *Handler) resetSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Storefront.ResetSearch(r.Context(), sessionID(r)))
}

func (h *Handler) restaurantDetail(w http.ResponseWriter, r *http.Request) {
	view, err := h.Storefront.RestaurantDetail(r.Context(), sessionID(r), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		MenuItemID string `json:"menuItemId"`
	}
	if !decode(w, r, &payload) {
		return
	}
	if payload.MenuItemID == "" {
		writeError(w, http.StatusBadRequest, "menuItemId is required")
		return
	}
	view, err := h.Storefront.AddToCart(r.Context(), sessionID(r), mux.Vars(r)["restaurantId"], payload.MenuItemID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	view, err := h.Storefront.RemoveFromCart(r.Context(), sessionID(r), vars["restaurantId"], vars["itemId"])
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Storefront.ClearCart(r.Context(), sessionID(r), mux.Vars(r)["restaurantId"]); err != nil {
		h.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	user, ok := h.Identity.CurrentUser(r)
	if !ok {
		h.loginRequired(w, "/detail/"+restaurantID)
		return
	}

	var details domain.DeliveryDetails
	if !decode(w, r, &details) {
		return
	}

	session, err := h.Storefront.Checkout(r.Context(), sessionID(r), user, restaurantID, details)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	returnTo := r.URL.Query().Get("returnTo")
	http.Redirect(w, r, h.Identity.LoginRedirectURL(returnTo), http.StatusFound)
}

// authCallback is where the identity provider sends the browser back. The
// backend user is created once per session; a failure there does not block
// the redirect.
func (h *Handler) authCallback(w http.ResponseWriter, r *http.Request) {
	if user, ok := h.Identity.CurrentUser(r); ok {
		if err := h.Storefront.EnsureUser(r.Context(), sessionID(r), user); err != nil {
			requestLogger(r, h.Log).WithError(err).Warn("could not create user after login")
		}
	}
	http.Redirect(w, r, identity.ReturnToFromState(r.URL.Query().Get("state")), http.StatusFound)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request, user identity.Identity) {
	profile, err := h.Storefront.GetUser(r.Context(), user)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request, user identity.Identity) {
	var req domain.UpdateUserRequest
	if !decode(w, r, &req) {
		return
	}
	profile, err := h.Storefront.UpdateUser(r.Context(), user, req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) getMyRestaurant(w http.ResponseWriter, r *http.Request, user identity.Identity) {
	view, err := h.Storefront.MyRestaurantForm(r.Context(), user)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) saveMyRestaurant(w http.ResponseWriter, r *http.Request, user identity.Identity) {
	var form manage.Form
	if !decode(w, r, &form) {
		return
	}
	result, err := h.Storefront.SaveMyRestaurant(r.Context(), user, form)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, result)
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request, user identity.Identity) {
	orders, err := h.Storefront.MyOrders(r.Context(), user)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request, user identity.Identity) {
	png, err := h.Storefront.OrderQRCode(r.Context(), user, mux.Vars(r)["orderId"])
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// requireUser guards a route behind login. returnTo is where the browser
// should land after logging in.
func (h *Handler) requireUser(returnTo string, next func(http.ResponseWriter, *http.Request, identity.Identity)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.Identity.CurrentUser(r)
		if !ok {
			h.loginRequired(w, returnTo)
			return
		}
		next(w, r, user)
	}
}

func (h *Handler) loginRequired(w http.ResponseWriter, returnTo string) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{
		"error":    "login required",
		"loginUrl": h.Identity.LoginRedirectURL(returnTo),
	})
}

func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *manage.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":      "invalid restaurant form",
			"violations": validationErr.Violations,
		})
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		requestLogger(r, h.Log).WithError(err).Error("request failed")
		writeError(w, http.StatusBadGateway, "upstream request failed")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
