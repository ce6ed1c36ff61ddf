package service

import (
	"context"
	"io"

	"eatsfront/storefront/internal/domain"
	"eatsfront/storefront/internal/identity"
	"eatsfront/storefront/internal/manage"
	"eatsfront/storefront/internal/search"
)

type StorefrontServiceInterface interface {
	Search(ctx context.Context, sessionID, city string, descriptor search.Descriptor) search.State
	SearchState(sessionID string) search.State
	SetSearchQuery(ctx context.Context, sessionID, query string) search.State
	SetSelectedCuisines(ctx context.Context, sessionID string, cuisines []string) search.State
	SetSortOption(ctx context.Context, sessionID, option string) search.State
	SetPage(ctx context.Context, sessionID string, page int) search.State
	ResetSearch(ctx context.Context, sessionID string) search.State

	RestaurantDetail(ctx context.Context, sessionID, restaurantID string) (*DetailView, error)
	AddToCart(ctx context.Context, sessionID, restaurantID, menuItemID string) (*DetailView, error)
	RemoveFromCart(ctx context.Context, sessionID, restaurantID, itemID string) (*DetailView, error)
	ClearCart(ctx context.Context, sessionID, restaurantID string) error
	Checkout(ctx context.Context, sessionID string, user identity.Identity, restaurantID string, details domain.DeliveryDetails) (*domain.CheckoutSession, error)

	EnsureUser(ctx context.Context, sessionID string, user identity.Identity) error
	GetUser(ctx context.Context, user identity.Identity) (*domain.User, error)
	UpdateUser(ctx context.Context, user identity.Identity, req domain.UpdateUserRequest) (*domain.User, error)
	MyRestaurantForm(ctx context.Context, user identity.Identity) (*RestaurantFormView, error)
	SaveMyRestaurant(ctx context.Context, user identity.Identity, form manage.Form) (*SaveResult, error)
	MyOrders(ctx context.Context, user identity.Identity) ([]OrderView, error)
	OrderQRCode(ctx context.Context, user identity.Identity, orderID string) ([]byte, error)
}

// RestaurantBackend is the REST backend as the storefront uses it.
type RestaurantBackend interface {
	search.Searcher
	GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error)
	CreateCheckoutSession(ctx context.Context, token string, req domain.CheckoutSessionRequest) (*domain.CheckoutSession, error)
	CreateUser(ctx context.Context, token string, req domain.CreateUserRequest) error
	UpdateUser(ctx context.Context, token string, req domain.UpdateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, token string) (*domain.User, error)
	GetMyRestaurant(ctx context.Context, token string) (*domain.Restaurant, error)
	CreateMyRestaurant(ctx context.Context, token string, body io.Reader, contentType string) (*domain.Restaurant, error)
	UpdateMyRestaurant(ctx context.Context, token string, body io.Reader, contentType string) (*domain.Restaurant, error)
	GetMyOrders(ctx context.Context, token string) ([]domain.Order, error)
}

type CheckoutPublisher interface {
	PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

var _ StorefrontServiceInterface = (*StorefrontService)(nil)
