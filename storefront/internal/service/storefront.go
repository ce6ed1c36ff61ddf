package service

import (
	"context"
	"time"

	"eatsfront/storefront/internal/backend"
	"eatsfront/storefront/internal/cart"
	"eatsfront/storefront/internal/domain"
	"eatsfront/storefront/internal/search"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
)

// DetailView is the restaurant page: the restaurant, this session's cart for
// it and the order total including delivery.
type DetailView struct {
	Restaurant *domain.Restaurant `json:"restaurant"`
	CartItems  []cart.LineItem    `json:"cartItems"`
	TotalPrice int                `json:"totalPrice"`
}

type StorefrontService struct {
	backend   RestaurantBackend
	sessions  *Sessions
	publisher CheckoutPublisher
	qr        QRGenerator
	location  *time.Location
	log       logrus.FieldLogger
	now       func() time.Time
}

type Options struct {
	Publisher CheckoutPublisher
	QR        QRGenerator
	Location  *time.Location
	Log       logrus.FieldLogger
}

func NewStorefrontService(backend RestaurantBackend, sessions *Sessions, opts Options) *StorefrontService {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &StorefrontService{
		backend:   backend,
		sessions:  sessions,
		publisher: opts.Publisher,
		qr:        opts.QR,
		location:  loc,
		log:       log,
		now:       time.Now,
	}
}

func (s *StorefrontService) Search(ctx context.Context, sessionID, city string, descriptor search.Descriptor) search.State {
	return s.sessions.Get(sessionID).Search.Apply(ctx, descriptor, city)
}

func (s *StorefrontService) SearchState(sessionID string) search.State {
	return s.sessions.Get(sessionID).Search.State()
}

func (s *StorefrontService) SetSearchQuery(ctx context.Context, sessionID, query string) search.State {
	return s.sessions.Get(sessionID).Search.SetSearchQuery(ctx, query)
}

func (s *StorefrontService) SetSelectedCuisines(ctx context.Context, sessionID string, cuisines []string) search.State {
	return s.sessions.Get(sessionID).Search.SetSelectedCuisines(ctx, cuisines)
}

func (s *StorefrontService) SetSortOption(ctx context.Context, sessionID, option string) search.State {
	return s.sessions.Get(sessionID).Search.SetSortOption(ctx, option)
}

func (s *StorefrontService) SetPage(ctx context.Context, sessionID string, page int) search.State {
	return s.sessions.Get(sessionID).Search.SetPage(ctx, page)
}

func (s *StorefrontService) ResetSearch(ctx context.Context, sessionID string) search.State {
	return s.sessions.Get(sessionID).Search.ResetSearch(ctx)
}

func (s *StorefrontService) restaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	restaurant, err := s.backend.GetRestaurant(ctx, restaurantID)
	if errors.Is(err, backend.ErrNotFound) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load restaurant %s", restaurantID)
	}
	return restaurant, nil
}

// withRestaurantCart loads the restaurant, then runs mutate against the
// session cart for it and renders the resulting view.
func (s *StorefrontService) withRestaurantCart(ctx context.Context, sessionID, restaurantID string, mutate func(*domain.Restaurant, *cart.Controller) error) (*DetailView, error) {
	restaurant, err := s.restaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	view := &DetailView{Restaurant: restaurant}
	err = s.sessions.Get(sessionID).WithCart(ctx, restaurantID, func(c *cart.Controller) error {
		if mutate != nil {
			if err := mutate(restaurant, c); err != nil {
				return err
			}
		}
		view.CartItems = c.Items()
		view.TotalPrice = c.TotalPrice(restaurant.DeliveryPrice)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *StorefrontService) RestaurantDetail(ctx context.Context, sessionID, restaurantID string) (*DetailView, error) {
	return s.withRestaurantCart(ctx, sessionID, restaurantID, nil)
}

func (s *StorefrontService) AddToCart(ctx context.Context, sessionID, restaurantID, menuItemID string) (*DetailView, error) {
	return s.withRestaurantCart(ctx, sessionID, restaurantID, func(r *domain.Restaurant, c *cart.Controller) error {
		item, ok := r.MenuItem(menuItemID)
		if !ok {
			return ErrMenuItemNotFound
		}
		return c.AddItem(ctx, item)
	})
}

func (s *StorefrontService) RemoveFromCart(ctx context.Context, sessionID, restaurantID, itemID string) (*DetailView, error) {
	return s.withRestaurantCart(ctx, sessionID, restaurantID, func(_ *domain.Restaurant, c *cart.Controller) error {
		return c.RemoveItem(ctx, itemID)
	})
}

// ClearCart drops the stored cart. The payment return page calls it once the
// order has gone through.
func (s *StorefrontService) ClearCart(ctx context.Context, sessionID, restaurantID string) error {
	return s.sessions.Get(sessionID).WithCart(ctx, restaurantID, func(c *cart.Controller) error {
		return c.Clear(ctx)
	})
}
