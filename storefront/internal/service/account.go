package service

import (
	"context"

	"eatsfront/storefront/internal/backend"
	"eatsfront/storefront/internal/domain"
	"eatsfront/storefront/internal/identity"
	"eatsfront/storefront/internal/manage"
	"eatsfront/storefront/internal/orderstatus"

	"github.com/pkg/errors"
)

// RestaurantFormView prefills the management form. Exists tells the caller
// whether saving will update or create.
type RestaurantFormView struct {
	Exists bool        `json:"exists"`
	Form   manage.Form `json:"form"`
}

type SaveResult struct {
	Created    bool               `json:"created"`
	Restaurant *domain.Restaurant `json:"restaurant"`
}

type OrderView struct {
	domain.Order
	StatusInfo orderstatus.Projection `json:"statusInfo"`
}

// EnsureUser creates the backend user the first time a session completes
// login. Later calls for the same session do nothing.
func (s *StorefrontService) EnsureUser(ctx context.Context, sessionID string, user identity.Identity) error {
	if user.Subject == "" || user.Email == "" {
		return nil
	}
	session := s.sessions.Get(sessionID)
	if !session.userCreated.CompareAndSwap(false, true) {
		return nil
	}
	err := s.backend.CreateUser(ctx, user.Token, domain.CreateUserRequest{Auth0ID: user.Subject, Email: user.Email})
	if err != nil {
		session.userCreated.Store(false)
		return errors.Wrap(err, "failed to create user")
	}
	s.log.WithField("session", sessionID).WithField("subject", user.Subject).Info("user created")
	return nil
}

func (s *StorefrontService) GetUser(ctx context.Context, user identity.Identity) (*domain.User, error) {
	return s.backend.GetUser(ctx, user.Token)
}

func (s *StorefrontService) UpdateUser(ctx context.Context, user identity.Identity, req domain.UpdateUserRequest) (*domain.User, error) {
	return s.backend.UpdateUser(ctx, user.Token, req)
}

func (s *StorefrontService) MyRestaurantForm(ctx context.Context, user identity.Identity) (*RestaurantFormView, error) {
	restaurant, err := s.backend.GetMyRestaurant(ctx, user.Token)
	if errors.Is(err, backend.ErrNotFound) {
		return &RestaurantFormView{Form: manage.NewForm()}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load restaurant")
	}
	return &RestaurantFormView{Exists: true, Form: manage.FromRestaurant(*restaurant)}, nil
}

// SaveMyRestaurant validates the form and creates or updates the caller's
// restaurant. An invalid form returns a *manage.ValidationError and never
// reaches the backend.
func (s *StorefrontService) SaveMyRestaurant(ctx context.Context, user identity.Identity, form manage.Form) (*SaveResult, error) {
	body, contentType, err := manage.Encode(form)
	if err != nil {
		return nil, err
	}

	_, err = s.backend.GetMyRestaurant(ctx, user.Token)
	switch {
	case errors.Is(err, backend.ErrNotFound):
		restaurant, err := s.backend.CreateMyRestaurant(ctx, user.Token, body, contentType)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create restaurant")
		}
		return &SaveResult{Created: true, Restaurant: restaurant}, nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to load restaurant")
	}

	restaurant, err := s.backend.UpdateMyRestaurant(ctx, user.Token, body, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update restaurant")
	}
	return &SaveResult{Restaurant: restaurant}, nil
}

func (s *StorefrontService) MyOrders(ctx context.Context, user identity.Identity) ([]OrderView, error) {
	orders, err := s.backend.GetMyOrders(ctx, user.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderView{
			Order:      order,
			StatusInfo: orderstatus.Project(order.Status, order.CreatedAt, order.Restaurant.EstimateDeliveryTime, s.location),
		})
	}
	return views, nil
}

// OrderQRCode renders a QR code linking to the tracking page of one of the
// caller's orders.
func (s *StorefrontService) OrderQRCode(ctx context.Context, user identity.Identity, orderID string) ([]byte, error) {
	if s.qr == nil {
		return nil, errors.New("qr code generation is not configured")
	}
	orders, err := s.backend.GetMyOrders(ctx, user.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}
	for _, order := range orders {
		if order.ID == orderID {
			return s.qr.Generate(orderID)
		}
	}
	return nil, ErrOrderNotFound
}
