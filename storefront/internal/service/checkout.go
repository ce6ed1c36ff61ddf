package service

import (
	"context"
	"strconv"

	"eatsfront/storefront/internal/cart"
	"eatsfront/storefront/internal/domain"
	"eatsfront/storefront/internal/identity"

	"github.com/pkg/errors"
)

const EventCheckoutStarted = "checkout_started"

// Checkout hands the session cart to the payment provider and returns the
// redirect target. The cart is left as is; it is cleared when the browser
// comes back from a successful payment.
func (s *StorefrontService) Checkout(ctx context.Context, sessionID string, user identity.Identity, restaurantID string, details domain.DeliveryDetails) (*domain.CheckoutSession, error) {
	restaurant, err := s.restaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	var items []cart.LineItem
	var total int
	err = s.sessions.Get(sessionID).WithCart(ctx, restaurantID, func(c *cart.Controller) error {
		items = c.Items()
		total = c.TotalPrice(restaurant.DeliveryPrice)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if details.Email == "" {
		details.Email = user.Email
	}
	req := domain.CheckoutSessionRequest{
		CartItems:       make([]domain.CheckoutCartItem, 0, len(items)),
		RestaurantID:    restaurant.ID,
		DeliveryDetails: details,
	}
	if req.RestaurantID == "" {
		req.RestaurantID = restaurantID
	}
	for _, item := range items {
		req.CartItems = append(req.CartItems, domain.CheckoutCartItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   strconv.Itoa(item.Quantity),
		})
	}

	session, err := s.backend.CreateCheckoutSession(ctx, user.Token, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	log := s.log.WithField("session", sessionID).WithField("restaurant_id", restaurantID)
	if s.publisher == nil {
		log.Debug("no checkout publisher configured, skipping event")
	} else if err := s.publisher.PublishCheckout(ctx, domain.CheckoutEvent{
		Type:         EventCheckoutStarted,
		SessionID:    sessionID,
		Subject:      user.Subject,
		RestaurantID: req.RestaurantID,
		ItemCount:    len(items),
		TotalPrice:   total,
		Timestamp:    s.now(),
	}); err != nil {
		log.WithError(err).Warn("failed to publish checkout event")
	}

	log.WithField("items", len(items)).Info("checkout session created")
	return session, nil
}
