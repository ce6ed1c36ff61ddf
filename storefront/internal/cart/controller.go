package cart

import (
	"context"
	"encoding/json"
	"sync"

	"eatsfront/storefront/internal/domain"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoRestaurant   = errors.New("restaurant id is required")
	ErrNotInitialized = errors.New("cart has not been initialized")
)

// LineItem is one menu item and its quantity. The JSON shape is the stored
// shape: [{_id, name, price, quantity}].
type LineItem struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// ScratchStore is the keyed durable scratch space the cart survives in.
type ScratchStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

func Key(restaurantID string) string {
	return "cartItems-" + restaurantID
}

// Controller holds the cart of a single restaurant. Every mutation writes the
// whole sequence back to the store before it becomes visible.
type Controller struct {
	store ScratchStore
	log   logrus.FieldLogger

	mu           sync.Mutex
	restaurantID string
	items        []LineItem
}

func NewController(store ScratchStore, log logrus.FieldLogger) *Controller {
	return &Controller{store: store, log: log}
}

// Initialize switches the controller to restaurantID and hydrates it from the
// store. Missing or corrupt data yields an empty cart. A failed read is
// returned and leaves the controller as it was, so a later write cannot
// clobber a cart that merely could not be fetched.
func (c *Controller) Initialize(ctx context.Context, restaurantID string) error {
	if restaurantID == "" {
		return ErrNoRestaurant
	}

	items, err := c.load(ctx, restaurantID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.restaurantID = restaurantID
	c.items = items
	c.mu.Unlock()
	return nil
}

func (c *Controller) load(ctx context.Context, restaurantID string) ([]LineItem, error) {
	log := c.log.WithField("restaurant_id", restaurantID)

	raw, ok, err := c.store.Get(ctx, Key(restaurantID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read cart for restaurant %s", restaurantID)
	}
	if !ok {
		return []LineItem{}, nil
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.WithError(err).Warn("stored cart is corrupt, starting empty")
		return []LineItem{}, nil
	}
	if !valid(items) {
		log.Warn("stored cart has invalid line items, starting empty")
		return []LineItem{}, nil
	}
	if items == nil {
		items = []LineItem{}
	}
	return items, nil
}

func valid(items []LineItem) bool {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" || item.Quantity < 1 || item.Price < 0 || seen[item.ID] {
			return false
		}
		seen[item.ID] = true
	}
	return true
}

func (c *Controller) RestaurantID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restaurantID
}

// Items returns a copy of the line items in insertion order.
func (c *Controller) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]LineItem{}, c.items...)
}

// AddItem increments the quantity of an existing line item by one, or appends
// a new line item with quantity 1.
func (c *Controller) AddItem(ctx context.Context, menuItem domain.MenuItem) error {
	return c.mutate(ctx, func(items []LineItem) []LineItem {
		for i := range items {
			if items[i].ID == menuItem.ID {
				items[i].Quantity++
				return items
			}
		}
		return append(items, LineItem{
			ID:       menuItem.ID,
			Name:     menuItem.Name,
			Price:    menuItem.Price,
			Quantity: 1,
		})
	})
}

// RemoveItem drops the whole line item. Removing an absent id is a no-op.
func (c *Controller) RemoveItem(ctx context.Context, itemID string) error {
	return c.mutate(ctx, func(items []LineItem) []LineItem {
		kept := items[:0]
		for _, item := range items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		return kept
	})
}

// Clear empties the cart and removes its stored copy.
func (c *Controller) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.restaurantID == "" {
		return ErrNotInitialized
	}
	if err := c.store.Delete(ctx, Key(c.restaurantID)); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	c.items = []LineItem{}
	return nil
}

// TotalPrice is the sum of price*quantity plus the restaurant's delivery
// price, in minor units.
func (c *Controller) TotalPrice(deliveryPrice int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Total(c.items, deliveryPrice)
}

func Total(items []LineItem, deliveryPrice int) int {
	total := deliveryPrice
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}

func (c *Controller) mutate(ctx context.Context, apply func([]LineItem) []LineItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.restaurantID == "" {
		return ErrNotInitialized
	}

	updated := apply(append([]LineItem{}, c.items...))

	payload, err := json.Marshal(updated)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}
	if err := c.store.Set(ctx, Key(c.restaurantID), payload); err != nil {
		return errors.Wrapf(err, "failed to persist cart for restaurant %s", c.restaurantID)
	}

	c.items = updated
	return nil
}
