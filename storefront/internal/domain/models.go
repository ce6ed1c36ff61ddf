package domain

import "time"

// Prices are in minor currency units throughout (pence).

type MenuItem struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Restaurant struct {
	ID                   string     `json:"_id"`
	User                 string     `json:"user,omitempty"`
	RestaurantName       string     `json:"restaurantName"`
	City                 string     `json:"city"`
	Country              string     `json:"country"`
	DeliveryPrice        int        `json:"deliveryPrice"`
	EstimateDeliveryTime int        `json:"estimateDeliveryTime"`
	Cuisines             []string   `json:"cuisines"`
	MenuItems            []MenuItem `json:"menuItems"`
	ImageURL             string     `json:"imageUrl"`
	LastUpdated          time.Time  `json:"lastUpdated,omitempty"`
}

// MenuItem looks up a menu item by id.
func (r *Restaurant) MenuItem(id string) (MenuItem, bool) {
	for _, item := range r.MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

type RestaurantSearchResponse struct {
	Data       []Restaurant `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

type User struct {
	ID           string `json:"_id,omitempty"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

type CreateUserRequest struct {
	Auth0ID string `json:"auth0Id"`
	Email   string `json:"email"`
}

type UpdateUserRequest struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

type DeliveryDetails struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Email        string `json:"email"`
}

// CheckoutCartItem mirrors the backend contract, which takes quantity as a
// string.
type CheckoutCartItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
}

type CheckoutSessionRequest struct {
	CartItems       []CheckoutCartItem `json:"cartItems"`
	RestaurantID    string             `json:"restaurantId"`
	DeliveryDetails DeliveryDetails    `json:"deliveryDetails"`
}

type CheckoutSession struct {
	URL string `json:"url"`
}

type Order struct {
	ID              string             `json:"_id"`
	Restaurant      Restaurant         `json:"restaurant"`
	User            User               `json:"user"`
	CartItems       []CheckoutCartItem `json:"cartItems"`
	DeliveryDetails DeliveryDetails    `json:"deliveryDetails"`
	TotalAmount     int                `json:"totalAmount"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// CheckoutEvent is published when a checkout session has been handed to the
// payment provider.
type CheckoutEvent struct {
	Type         string    `json:"type"`
	SessionID    string    `json:"session_id"`
	Subject      string    `json:"subject"`
	RestaurantID string    `json:"restaurant_id"`
	ItemCount    int       `json:"item_count"`
	TotalPrice   int       `json:"total_price"`
	Timestamp    time.Time `json:"timestamp"`
}
