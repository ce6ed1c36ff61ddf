package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"eatsfront/storefront/internal/domain"
	"eatsfront/storefront/internal/search"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("not found")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for any non-2xx answer from the backend.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Client talks to the restaurant REST backend. It never retries.
type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{baseURL: baseURL, client: client}
}

func (c *Client) SearchRestaurants(ctx context.Context, city string, descriptor search.Descriptor) (*domain.RestaurantSearchResponse, error) {
	path := "/api/restaurant/search/" + url.PathEscape(city) + "?" + descriptor.Query().Encode()
	var resp domain.RestaurantSearchResponse
	if err := c.do(ctx, "search", http.MethodGet, path, "", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := c.do(ctx, "get restaurant", http.MethodGet, "/api/restaurant/"+url.PathEscape(restaurantID), "", nil, "", &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, token string, req domain.CheckoutSessionRequest) (*domain.CheckoutSession, error) {
	var session domain.CheckoutSession
	if err := c.doJSON(ctx, "create checkout session", http.MethodPost, "/api/order/checkout/create-checkout-session", token, req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, req domain.CreateUserRequest) error {
	return c.doJSON(ctx, "create user", http.MethodPost, "/api/my/user", token, req, nil)
}

func (c *Client) UpdateUser(ctx context.Context, token string, req domain.UpdateUserRequest) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, "update user", http.MethodPut, "/api/my/user", token, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, "get user", http.MethodGet, "/api/my/user", token, nil, "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetMyRestaurant(ctx context.Context, token string) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := c.do(ctx, "get my restaurant", http.MethodGet, "/api/my/restaurant", token, nil, "", &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// CreateMyRestaurant sends an already encoded multipart body.
func (c *Client) CreateMyRestaurant(ctx context.Context, token string, body io.Reader, contentType string) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := c.do(ctx, "create my restaurant", http.MethodPost, "/api/my/restaurant", token, body, contentType, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) UpdateMyRestaurant(ctx context.Context, token string, body io.Reader, contentType string) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := c.do(ctx, "update my restaurant", http.MethodPut, "/api/my/restaurant", token, body, contentType, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) GetMyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, "get my orders", http.MethodGet, "/api/order", token, nil, "", &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path, token string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "%s: encode request", op)
	}
	return c.do(ctx, op, method, path, token, bytes.NewReader(payload), "application/json", out)
}

func (c *Client) do(ctx context.Context, op, method, path, token string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "%s: build request", op)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s", op)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(ErrNotFound, "%s", op)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "%s: decode response", op)
	}
	return nil
}
