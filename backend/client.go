// Package backend is the REST client for the ordering platform API.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Kariqs/carta-vendor-portal/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// TokenSource supplies the bearer token attached to every request.
type TokenSource interface {
	Token() string
}

type Client struct {
	http   *resty.Client
	tokens TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &Client{http: c, tokens: tokens}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", c.tokens.Token()).
		SetHeader("X-Request-Id", uuid.NewString())
}

// do runs the request and decodes the body into out when the response status
// equals want.
func (c *Client) do(req *resty.Request, method, path string, want int, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, path, err, ErrTransport)
	}
	if resp.StatusCode() != want {
		return &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(resp.Body())),
		}
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s %s: failed to parse response: %v: %w", method, path, err, ErrRequestFailed)
	}
	return nil
}

func (c *Client) GetProfile(ctx context.Context) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	if err := c.do(c.request(ctx), http.MethodGet, "/users/me", http.StatusOK, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ListOrders(ctx context.Context, vendorID models.ID) ([]models.Order, error) {
	var orders []models.Order
	path := "/vendors/" + url.PathEscape(vendorID.String()) + "/orders"
	if err := c.do(c.request(ctx), http.MethodGet, path, http.StatusOK, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID models.ID, status models.OrderStatus) error {
	path := "/orders/" + url.PathEscape(orderID.String()) + "/status"
	req := c.request(ctx).SetBody(models.OrderStatusUpdate{Status: status})
	return c.do(req, http.MethodPut, path, http.StatusOK, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(c.request(ctx), http.MethodGet, "/users/me/products", http.StatusOK, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, product models.NewProduct) error {
	req := c.request(ctx).SetBody(product)
	return c.do(req, http.MethodPost, "/users/me/products", http.StatusCreated, nil)
}

func (c *Client) GetAnalytics(ctx context.Context) (*models.Analytics, error) {
	var stats models.Analytics
	if err := c.do(c.request(ctx), http.MethodGet, "/users/me/analytics", http.StatusOK, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
