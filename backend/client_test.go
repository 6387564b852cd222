package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Kariqs/carta-vendor-portal/models"
	"github.com/shopspring/decimal"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type recorded struct {
	Method string
	Path   string
	Auth   string
	Body   string
}

type recorder struct {
	mu    sync.Mutex
	calls []recorded
}

func (rec *recorder) get(i int) recorded {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.calls[i]
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.calls = append(rec.calls, recorded{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization"), Body: string(b)})
		rec.mu.Unlock()
		if r.Header.Get("X-Request-Id") == "" {
			t.Errorf("missing X-Request-Id header")
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second, staticToken("tok-123")), rec
}

func TestGetProfileSendsTokenVerbatim(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"name":"Mama Oliech","compound":"Block C"}`))
	})

	p, err := c.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "7" || p.Name != "Mama Oliech" || p.Compound != "Block C" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	got := calls.get(0)
	if got.Method != http.MethodGet || got.Path != "/users/me" {
		t.Fatalf("unexpected request %s %s", got.Method, got.Path)
	}
	if got.Auth != "tok-123" {
		t.Fatalf("expected raw token in Authorization header, got %q", got.Auth)
	}
}

func TestListOrdersPath(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":42,"status":"pending","total_amount":10,"delivery_location":"Gate 2","created_at":"2025-01-01T10:00:00Z"}]`))
	})

	orders, err := c.ListOrders(context.Background(), "v-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "42" || orders[0].Status != models.StatusPending {
		t.Fatalf("unexpected orders: %+v", orders)
	}
	if calls.get(0).Path != "/vendors/v-1/orders" {
		t.Fatalf("unexpected path %s", calls.get(0).Path)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if err := c.UpdateOrderStatus(context.Background(), "42", models.StatusPreparing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := calls.get(0)
	if got.Method != http.MethodPut || got.Path != "/orders/42/status" {
		t.Fatalf("unexpected request %s %s", got.Method, got.Path)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(got.Body), &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if body["status"] != "preparing" {
		t.Fatalf("unexpected body %s", got.Body)
	}
}

func TestNonSuccessStatusIsRequestFailed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	err := c.UpdateOrderStatus(context.Background(), "42", models.StatusOutForDelivery)
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.StatusCode != http.StatusInternalServerError || reqErr.Body != "boom" {
		t.Fatalf("unexpected request error: %#v", err)
	}
}

func TestCreateProductRequires201(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
	})

	product := models.NewProduct{Name: "Chai", SKU: "CH-1", Price: decimal.RequireFromString("1.5"), QuantityInStock: 2}
	if err := c.CreateProduct(context.Background(), product); !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("200 must not count as created, got %v", err)
	}

	status.Store(http.StatusCreated)
	if err := c.CreateProduct(context.Background(), product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := calls.get(1)
	if got.Method != http.MethodPost || got.Path != "/users/me/products" {
		t.Fatalf("unexpected request %s %s", got.Method, got.Path)
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(got.Body), &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if body["price"] != 1.5 || body["quantity_in_stock"] != float64(2) || body["sku"] != "CH-1" {
		t.Fatalf("unexpected body %s", got.Body)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, staticToken("tok"))
	_, err := c.GetAnalytics(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestGetAnalytics(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"revenue":1520.75,"orders":31}`))
	})

	stats, err := c.GetAnalytics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Revenue.String() != "1520.75" || stats.Orders != 31 {
		t.Fatalf("unexpected analytics: %+v", stats)
	}
}
