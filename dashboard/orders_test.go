package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Kariqs/carta-vendor-portal/backend"
	"github.com/Kariqs/carta-vendor-portal/models"
)

type statusUpdate struct {
	OrderID models.ID
	Status  models.OrderStatus
}

type fakeOrderAPI struct {
	mu        sync.Mutex
	orders    []models.Order
	listErr   error
	updateErr error
	updates   []statusUpdate
}

func (f *fakeOrderAPI) ListOrders(ctx context.Context, vendorID models.ID) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderAPI) UpdateOrderStatus(ctx context.Context, orderID models.ID, status models.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, statusUpdate{OrderID: orderID, Status: status})
	return f.updateErr
}

func boardWith(t *testing.T, api *fakeOrderAPI) *OrderBoard {
	t.Helper()
	b := NewOrderBoard(api)
	b.Refresh(context.Background(), "vendor-1")
	return b
}

func statusOf(t *testing.T, b *OrderBoard, id models.ID) models.OrderStatus {
	t.Helper()
	for _, o := range b.Orders() {
		if o.ID == id {
			return o.Status
		}
	}
	t.Fatalf("order %s not on board", id)
	return ""
}

func TestAcceptPendingOrder(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{{ID: "42", Status: models.StatusPending}}}
	b := boardWith(t, api)

	view, err := b.Perform(context.Background(), "42", models.ActionAccept)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != models.StatusPreparing || statusOf(t, b, "42") != models.StatusPreparing {
		t.Fatalf("expected preparing, got %s", view.Status)
	}
	if len(api.updates) != 1 || api.updates[0] != (statusUpdate{"42", models.StatusPreparing}) {
		t.Fatalf("unexpected updates: %+v", api.updates)
	}
	if len(view.Actions) != 1 || view.Actions[0].Name != models.ActionReady {
		t.Fatalf("expected ready action after accept, got %+v", view.Actions)
	}
}

func TestDispatchFailureKeepsStatus(t *testing.T) {
	api := &fakeOrderAPI{
		orders:    []models.Order{{ID: "42", Status: models.StatusReadyForPickup}},
		updateErr: &backend.RequestError{Method: "PUT", Path: "/orders/42/status", StatusCode: 500},
	}
	b := boardWith(t, api)

	view, err := b.Perform(context.Background(), "42", models.ActionDispatch)
	if !errors.Is(err, backend.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if view.Status != models.StatusReadyForPickup || statusOf(t, b, "42") != models.StatusReadyForPickup {
		t.Fatalf("status must stay ready_for_pickup, got %s", statusOf(t, b, "42"))
	}
	if len(view.Actions) != 2 {
		t.Fatalf("both ready_for_pickup actions must still be offered")
	}
}

func TestTransportFailureKeepsStatus(t *testing.T) {
	api := &fakeOrderAPI{
		orders:    []models.Order{{ID: "7", Status: models.StatusPreparing}},
		updateErr: backend.ErrTransport,
	}
	b := boardWith(t, api)

	if _, err := b.RequestTransition(context.Background(), "7", models.StatusReadyForPickup); !errors.Is(err, backend.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if statusOf(t, b, "7") != models.StatusPreparing {
		t.Fatalf("status changed after failure")
	}
}

func TestIllegalTransitionsNeverReachBackend(t *testing.T) {
	statuses := []models.OrderStatus{
		models.StatusPending,
		models.StatusPreparing,
		models.StatusReadyForPickup,
		models.StatusOutForDelivery,
		models.StatusDelivered,
		"cancelled",
	}
	for _, from := range statuses {
		for _, to := range statuses {
			api := &fakeOrderAPI{orders: []models.Order{{ID: "1", Status: from}}}
			b := boardWith(t, api)

			_, err := b.RequestTransition(context.Background(), "1", to)
			if models.CanTransition(from, to) {
				if err != nil {
					t.Fatalf("%s -> %s: unexpected error %v", from, to, err)
				}
				continue
			}
			if !errors.Is(err, models.ErrIllegalTransition) {
				t.Fatalf("%s -> %s: expected ErrIllegalTransition, got %v", from, to, err)
			}
			if len(api.updates) != 0 {
				t.Fatalf("%s -> %s: request was sent", from, to)
			}
			if statusOf(t, b, "1") != from {
				t.Fatalf("%s -> %s: status changed", from, to)
			}
		}
	}
}

func TestSuccessfulTransitionOnlyTouchesTarget(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{
		{ID: "1", Status: models.StatusPending},
		{ID: "2", Status: models.StatusReadyForPickup},
		{ID: "3", Status: models.StatusReadyForPickup},
	}}
	b := boardWith(t, api)

	if _, err := b.Perform(context.Background(), "2", models.ActionSimulateDelivered); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[models.ID]models.OrderStatus{
		"1": models.StatusPending,
		"2": models.StatusDelivered,
		"3": models.StatusReadyForPickup,
	}
	for id, status := range want {
		if got := statusOf(t, b, id); got != status {
			t.Fatalf("order %s: expected %s, got %s", id, status, got)
		}
	}
	for _, o := range b.Orders() {
		if o.ID == "2" && len(o.Actions) != 0 {
			t.Fatalf("delivered orders are display-only")
		}
	}
}

func TestUnknownOrder(t *testing.T) {
	api := &fakeOrderAPI{}
	b := boardWith(t, api)
	if _, err := b.RequestTransition(context.Background(), "99", models.StatusPreparing); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := b.Perform(context.Background(), "99", models.ActionAccept); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if len(api.updates) != 0 {
		t.Fatalf("no request expected")
	}
}

func TestUnavailableActionIsIllegal(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{{ID: "5", Status: models.StatusPending}}}
	b := boardWith(t, api)
	if _, err := b.Perform(context.Background(), "5", models.ActionDispatch); !errors.Is(err, models.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if len(api.updates) != 0 {
		t.Fatalf("no request expected")
	}
}

func TestRefreshFailureYieldsEmptyBoard(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{{ID: "1", Status: models.StatusPending}}}
	b := boardWith(t, api)
	if len(b.Orders()) != 1 {
		t.Fatalf("expected one order")
	}

	api.listErr = backend.ErrTransport
	views := b.Refresh(context.Background(), "vendor-1")
	if views == nil || len(views) != 0 || len(b.Orders()) != 0 {
		t.Fatalf("expected an empty board after failed refresh, got %+v", views)
	}
}

func TestViewsOfferExactlyTableActions(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{
		{ID: "1", Status: models.StatusPending},
		{ID: "2", Status: models.StatusPreparing},
		{ID: "3", Status: models.StatusReadyForPickup},
		{ID: "4", Status: models.StatusOutForDelivery},
		{ID: "5", Status: "refunded"},
	}}
	b := boardWith(t, api)

	counts := map[models.ID]int{"1": 1, "2": 1, "3": 2, "4": 0, "5": 0}
	for _, v := range b.Orders() {
		if len(v.Actions) != counts[v.ID] {
			t.Fatalf("order %s: expected %d actions, got %d", v.ID, counts[v.ID], len(v.Actions))
		}
		for _, a := range v.Actions {
			if !models.CanTransition(v.Status, a.Target) {
				t.Fatalf("order %s offers illegal action %+v", v.ID, a)
			}
		}
	}
}

func TestOrderTitle(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{{ID: "42", Status: models.StatusPending}}}
	b := boardWith(t, api)
	if got := b.Orders()[0].Title; got != "Order #42 - PENDING - $0" {
		t.Fatalf("unexpected title %q", got)
	}
}
