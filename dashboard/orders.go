// Package dashboard holds the vendor-facing state behind each dashboard tab.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Kariqs/carta-vendor-portal/models"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderAPI is the backend surface used by the order board.
type OrderAPI interface {
	ListOrders(ctx context.Context, vendorID models.ID) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID models.ID, status models.OrderStatus) error
}

// OrderView is one row of the incoming orders tab.
type OrderView struct {
	ID               models.ID          `json:"id"`
	Title            string             `json:"title"`
	Status           models.OrderStatus `json:"status"`
	TotalAmount      decimal.Decimal    `json:"total_amount"`
	DeliveryLocation string             `json:"delivery_location"`
	CreatedAt        string             `json:"created_at"`
	Actions          []models.Action    `json:"actions"`
}

// OrderBoard keeps the vendor's order snapshot and applies lifecycle
// transitions to it. Views are built from the snapshot only.
type OrderBoard struct {
	api OrderAPI

	mu     sync.Mutex
	orders []models.Order
}

func NewOrderBoard(api OrderAPI) *OrderBoard {
	return &OrderBoard{api: api}
}

// Refresh replaces the snapshot with the vendor's active orders. A failed
// fetch leaves an empty board.
func (b *OrderBoard) Refresh(ctx context.Context, vendorID models.ID) []OrderView {
	b.mu.Lock()
	defer b.mu.Unlock()

	orders, err := b.api.ListOrders(ctx, vendorID)
	if err != nil {
		log.Printf("Failed to fetch orders for vendor %s: %v", vendorID, err)
		orders = nil
	}
	b.orders = orders
	return b.viewsLocked()
}

func (b *OrderBoard) Orders() []OrderView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.viewsLocked()
}

// Reset drops the snapshot, for use on logout.
func (b *OrderBoard) Reset() {
	b.mu.Lock()
	b.orders = nil
	b.mu.Unlock()
}

// RequestTransition asks the backend to move an order to target. Illegal
// transitions are rejected before any request is made, and the snapshot only
// changes after the backend accepts the update.
func (b *OrderBoard) RequestTransition(ctx context.Context, orderID models.ID, target models.OrderStatus) (OrderView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexLocked(orderID)
	if i < 0 {
		return OrderView{}, fmt.Errorf("order #%s: %w", orderID, ErrOrderNotFound)
	}
	if err := models.ValidateTransition(b.orders[i].Status, target); err != nil {
		return toView(b.orders[i]), fmt.Errorf("order #%s: %w", orderID, err)
	}

	if err := b.api.UpdateOrderStatus(ctx, orderID, target); err != nil {
		log.Printf("Failed to update order #%s to %s: %v", orderID, target, err)
		return toView(b.orders[i]), err
	}

	b.orders[i].Status = target
	log.Printf("Order #%s status updated to %s", orderID, target)
	return toView(b.orders[i]), nil
}

// Perform runs the named action offered for the order's current status.
func (b *OrderBoard) Perform(ctx context.Context, orderID models.ID, action string) (OrderView, error) {
	b.mu.Lock()
	i := b.indexLocked(orderID)
	if i < 0 {
		b.mu.Unlock()
		return OrderView{}, fmt.Errorf("order #%s: %w", orderID, ErrOrderNotFound)
	}
	current := b.orders[i]
	b.mu.Unlock()

	a, err := models.ActionFor(current.Status, action)
	if err != nil {
		return toView(current), fmt.Errorf("order #%s: %w", orderID, err)
	}
	return b.RequestTransition(ctx, orderID, a.Target)
}

func (b *OrderBoard) indexLocked(id models.ID) int {
	for i := range b.orders {
		if b.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *OrderBoard) viewsLocked() []OrderView {
	views := make([]OrderView, 0, len(b.orders))
	for _, o := range b.orders {
		views = append(views, toView(o))
	}
	return views
}

func toView(o models.Order) OrderView {
	return OrderView{
		ID:               o.ID,
		Title:            fmt.Sprintf("Order #%s - %s - $%s", o.ID, strings.ToUpper(string(o.Status)), o.TotalAmount.String()),
		Status:           o.Status,
		TotalAmount:      o.TotalAmount,
		DeliveryLocation: o.DeliveryLocation,
		CreatedAt:        o.CreatedAt,
		Actions:          o.Status.Actions(),
	}
}
