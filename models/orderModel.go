package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

var ErrIllegalTransition = errors.New("illegal order status transition")

type Order struct {
	ID               ID              `json:"id"`
	Status           OrderStatus     `json:"status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DeliveryLocation string          `json:"delivery_location"`
	CreatedAt        string          `json:"created_at"`
	VendorID         ID              `json:"vendor_id,omitempty"`
}

type OrderStatusUpdate struct {
	Status OrderStatus `json:"status" binding:"required"`
}
