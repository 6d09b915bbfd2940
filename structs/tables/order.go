package tables

import (
	"time"
)

// Order mirrors the orders table. The items column is an opaque JSON
// payload stored as TEXT; it is parsed only when a row is read and the
// structured value travels in the non-persisted Items field.
type Order struct {
	tableName       struct{}  `bun:"table:orders,alias:o"`
	ID              string    `bun:"id,pk" json:"id"`
	CustomerName    *string   `bun:"customerName" json:"customerName"`
	CustomerEmail   *string   `bun:"customerEmail" json:"customerEmail"`
	CustomerPhone   *string   `bun:"customerPhone" json:"customerPhone"`
	RawItems        string    `bun:"items" json:"-"`
	Items           any       `bun:"-" json:"items"`
	TotalAmount     *float64  `bun:"totalAmount" json:"totalAmount"`
	Status          *string   `bun:"status" json:"status"`
	ShippingAddress *string   `bun:"shippingAddress" json:"shippingAddress"`
	CreatedAt       time.Time `bun:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt       time.Time `bun:"updatedAt" json:"updatedAt,omitzero"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
