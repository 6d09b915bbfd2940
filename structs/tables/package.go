package tables

import (
	"time"
)

// Package mirrors the packages table (shipment tracking). orderId is a
// soft reference: deleting an order leaves its packages behind with a
// dangling orderId on purpose.
type Package struct {
	tableName         struct{}  `bun:"table:packages,alias:pk"`
	ID                string    `bun:"id,pk" json:"id"`
	TrackingID        *string   `bun:"trackingId" json:"trackingId"` // unique
	OrderID           *string   `bun:"orderId" json:"orderId"`
	Status            *string   `bun:"status" json:"status"`
	ShippingRoute     *string   `bun:"shippingRoute" json:"shippingRoute"`
	Origin            *string   `bun:"origin" json:"origin"`
	Destination       *string   `bun:"destination" json:"destination"`
	CurrentLocation   *string   `bun:"currentLocation" json:"currentLocation"`
	EstimatedDelivery *string   `bun:"estimatedDelivery" json:"estimatedDelivery"`
	Weight            *float64  `bun:"weight" json:"weight"`
	Notes             *string   `bun:"notes" json:"notes"`
	CreatedAt         time.Time `bun:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt         time.Time `bun:"updatedAt" json:"updatedAt,omitzero"`
}

type PackageStatus string

const (
	PackageStatusPending        PackageStatus = "pending"
	PackageStatusInTransit      PackageStatus = "in_transit"
	PackageStatusCustomsHold    PackageStatus = "customs_hold"
	PackageStatusOutForDelivery PackageStatus = "out_for_delivery"
	PackageStatusDelivered      PackageStatus = "delivered"
	PackageStatusReturned       PackageStatus = "returned"
)

func (s PackageStatus) IsValid() bool {
	switch s {
	case PackageStatusPending, PackageStatusInTransit, PackageStatusCustomsHold,
		PackageStatusOutForDelivery, PackageStatusDelivered, PackageStatusReturned:
		return true
	}
	return false
}

type ShippingRoute string

const (
	ShippingRouteSea  ShippingRoute = "sea"
	ShippingRouteAir  ShippingRoute = "air"
	ShippingRouteLand ShippingRoute = "land"
)

func (r ShippingRoute) IsValid() bool {
	switch r {
	case ShippingRouteSea, ShippingRouteAir, ShippingRouteLand:
		return true
	}
	return false
}
