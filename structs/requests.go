package structs

import "encoding/json"

// Request bodies. Fields are pointers on purpose: updates overwrite the
// full column set and an omitted field must be written as NULL, so the
// decoder has to distinguish "absent" from "zero".

type ProductRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	CategoryID        *string  `json:"categoryId"`
	Image             *string  `json:"image"`
	Stock             *int64   `json:"stock"`
	IsFeatured        bool     `json:"isFeatured"`
	Status            *string  `json:"status"`
	EstimatedDelivery *string  `json:"estimatedDelivery"`
}

type CategoryRequest struct {
	Name        *string `json:"name" validate:"required"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

type OrderRequest struct {
	CustomerName    *string         `json:"customerName"`
	CustomerEmail   *string         `json:"customerEmail"`
	CustomerPhone   *string         `json:"customerPhone"`
	Items           json.RawMessage `json:"items"`
	TotalAmount     *float64        `json:"totalAmount"`
	ShippingAddress *string         `json:"shippingAddress"`
}

type PackageCreateRequest struct {
	TrackingID        *string  `json:"trackingId"`
	OrderID           *string  `json:"orderId"`
	Status            *string  `json:"status"`
	ShippingRoute     *string  `json:"shippingRoute"`
	Origin            *string  `json:"origin"`
	Destination       *string  `json:"destination"`
	CurrentLocation   *string  `json:"currentLocation"`
	EstimatedDelivery *string  `json:"estimatedDelivery"`
	Weight            *float64 `json:"weight"`
	Notes             *string  `json:"notes"`
}

// PackageUpdateRequest carries only the columns a package PUT may touch.
// Origin, destination, weight and the tracking id are immutable after
// creation.
type PackageUpdateRequest struct {
	Status            *string `json:"status"`
	ShippingRoute     *string `json:"shippingRoute"`
	CurrentLocation   *string `json:"currentLocation"`
	EstimatedDelivery *string `json:"estimatedDelivery"`
	Notes             *string `json:"notes"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
