package tables

import (
	"time"
)

// Product mirrors the products table. Every column a PUT can overwrite is a
// pointer: full-row updates write NULL for omitted fields, so reads must
// tolerate NULL in any of them.
type Product struct {
	tableName         struct{}  `bun:"table:products,alias:p"`
	ID                string    `bun:"id,pk" json:"id"`
	Name              *string   `bun:"name" json:"name"`
	Description       *string   `bun:"description" json:"description"`
	Price             *float64  `bun:"price" json:"price"`
	CategoryID        *string   `bun:"categoryId" json:"categoryId"` // soft reference, never enforced
	Image             *string   `bun:"image" json:"image"`
	Stock             *int64    `bun:"stock" json:"stock"`
	IsFeatured        bool      `bun:"isFeatured" json:"isFeatured"` // stored as 0/1
	Status            *string   `bun:"status" json:"status"`
	EstimatedDelivery *string   `bun:"estimatedDelivery" json:"estimatedDelivery"`
	CreatedAt         time.Time `bun:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt         time.Time `bun:"updatedAt" json:"updatedAt,omitzero"`
}

type ProductStatus string

const (
	ProductStatusInStock      ProductStatus = "in_stock"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusPreorder     ProductStatus = "preorder"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// IsValid reports whether the value is one of the recognized variants.
// Storage stays plain TEXT, so rows written by earlier versions with
// arbitrary strings still read back untouched.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusInStock, ProductStatusOutOfStock, ProductStatusPreorder, ProductStatusDiscontinued:
		return true
	}
	return false
}
