package tables

import (
	"time"
)

type Category struct {
	tableName   struct{}  `bun:"table:categories,alias:c"`
	ID          string    `bun:"id,pk" json:"id"`
	Name        *string   `bun:"name" json:"name"` // unique
	Slug        *string   `bun:"slug" json:"slug"` // derived from name when absent
	Description *string   `bun:"description" json:"description"`
	CreatedAt   time.Time `bun:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bun:"updatedAt" json:"updatedAt,omitzero"`
}
