package tables

import (
	"time"
)

type Admin struct {
	tableName struct{}  `bun:"table:admins,alias:a"`
	ID        string    `bun:"id,pk" json:"id"`
	Email     string    `bun:"email" json:"email"` // unique
	Password  string    `bun:"password" json:"-"`  // bcrypt hash, never serialized
	Name      *string   `bun:"name" json:"name"`
	CreatedAt time.Time `bun:"createdAt" json:"createdAt,omitzero"`
}

// Setting is a key-value row seeded from configuration on first boot
// with insert-if-absent semantics.
type Setting struct {
	tableName struct{}  `bun:"table:settings,alias:s"`
	Key       string    `bun:"key,pk" json:"key"`
	Value     *string   `bun:"value" json:"value"`
	UpdatedAt time.Time `bun:"updatedAt" json:"updatedAt,omitzero"`
}
