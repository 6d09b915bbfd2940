package database

import (
	"context"
	"fmt"
	"harborline_server/lib"
	"harborline_server/structs"
	"strings"

	"github.com/google/uuid"
)

// The schema store. Tables are created with their latest shape; columns
// that arrived after the first release are additionally issued as
// guarded ALTER statements so a database created by an older version is
// brought forward without touching its data. There is no version table
// and no down path: evolution is forward-only and additive, and every
// added column carries a DEFAULT (or is nullable) so existing rows stay
// well-formed.

var createTables = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price REAL NOT NULL,
		categoryId TEXT,
		image TEXT,
		stock INTEGER DEFAULT 0,
		isFeatured INTEGER DEFAULT 0,
		status TEXT DEFAULT 'in_stock',
		estimatedDelivery TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		slug TEXT,
		description TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customerName TEXT NOT NULL,
		customerEmail TEXT NOT NULL,
		customerPhone TEXT,
		items TEXT NOT NULL,
		totalAmount REAL NOT NULL,
		status TEXT DEFAULT 'pending',
		shippingAddress TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	// orderId is a soft reference on purpose: no FK clause, deletes do
	// not cascade and orphaned packages are acceptable.
	`CREATE TABLE IF NOT EXISTS packages (
		id TEXT PRIMARY KEY,
		trackingId TEXT NOT NULL UNIQUE,
		orderId TEXT,
		status TEXT DEFAULT 'pending',
		shippingRoute TEXT DEFAULT 'sea',
		origin TEXT,
		destination TEXT,
		currentLocation TEXT,
		estimatedDelivery DATETIME,
		weight REAL,
		notes TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		name TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT,
		updatedAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Columns added after the first release. Failures meaning "the column is
// already there" are swallowed; anything else surfaces.
var addColumns = []string{
	`ALTER TABLE products ADD COLUMN isFeatured INTEGER DEFAULT 0`,
	`ALTER TABLE products ADD COLUMN status TEXT DEFAULT 'in_stock'`,
	`ALTER TABLE products ADD COLUMN estimatedDelivery TEXT`,
	`ALTER TABLE categories ADD COLUMN slug TEXT`,
	`ALTER TABLE packages ADD COLUMN shippingRoute TEXT DEFAULT 'sea'`,
}

// InitSchema brings the database up to the latest shape and seeds
// defaults. It is idempotent: re-running against an already-migrated
// store is a no-op. Callers must let it complete before serving any
// request.
func (db *DB) InitSchema(ctx context.Context, cfg *structs.Config) error {
	for _, ddl := range createTables {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, ddl := range addColumns {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			if isAlreadyExistsError(err) {
				continue
			}
			return fmt.Errorf("failed to add column: %w", err)
		}
	}

	if err := db.seedSettings(ctx, cfg.Settings); err != nil {
		return err
	}

	return db.seedAdmin(ctx, cfg.Admin)
}

// seedSettings writes the configured defaults with insert-if-absent
// semantics. A value an operator already set is never overwritten.
func (db *DB) seedSettings(ctx context.Context, settings *structs.SettingsConfig) error {
	if settings == nil {
		return nil
	}

	defaults := map[string]string{
		"store_name":     settings.StoreName,
		"support_email":  settings.SupportEmail,
		"currency":       settings.Currency,
		"default_origin": settings.DefaultOrigin,
	}

	for key, value := range defaults {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, value)
		if err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}

	return nil
}

// seedAdmin bootstraps the single admin account from configuration, so a
// fresh deployment has a way to log in. Insert-if-absent: an existing
// admin row for the email always wins.
func (db *DB) seedAdmin(ctx context.Context, admin *structs.AdminConfig) error {
	if admin == nil || admin.Email == "" || admin.Password == "" {
		return nil
	}

	hash, err := lib.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT OR IGNORE INTO admins (id, email, password, name) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), admin.Email, hash, admin.Name)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	return nil
}

// isAlreadyExistsError reports whether this error indicates idempotent
// DDL success.
func isAlreadyExistsError(err error) bool {
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}
