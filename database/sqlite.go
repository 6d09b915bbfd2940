package database

import (
	"context"
	"database/sql"
	"fmt"
	"harborline_server/structs"
	"path/filepath"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// DB wraps the bun database handle over embedded SQLite with additional
// functionality. It is constructed once in main (or per test), injected
// into every service, and closed on shutdown; there is no package-level
// instance.
type DB struct {
	*bun.DB
	cfg *structs.DatabaseConfig
}

// Open opens the SQLite file at cfg.Path and verifies the connection.
// InitSchema must complete before any repository operation runs.
func Open(cfg *structs.DatabaseConfig) (*DB, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("database path is required")
	}

	busyMillis := cfg.BusyTimeout.Milliseconds()
	if busyMillis <= 0 {
		busyMillis = 5000
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		filepath.Clean(cfg.Path), busyMillis)

	sqlDB, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// A single writer keeps lock contention out of the driver; SQLite
	// serializes writes anyway.
	sqlDB.SetMaxOpenConns(1)

	db := bun.NewDB(sqlDB, sqlitedialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, cfg: cfg}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Health checks the database connection health
func (db *DB) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

func (db *DB) readTimeout() time.Duration {
	if db.cfg == nil {
		return 0
	}
	return db.cfg.ReadTimeout
}

func (db *DB) writeTimeout() time.Duration {
	if db.cfg == nil {
		return 0
	}
	return db.cfg.WriteTimeout
}
