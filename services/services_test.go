package services

import (
	"context"
	"harborline_server/database"
	"harborline_server/structs"
	"path/filepath"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
)

func testConfig(t *testing.T) *structs.Config {
	t.Helper()
	return &structs.Config{
		Database: &structs.DatabaseConfig{
			Path:         filepath.Join(t.TempDir(), "app.db"),
			BusyTimeout:  5 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Admin: &structs.AdminConfig{
			Email:    "admin@example.com",
			Password: "swordfish",
			Name:     "Administrator",
		},
		Settings: &structs.SettingsConfig{
			StoreName:     "Harborline",
			SupportEmail:  "support@harborline.example",
			Currency:      "USD",
			DefaultOrigin: "Rotterdam",
		},
	}
}

// newTestManager builds a service manager over a fresh temp-file store.
func newTestManager(t *testing.T) *ServiceManager {
	t.Helper()

	cfg := testConfig(t)
	db, err := database.Open(cfg.Database)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	if err := db.InitSchema(context.Background(), cfg); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	logger := gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(false),
		gecho.WithLogLevel(gecho.ParseLogLevel("error")),
	))

	return NewServiceManager(logger, cfg, db)
}

func str(s string) *string   { return &s }
func f64(f float64) *float64 { return &f }
func i64(i int64) *int64     { return &i }
