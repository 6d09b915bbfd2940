package database

import (
	"context"
	"harborline_server/structs/tables"
	"testing"
	"time"
)

func seedCategory(t *testing.T, db *DB, id, name string) {
	t.Helper()
	now := time.Now().UTC()
	row := &tables.Category{
		ID:        id,
		Name:      &name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := Query[tables.Category](db).Insert(context.Background(), row); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
}

func TestQueryBuilderFirstMissingRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := testConfig(t)
	db := openTestDB(t, cfg)
	if err := db.InitSchema(ctx, cfg); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	got, err := Query[tables.Category](db).Where("id", "missing").First(ctx)
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if got != nil {
		t.Fatalf("First() = %+v, want nil for a missing row", got)
	}
}

func TestQueryBuilderUpdateReportsRowsAffected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := testConfig(t)
	db := openTestDB(t, cfg)
	if err := db.InitSchema(ctx, cfg); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	seedCategory(t, db, "c1", "Deck Hardware")

	rows, err := Query[tables.Category](db).Where("id", "c1").
		Update(ctx, map[string]any{"description": "cleats and chocks"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if rows != 1 {
		t.Fatalf("Update() rows = %d, want 1", rows)
	}

	rows, err = Query[tables.Category](db).Where("id", "missing").
		Update(ctx, map[string]any{"description": "nothing"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if rows != 0 {
		t.Fatalf("Update() rows = %d, want 0", rows)
	}
}

func TestQueryBuilderOrderByAndLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := testConfig(t)
	db := openTestDB(t, cfg)
	if err := db.InitSchema(ctx, cfg); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	seedCategory(t, db, "c1", "Anchors")
	time.Sleep(20 * time.Millisecond)
	seedCategory(t, db, "c2", "Ropes")

	got, err := Query[tables.Category](db).
		OrderBy("createdAt", DESC).
		Limit(1).
		All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("All() returned %d rows, want 1", len(got))
	}
	if got[0].ID != "c2" {
		t.Fatalf("newest row id = %q, want c2", got[0].ID)
	}
}

func TestQueryBuilderDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := testConfig(t)
	db := openTestDB(t, cfg)
	if err := db.InitSchema(ctx, cfg); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	seedCategory(t, db, "c1", "Fenders")

	rows, err := Query[tables.Category](db).Where("id", "c1").Delete(ctx)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if rows != 1 {
		t.Fatalf("Delete() rows = %d, want 1", rows)
	}

	rows, err = Query[tables.Category](db).Where("id", "c1").Delete(ctx)
	if err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if rows != 0 {
		t.Fatalf("second Delete() rows = %d, want 0", rows)
	}
}
