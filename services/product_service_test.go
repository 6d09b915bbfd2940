package services

import (
	"context"
	"errors"
	"harborline_server/lib"
	"harborline_server/structs"
	"testing"
	"time"
)

func TestCreateProductAppliesDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sm := newTestManager(t)

	created, err := sm.ProductService.CreateProduct(ctx, &structs.ProductRequest{
		Name:  str("Brass Cleat"),
		Price: f64(12.5),
	})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	if created.Stock == nil || *created.Stock != 0 {
		t.Fatalf("stock = %v, want 0", created.Stock)
	}
	if created.Status == nil || *created.Status != "in_stock" {
		t.Fatalf("status = %v, want in_stock", created.Status)
	}
	if created.ID == "" {
		t.Fatalf("id not generated")
	}

	got, err := sm.ProductService.GetProductByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProductByID() error = %v", err)
	}
	if got.Name == nil || *got.Name != "Brass Cleat" {
		t.Fatalf("name = %v, want Brass Cleat", got.Name)
	}
}

func TestGetProductByIDNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sm := newTestManager(t)

	_, err := sm.ProductService.GetProductByID(ctx, "missing")
	if !errors.Is(err, lib.ErrNotFound) {
		t.Fatalf("GetProductByID() error = %v, want ErrNotFound", err)
	}
}

// Updates overwrite the full column set: a field omitted from the
// request body is written as NULL, even when the row had a value. This
// pins the last-writer-wins overwrite behavior exactly.
func TestUpdateProductOmittedStockBecomesNull(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sm := newTestManager(t)

	created, err := sm.ProductService.CreateProduct(ctx, &structs.ProductRequest{
		Name:  str("Brass Cleat"),
		Price: f64(12.5),
		Stock: i64(40),
	})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	_, err = sm.ProductService.UpdateProduct(ctx, created.ID, &structs.ProductRequest{
		Name:  str("Brass Cleat"),
		Price: f64(13.0),
		// Stock deliberately omitted.
	})
	if err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}

	got, err := sm.ProductService.GetProductByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProductByID() error = %v", err)
	}
	if got.Stock != nil {
		t.Fatalf("stock after partial update = %v, want NULL", *got.Stock)
	}
	if got.Price == nil || *got.Price != 13.0 {
		t.Fatalf("price = %v, want 13.0", got.Price)
	}
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sm := newTestManager(t)

	created, err := sm.ProductService.CreateProduct(ctx, &structs.ProductRequest{
		Name:  str("Shackle"),
		Price: f64(4.0),
	})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	if err := sm.ProductService.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}

	_, err = sm.ProductService.GetProductByID(ctx, created.ID)
	if !errors.Is(err, lib.ErrNotFound) {
		t.Fatalf("GetProductByID() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting a missing id still succeeds.
	if err := sm.ProductService.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("second DeleteProduct() error = %v", err)
	}
}

func TestGetAllProductsNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sm := newTestManager(t)

	first, err := sm.ProductService.CreateProduct(ctx, &structs.ProductRequest{
		Name:  str("Old Anchor"),
		Price: f64(80),
	})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	second, err := sm.ProductService.CreateProduct(ctx, &structs.ProductRequest{
		Name:  str("New Anchor"),
		Price: f64(90),
	})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	products, err := sm.ProductService.GetAllProducts(ctx)
	if err != nil {
		t.Fatalf("GetAllProducts() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}
	if products[0].ID != second.ID || products[1].ID != first.ID {
		t.Fatalf("ordering = [%s %s], want newest first [%s %s]",
			products[0].ID, products[1].ID, second.ID, first.ID)
	}
}
