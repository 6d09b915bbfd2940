package services

import (
	"context"
	"harborline_server/database"
	"harborline_server/lib"
	"harborline_server/structs"
	"harborline_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ProductService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewProductService(logger *gecho.Logger, db *database.DB) *ProductService {
	return &ProductService{
		logger: logger,
		db:     db,
	}
}

// CreateProduct inserts a new product and echoes the constructed entity
// back without re-reading the row.
func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*tables.Product, error) {
	now := time.Now().UTC()

	product := &tables.Product{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		CategoryID:        req.CategoryID,
		Image:             req.Image,
		Stock:             defaultInt(req.Stock, 0),
		IsFeatured:        req.IsFeatured,
		Status:            defaultString(req.Status, string(tables.ProductStatusInStock)),
		EstimatedDelivery: req.EstimatedDelivery,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := database.Query[tables.Product](ps.db).Insert(ctx, product); err != nil {
		ps.logger.Error("Failed to insert product", gecho.Field("error", err))
		return nil, lib.MapSqliteError(err)
	}

	return product, nil
}

// GetAllProducts returns every product, newest first.
func (ps *ProductService) GetAllProducts(ctx context.Context) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		OrderBy("createdAt", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	return products, nil
}

func (ps *ProductService) GetProductByID(ctx context.Context, id string) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		First(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	return product, nil
}

// UpdateProduct overwrites every mutable column from the request body.
// An omitted field is written as NULL: callers resend the whole entity
// or lose data, and the last writer wins. No existence check is made.
func (ps *ProductService) UpdateProduct(ctx context.Context, id string, req *structs.ProductRequest) (*tables.Product, error) {
	now := time.Now().UTC()

	columns := map[string]any{
		"name":              req.Name,
		"description":       req.Description,
		"price":             req.Price,
		"categoryId":        req.CategoryID,
		"image":             req.Image,
		"stock":             req.Stock,
		"isFeatured":        req.IsFeatured,
		"status":            req.Status,
		"estimatedDelivery": req.EstimatedDelivery,
		"updatedAt":         now,
	}

	if _, err := database.Query[tables.Product](ps.db).Where("id", id).Update(ctx, columns); err != nil {
		ps.logger.Error("Failed to update product", gecho.Field("error", err), gecho.Field("id", id))
		return nil, lib.MapSqliteError(err)
	}

	// The echo carries only the overwritten columns; timestamps are
	// store-side and never returned from an update.
	return &tables.Product{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		CategoryID:        req.CategoryID,
		Image:             req.Image,
		Stock:             req.Stock,
		IsFeatured:        req.IsFeatured,
		Status:            req.Status,
		EstimatedDelivery: req.EstimatedDelivery,
	}, nil
}

// DeleteProduct removes the row if it exists. Deleting a missing id
// still reports success; no rows-matched check is made.
func (ps *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := database.Query[tables.Product](ps.db).Where("id", id).Delete(ctx); err != nil {
		ps.logger.Error("Failed to delete product", gecho.Field("error", err), gecho.Field("id", id))
		return lib.MapSqliteError(err)
	}
	return nil
}

func defaultInt(value *int64, fallback int64) *int64 {
	if value != nil {
		return value
	}
	return &fallback
}

func defaultString(value *string, fallback string) *string {
	if value != nil {
		return value
	}
	return &fallback
}
