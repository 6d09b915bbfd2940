package services

import (
	"context"
	"harborline_server/database"
	"harborline_server/lib"
	"harborline_server/structs"
	"harborline_server/structs/tables"
	"regexp"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

var slugWhitespace = regexp.MustCompile(`\s+`)

type CategoryService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCategoryService(logger *gecho.Logger, db *database.DB) *CategoryService {
	return &CategoryService{
		logger: logger,
		db:     db,
	}
}

// CreateCategory inserts a new category. The name is unique at the
// store level; a duplicate surfaces as ErrConflict and writes nothing.
func (cs *CategoryService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*tables.Category, error) {
	now := time.Now().UTC()
	slug := computeSlug(req.Name, req.Slug)

	category := &tables.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        &slug,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := database.Query[tables.Category](cs.db).Insert(ctx, category); err != nil {
		mapped := lib.MapSqliteError(err)
		if lib.IsUniqueViolation(mapped) {
			cs.logger.Warn("Duplicate category name", gecho.Field("name", req.Name))
		} else {
			cs.logger.Error("Failed to insert category", gecho.Field("error", err))
		}
		return nil, mapped
	}

	return category, nil
}

func (cs *CategoryService) GetAllCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		OrderBy("createdAt", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	return categories, nil
}

func (cs *CategoryService) GetCategoryByID(ctx context.Context, id string) (*tables.Category, error) {
	category, err := database.Query[tables.Category](cs.db).
		Where("id", id).
		First(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}
	return category, nil
}

// UpdateCategory overwrites name, slug and description. Full overwrite,
// no existence check, last writer wins.
func (cs *CategoryService) UpdateCategory(ctx context.Context, id string, req *structs.CategoryRequest) (*tables.Category, error) {
	now := time.Now().UTC()
	slug := computeSlug(req.Name, req.Slug)

	columns := map[string]any{
		"name":        req.Name,
		"slug":        slug,
		"description": req.Description,
		"updatedAt":   now,
	}

	if _, err := database.Query[tables.Category](cs.db).Where("id", id).Update(ctx, columns); err != nil {
		cs.logger.Error("Failed to update category", gecho.Field("error", err), gecho.Field("id", id))
		return nil, lib.MapSqliteError(err)
	}

	return &tables.Category{
		ID:          id,
		Name:        req.Name,
		Slug:        &slug,
		Description: req.Description,
	}, nil
}

func (cs *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := database.Query[tables.Category](cs.db).Where("id", id).Delete(ctx); err != nil {
		cs.logger.Error("Failed to delete category", gecho.Field("error", err), gecho.Field("id", id))
		return lib.MapSqliteError(err)
	}
	return nil
}

// computeSlug derives the slug from the name (lowercase, whitespace
// runs collapsed to hyphens) unless an explicit non-empty slug was
// supplied.
func computeSlug(name *string, slug *string) string {
	if slug != nil && *slug != "" {
		return *slug
	}
	if name == nil {
		return ""
	}
	return slugWhitespace.ReplaceAllString(strings.ToLower(*name), "-")
}
