package categories

import (
	"harborline_server/handling"
	"harborline_server/lib"
	"harborline_server/structs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (crm *CategoryRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.HandleRequestError(w, err)
		return
	}

	category, err := crm.categoryService.CreateCategory(r.Context(), req)
	if err != nil {
		handling.HandleServiceError(w, crm.logger, err,
			"Category not found", "Category already exists", "Failed to create category")
		return
	}
	handling.JSON(w, http.StatusCreated, category)
}

// UpdateCategory shares the create request shape: name stays required
// and the slug is rederived when absent.
func (crm *CategoryRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.HandleRequestError(w, err)
		return
	}

	category, err := crm.categoryService.UpdateCategory(r.Context(), id, req)
	if err != nil {
		handling.HandleServiceError(w, crm.logger, err,
			"Category not found", "Category already exists", "Failed to update category")
		return
	}
	handling.JSON(w, http.StatusOK, category)
}

func (crm *CategoryRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := crm.categoryService.DeleteCategory(r.Context(), id); err != nil {
		handling.HandleServiceError(w, crm.logger, err,
			"Category not found", "Category already exists", "Failed to delete category")
		return
	}
	handling.Success(w)
}
