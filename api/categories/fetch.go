package categories

import (
	"harborline_server/handling"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (crm *CategoryRoutesManager) FetchAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.categoryService.GetAllCategories(r.Context())
	if err != nil {
		handling.HandleServiceError(w, crm.logger, err,
			"Category not found", "Category already exists", "Failed to fetch categories")
		return
	}
	handling.JSON(w, http.StatusOK, categories)
}

func (crm *CategoryRoutesManager) FetchCategoryByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	category, err := crm.categoryService.GetCategoryByID(r.Context(), id)
	if err != nil {
		handling.HandleServiceError(w, crm.logger, err,
			"Category not found", "Category already exists", "Failed to fetch category")
		return
	}
	handling.JSON(w, http.StatusOK, category)
}
