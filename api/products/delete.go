package products

import (
	"harborline_server/handling"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (prm *ProductRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := prm.productService.DeleteProduct(r.Context(), id); err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Product not found", "Product already exists", "Failed to delete product")
		return
	}
	handling.Success(w)
}
