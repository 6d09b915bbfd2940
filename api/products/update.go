package products

import (
	"harborline_server/handling"
	"harborline_server/lib"
	"harborline_server/structs"
	"harborline_server/structs/tables"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// UpdateProduct overwrites every mutable column. Omitted fields become
// NULL; callers resend the full entity or accept the nulling.
func (prm *ProductRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		handling.HandleRequestError(w, err)
		return
	}

	if req.Status != nil && *req.Status != "" && !tables.ProductStatus(*req.Status).IsValid() {
		handling.Error(w, http.StatusBadRequest, "Invalid product status")
		return
	}

	product, err := prm.productService.UpdateProduct(r.Context(), id, req)
	if err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Product not found", "Product already exists", "Failed to update product")
		return
	}
	handling.JSON(w, http.StatusOK, product)
}
