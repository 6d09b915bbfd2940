package products

import (
	"harborline_server/handling"
	"harborline_server/lib"
	"harborline_server/structs"
	"harborline_server/structs/tables"
	"net/http"
)

func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		handling.HandleRequestError(w, err)
		return
	}

	if req.Status != nil && *req.Status != "" && !tables.ProductStatus(*req.Status).IsValid() {
		handling.Error(w, http.StatusBadRequest, "Invalid product status")
		return
	}

	product, err := prm.productService.CreateProduct(r.Context(), req)
	if err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Product not found", "Product already exists", "Failed to create product")
		return
	}
	handling.JSON(w, http.StatusCreated, product)
}
