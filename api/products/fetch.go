package products

import (
	"harborline_server/handling"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := prm.productService.GetAllProducts(r.Context())
	if err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Product not found", "Product already exists", "Failed to fetch products")
		return
	}
	handling.JSON(w, http.StatusOK, products)
}

func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := prm.productService.GetProductByID(r.Context(), id)
	if err != nil {
		handling.HandleServiceError(w, prm.logger, err,
			"Product not found", "Product already exists", "Failed to fetch product")
		return
	}
	handling.JSON(w, http.StatusOK, product)
}
