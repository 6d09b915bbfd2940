package orders

import (
	"harborline_server/handling"
	"harborline_server/lib"
	"harborline_server/structs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		handling.HandleRequestError(w, err)
		return
	}

	order, err := orm.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		handling.HandleServiceError(w, orm.logger, err,
			"Order not found", "Order already exists", "Failed to create order")
		return
	}
	handling.JSON(w, http.StatusCreated, order)
}

func (orm *OrderRoutesManager) FetchAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := orm.orderService.GetAllOrders(r.Context())
	if err != nil {
		handling.HandleServiceError(w, orm.logger, err,
			"Order not found", "Order already exists", "Failed to fetch orders")
		return
	}
	handling.JSON(w, http.StatusOK, orders)
}

func (orm *OrderRoutesManager) FetchOrderByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := orm.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		handling.HandleServiceError(w, orm.logger, err,
			"Order not found", "Order already exists", "Failed to fetch order")
		return
	}
	handling.JSON(w, http.StatusOK, order)
}
