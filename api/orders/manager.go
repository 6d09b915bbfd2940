package orders

import (
	"harborline_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
	}
}

// Orders are append-only over HTTP: they are placed and inspected but
// never edited or removed through the API.
func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/orders", orm.CreateOrder)
	r.Get("/orders", orm.FetchAllOrders)
	r.Get("/orders/{id}", orm.FetchOrderByID)
}
