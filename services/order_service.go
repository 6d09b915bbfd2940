package services

import (
	"context"
	"encoding/json"
	"harborline_server/database"
	"harborline_server/lib"
	"harborline_server/structs"
	"harborline_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type OrderService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewOrderService(logger *gecho.Logger, db *database.DB) *OrderService {
	return &OrderService{
		logger: logger,
		db:     db,
	}
}

// CreateOrder inserts a new order. The items payload is stored as the
// JSON text it arrived as; a missing items field is stored as an empty
// array so reads never have to deal with NULL.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest) (*tables.Order, error) {
	now := time.Now().UTC()

	rawItems := "[]"
	if len(req.Items) > 0 {
		rawItems = string(req.Items)
	}
	status := string(tables.OrderStatusPending)

	order := &tables.Order{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		RawItems:        rawItems,
		TotalAmount:     req.TotalAmount,
		Status:          &status,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := database.Query[tables.Order](os.db).Insert(ctx, order); err != nil {
		os.logger.Error("Failed to insert order", gecho.Field("error", err))
		return nil, lib.MapSqliteError(err)
	}

	os.parseItems(order)
	return order, nil
}

func (os *OrderService) GetAllOrders(ctx context.Context) ([]tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		OrderBy("createdAt", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	for i := range orders {
		os.parseItems(&orders[i])
	}
	return orders, nil
}

func (os *OrderService) GetOrderByID(ctx context.Context, id string) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("id", id).
		First(ctx)
	if err != nil {
		return nil, lib.MapSqliteError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	os.parseItems(order)
	return order, nil
}

func (os *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if _, err := database.Query[tables.Order](os.db).Where("id", id).Delete(ctx); err != nil {
		os.logger.Error("Failed to delete order", gecho.Field("error", err), gecho.Field("id", id))
		return lib.MapSqliteError(err)
	}
	return nil
}

// parseItems inflates the stored items text into the structured field
// used for responses. Unparsable text degrades to an empty list rather
// than failing the read.
func (os *OrderService) parseItems(order *tables.Order) {
	var items any
	if err := json.Unmarshal([]byte(order.RawItems), &items); err != nil {
		os.logger.Warn("Order items column holds invalid JSON",
			gecho.Field("id", order.ID),
			gecho.Field("error", err),
		)
		order.Items = []any{}
		return
	}
	order.Items = items
}
