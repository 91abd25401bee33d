package repositories

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderRepository struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewOrderRepository(logger *gecho.Logger, db *database.DB) *OrderRepository {
	return &OrderRepository{
		logger: logger,
		db:     db,
	}
}

// Create stores the order aggregate in a single transaction. Nothing is written when any insert fails.
func (or *OrderRepository) Create(ctx context.Context, req *structs.CreateOrderRequest) (*tables.Order, error) {
	order := req.NewOrder(time.Now())

	items := order.Items
	customizations := make([]*tables.OrderItemCustomization, 0)
	for _, item := range items {
		customizations = append(customizations, item.Customizations...)
	}

	err := database.Transaction(ctx, or.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := database.Query[tables.Order](tx).Insert(ctx, order); err != nil {
			return err
		}
		if err := database.Query[tables.OrderItem](tx).InsertMany(ctx, items); err != nil {
			return err
		}
		return database.Query[tables.OrderItemCustomization](tx).InsertMany(ctx, customizations)
	})
	if err != nil {
		or.logger.Error("Failed to persist order",
			gecho.Field("error", err),
			gecho.Field("items", len(items)),
			gecho.Field("customizations", len(customizations)),
		)
		return nil, lib.MapPgError(err)
	}

	or.logger.Debug("Order persisted", gecho.Field("order_id", order.Id), gecho.Field("items", len(items)))
	return order, nil
}

func (or *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	order, err := database.FindByID[tables.Order](ctx, or.db, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, nil
	}

	if err := loadOrderItems(ctx, or.db, []*tables.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (or *OrderRepository) FindAllPaginated(ctx context.Context, filters structs.OrderListFilters, page, perPage int) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](or.db)

	if filters.Status != nil {
		query = query.Where("status", *filters.Status)
	}
	if filters.ClientId != nil {
		query = query.Where("client_id", *filters.ClientId)
	}

	result, err := database.Paginate(ctx, query.OrderBy("created_at", database.DESC), page, perPage)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	orders := make([]*tables.Order, len(result.Items))
	for i := range result.Items {
		orders[i] = &result.Items[i]
	}
	if err := loadOrderItems(ctx, or.db, orders); err != nil {
		return nil, err
	}

	return result, nil
}

func (or *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error) {
	affected, err := database.Query[tables.Order](or.db).
		Where("id", id).
		Update(ctx, map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.NotFound("Order not found")
	}

	return or.FindByID(ctx, id)
}

// Delete removes the order together with its items and their customizations
func (or *OrderRepository) Delete(ctx context.Context, order *tables.Order) error {
	err := database.Transaction(ctx, or.db, func(ctx context.Context, tx bun.Tx) error {
		items, err := database.Query[tables.OrderItem](tx).Where("order_id", order.Id).All(ctx)
		if err != nil {
			return err
		}

		if len(items) > 0 {
			itemIDs := make([]uuid.UUID, len(items))
			for i := range items {
				itemIDs[i] = items[i].Id
			}
			if _, err := database.Query[tables.OrderItemCustomization](tx).WhereIn("order_item_id", itemIDs).Delete(ctx); err != nil {
				return err
			}
			if _, err := database.Query[tables.OrderItem](tx).Where("order_id", order.Id).Delete(ctx); err != nil {
				return err
			}
		}

		affected, err := database.Query[tables.Order](tx).Where("id", order.Id).Delete(ctx)
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.NotFound("Order not found")
		}
		return nil
	})
	if err != nil {
		return lib.MapPgError(err)
	}

	or.logger.Info("Order deleted", gecho.Field("order_id", order.Id))
	return nil
}

// loadOrderItems attaches items and customizations to the given orders, keeping request order
func loadOrderItems(ctx context.Context, db bun.IDB, orders []*tables.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byOrder := make(map[uuid.UUID]*tables.Order, len(orders))
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		o.Items = make([]*tables.OrderItem, 0)
		byOrder[o.Id] = o
		orderIDs = append(orderIDs, o.Id)
	}

	items, err := database.Query[tables.OrderItem](db).
		WhereIn("order_id", orderIDs).
		OrderBy("position", database.ASC).
		All(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if len(items) == 0 {
		return nil
	}

	byItem := make(map[uuid.UUID]*tables.OrderItem, len(items))
	itemIDs := make([]uuid.UUID, 0, len(items))
	for i := range items {
		item := &items[i]
		item.Customizations = make([]*tables.OrderItemCustomization, 0)
		byItem[item.Id] = item
		itemIDs = append(itemIDs, item.Id)
		if o, ok := byOrder[item.OrderId]; ok {
			o.Items = append(o.Items, item)
		}
	}

	customizations, err := database.Query[tables.OrderItemCustomization](db).
		WhereIn("order_item_id", itemIDs).
		OrderBy("position", database.ASC).
		All(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	for i := range customizations {
		c := &customizations[i]
		if item, ok := byItem[c.OrderItemId]; ok {
			item.Customizations = append(item.Customizations, c)
		}
	}

	return nil
}
