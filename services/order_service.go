package services

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type OrderService struct {
	logger       *gecho.Logger
	orders       OrderRepository
	products     ProductRepository
	items        ItemRepository
	productItems ProductItemRepository
	notifier     OrderNotifier
}

// NewOrderService wires the order use cases. notifier may be nil.
func NewOrderService(
	logger *gecho.Logger,
	orders OrderRepository,
	products ProductRepository,
	items ItemRepository,
	productItems ProductItemRepository,
	notifier OrderNotifier,
) *OrderService {
	return &OrderService{
		logger:       logger,
		orders:       orders,
		products:     products,
		items:        items,
		productItems: productItems,
		notifier:     notifier,
	}
}

// CreateOrder validates the request against the catalog and persists the order aggregate.
// Every check runs before the repository is called, so a rejected request writes nothing.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.CreateOrderRequest) (*tables.Order, error) {
	if err := validateQuantities(req); err != nil {
		return nil, err
	}

	// Blank titles are filled from the catalog on a copy; the caller's request is left untouched
	resolved := *req
	resolved.Items = make([]structs.CreateOrderItemRequest, len(req.Items))
	copy(resolved.Items, req.Items)

	for idx := range resolved.Items {
		if err := os.validateOrderItem(ctx, &resolved.Items[idx]); err != nil {
			return nil, err
		}
	}

	order, err := os.orders.Create(ctx, &resolved)
	if err != nil {
		return nil, err
	}

	os.logger.Info("Order created",
		gecho.Field("order_id", order.Id),
		gecho.Field("items", len(order.Items)),
		gecho.Field("amount", order.Amount.StringFixed(2)),
	)

	if os.notifier != nil {
		os.notifier.OrderCreated(ctx, order)
	}

	return order, nil
}

// validateQuantities rejects non-positive quantities without touching any repository
func validateQuantities(req *structs.CreateOrderRequest) error {
	for idx, item := range req.Items {
		if item.Quantity <= 0 {
			return lib.BadRequest("invalid quantity for item #%d", idx)
		}
		for cIdx, customization := range item.CustomerItems {
			if customization.Quantity <= 0 {
				return lib.BadRequest("invalid quantity for customization #%d of item #%d", cIdx, idx)
			}
		}
	}
	return nil
}

// validateOrderItem checks one order line against the catalog: product, product customizability,
// then every customization's item and its product-item link, in that order.
func (os *OrderService) validateOrderItem(ctx context.Context, item *structs.CreateOrderItemRequest) error {
	product, err := os.products.FindByID(ctx, item.ProductId)
	if err != nil {
		return err
	}
	if product == nil {
		return lib.NotFound("order-item's product not found")
	}

	if len(item.CustomerItems) > 0 && !product.Customizable {
		return lib.BadRequest("product does not allow customization")
	}

	if item.Title == "" {
		item.Title = product.Name
	}

	if len(item.CustomerItems) == 0 {
		return nil
	}

	customizations := make([]structs.CreateOrderItemCustomizationRequest, len(item.CustomerItems))
	copy(customizations, item.CustomerItems)
	item.CustomerItems = customizations

	for cIdx := range customizations {
		customization := &customizations[cIdx]

		menuItem, err := os.items.FindByID(ctx, customization.ItemId)
		if err != nil {
			return err
		}
		if menuItem == nil {
			return lib.NotFound("customization item not found")
		}

		if customization.Title == "" {
			customization.Title = menuItem.Name
		}

		relation, err := os.productItems.FindByProductAndItem(ctx, item.ProductId, customization.ItemId)
		if err != nil {
			return err
		}
		if relation == nil {
			return lib.BadRequest("item does not belong to the product and cannot be customized")
		}
		if !relation.Customizable {
			return lib.BadRequest("this %s is not customizable for the product", customization.Title)
		}
	}

	return nil
}

func (os *OrderService) FindOrder(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	order, err := os.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, lib.NotFound("Order not found")
	}
	return order, nil
}

func (os *OrderService) ListOrders(ctx context.Context, filters structs.OrderListFilters, page, perPage int) (*database.PaginationResult[tables.Order], error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, lib.BadRequest("invalid order status: %s", *filters.Status)
	}
	return os.orders.FindAllPaginated(ctx, filters, page, perPage)
}

// UpdateOrderStatus sets any status of the closed set; there is no transition graph
func (os *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error) {
	if !status.IsValid() {
		return nil, lib.BadRequest("invalid order status: %s", status)
	}

	current, err := os.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := os.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_id", id),
		gecho.Field("old_status", current.Status),
		gecho.Field("new_status", status),
	)

	if os.notifier != nil && current.Status != status {
		os.notifier.OrderStatusChanged(ctx, order, current.Status)
	}

	return order, nil
}

func (os *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := os.FindOrder(ctx, id)
	if err != nil {
		return err
	}

	if err := os.orders.Delete(ctx, order); err != nil {
		return err
	}

	os.logger.Info("Order deleted", gecho.Field("order_id", id))
	return nil
}
