package services

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"

	"github.com/google/uuid"
)

// Lookups return (nil, nil) when the record does not exist; the services decide which error that is.

type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*tables.Category, error)
	FindByName(ctx context.Context, name string) (*tables.Category, error)
	FindAllPaginated(ctx context.Context, page, perPage int) (*database.PaginationResult[tables.Category], error)
	CountProducts(ctx context.Context, id uuid.UUID) (int, error)
	Create(ctx context.Context, category *tables.Category) error
	Update(ctx context.Context, category *tables.Category) error
	Delete(ctx context.Context, category *tables.Category) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*tables.Product, error)
	FindByName(ctx context.Context, name string) (*tables.Product, error)
	FindAllPaginated(ctx context.Context, filters structs.ProductListFilters, page, perPage int) (*database.PaginationResult[tables.Product], error)
	Create(ctx context.Context, product *tables.Product) error
	Update(ctx context.Context, product *tables.Product) error
	Delete(ctx context.Context, product *tables.Product) error
}

type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*tables.Item, error)
	FindByName(ctx context.Context, name string) (*tables.Item, error)
	FindAllPaginated(ctx context.Context, page, perPage int) (*database.PaginationResult[tables.Item], error)
	Create(ctx context.Context, item *tables.Item) error
	Update(ctx context.Context, item *tables.Item) error
	Delete(ctx context.Context, item *tables.Item) error
}

type ProductItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*tables.ProductItem, error)
	// FindByProductAndItem resolves the link that authorizes an item as a customization of a product
	FindByProductAndItem(ctx context.Context, productID, itemID uuid.UUID) (*tables.ProductItem, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]tables.ProductItem, error)
	FindAllPaginated(ctx context.Context, page, perPage int) (*database.PaginationResult[tables.ProductItem], error)
	Create(ctx context.Context, productItem *tables.ProductItem) error
	Update(ctx context.Context, productItem *tables.ProductItem) error
	Delete(ctx context.Context, productItem *tables.ProductItem) error
}

type OrderRepository interface {
	// Create persists the order, its items and their customizations atomically.
	// Titles and prices are stored as given in the request.
	Create(ctx context.Context, req *structs.CreateOrderRequest) (*tables.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*tables.Order, error)
	FindAllPaginated(ctx context.Context, filters structs.OrderListFilters, page, perPage int) (*database.PaginationResult[tables.Order], error)
	// UpdateStatus fails with lib.ErrNotFound when the order does not exist
	UpdateStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error)
	Delete(ctx context.Context, order *tables.Order) error
}

// OrderNotifier is told about committed order changes. It must not fail the caller.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, order *tables.Order)
	OrderStatusChanged(ctx context.Context, order *tables.Order, previous tables.OrderStatus)
}
