package repositories_test

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/database/dbtest"
	"foodmenu_server/lib"
	"foodmenu_server/repositories"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newOrderRequest(productID, itemID uuid.UUID) *structs.CreateOrderRequest {
	clientID := int64(42)
	return &structs.CreateOrderRequest{
		ClientId:      &clientID,
		Amount:        decimal.RequireFromString("31.50"),
		TransactionId: strPtr("tx-001"),
		Observation:   strPtr("no onions"),
		Items: []structs.CreateOrderItemRequest{
			{
				ProductId: productID,
				Title:     "Burger",
				Quantity:  2,
				Price:     decimal.RequireFromString("12.00"),
				CustomerItems: []structs.CreateOrderItemCustomizationRequest{
					{ItemId: itemID, Title: "Extra cheese", Quantity: 1, Price: decimal.RequireFromString("2.50")},
					{ItemId: itemID, Title: "Cheese again", Quantity: 2, Price: decimal.RequireFromString("2.50")},
				},
			},
			{
				ProductId: productID,
				Title:     "Plain burger",
				Quantity:  1,
				Price:     decimal.RequireFromString("5.00"),
			},
		},
	}
}

func seedCatalog(t *testing.T, ctx context.Context, logger *gecho.Logger, products *repositories.ProductRepository, items *repositories.ItemRepository) (*tables.Product, *tables.Item) {
	t.Helper()

	product := &tables.Product{Name: "Burger", Amount: decimal.RequireFromString("12.00"), Customizable: true, Available: true}
	require.NoError(t, products.Create(ctx, product))

	item := &tables.Item{Name: "Cheese", Price: decimal.RequireFromString("2.50"), Available: true}
	require.NoError(t, items.Create(ctx, item))

	return product, item
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	logger := gecho.NewDefaultLogger()

	orders := repositories.NewOrderRepository(logger, db)
	product, item := seedCatalog(t, ctx, logger, repositories.NewProductRepository(logger, db), repositories.NewItemRepository(logger, db))

	created, err := orders.Create(ctx, newOrderRequest(product.ID, item.ID))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Equal(t, tables.OrderStatusPending, created.Status)
	require.Len(t, created.Items, 2)
	assert.Len(t, created.Items[0].Customizations, 2)

	found, err := orders.FindByID(ctx, created.Id)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, tables.OrderStatusPending, found.Status)
	assert.True(t, decimal.RequireFromString("31.50").Equal(found.Amount))
	require.NotNil(t, found.ClientId)
	assert.Equal(t, int64(42), *found.ClientId)
	require.NotNil(t, found.TransactionId)
	assert.Equal(t, "tx-001", *found.TransactionId)

	require.Len(t, found.Items, 2)
	assert.Equal(t, "Burger", found.Items[0].Title)
	assert.Equal(t, 2, found.Items[0].Quantity)
	assert.Equal(t, "Plain burger", found.Items[1].Title)
	assert.Empty(t, found.Items[1].Customizations)

	require.Len(t, found.Items[0].Customizations, 2)
	assert.Equal(t, "Extra cheese", found.Items[0].Customizations[0].Title)
	assert.Equal(t, "Cheese again", found.Items[0].Customizations[1].Title)
	assert.Equal(t, item.ID, found.Items[0].Customizations[0].ItemId)
	assert.True(t, decimal.RequireFromString("2.50").Equal(found.Items[0].Customizations[0].Price))
}

func TestOrderRepository_FindByIDMissing(t *testing.T) {
	db := dbtest.Open(t)
	orders := repositories.NewOrderRepository(gecho.NewDefaultLogger(), db)

	found, err := orders.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestOrderRepository_DuplicateTransactionIsConflict(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	logger := gecho.NewDefaultLogger()

	orders := repositories.NewOrderRepository(logger, db)
	product, item := seedCatalog(t, ctx, logger, repositories.NewProductRepository(logger, db), repositories.NewItemRepository(logger, db))

	_, err := orders.Create(ctx, newOrderRequest(product.ID, item.ID))
	require.NoError(t, err)

	_, err = orders.Create(ctx, newOrderRequest(product.ID, item.ID))
	require.Error(t, err)
	assert.True(t, lib.IsConflict(err))

	result, err := orders.FindAllPaginated(ctx, structs.OrderListFilters{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Meta.Total)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	logger := gecho.NewDefaultLogger()

	orders := repositories.NewOrderRepository(logger, db)
	product, item := seedCatalog(t, ctx, logger, repositories.NewProductRepository(logger, db), repositories.NewItemRepository(logger, db))

	created, err := orders.Create(ctx, newOrderRequest(product.ID, item.ID))
	require.NoError(t, err)

	updated, err := orders.UpdateStatus(ctx, created.Id, tables.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, tables.OrderStatusPaid, updated.Status)
	assert.Len(t, updated.Items, 2)

	_, err = orders.UpdateStatus(ctx, uuid.New(), tables.OrderStatusPaid)
	require.Error(t, err)
	assert.True(t, lib.IsNotFound(err))
	assert.Equal(t, "Order not found", lib.PublicMessage(err, ""))
}

func TestOrderRepository_FindAllPaginatedFilters(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	logger := gecho.NewDefaultLogger()

	orders := repositories.NewOrderRepository(logger, db)
	product, item := seedCatalog(t, ctx, logger, repositories.NewProductRepository(logger, db), repositories.NewItemRepository(logger, db))

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		req := newOrderRequest(product.ID, item.ID)
		req.TransactionId = nil
		created, err := orders.Create(ctx, req)
		require.NoError(t, err)
		ids = append(ids, created.Id)
	}

	_, err := orders.UpdateStatus(ctx, ids[0], tables.OrderStatusDone)
	require.NoError(t, err)

	all, err := orders.FindAllPaginated(ctx, structs.OrderListFilters{}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Meta.Total)
	assert.Equal(t, 2, all.Meta.Limit)
	assert.Len(t, all.Items, 2)
	for _, o := range all.Items {
		assert.Len(t, o.Items, 2)
	}

	done := tables.OrderStatusDone
	filtered, err := orders.FindAllPaginated(ctx, structs.OrderListFilters{Status: &done}, 1, 10)
	require.NoError(t, err)
	require.Len(t, filtered.Items, 1)
	assert.Equal(t, ids[0], filtered.Items[0].Id)
}

func TestOrderRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	logger := gecho.NewDefaultLogger()

	orders := repositories.NewOrderRepository(logger, db)
	product, item := seedCatalog(t, ctx, logger, repositories.NewProductRepository(logger, db), repositories.NewItemRepository(logger, db))

	created, err := orders.Create(ctx, newOrderRequest(product.ID, item.ID))
	require.NoError(t, err)

	require.NoError(t, orders.Delete(ctx, created))

	found, err := orders.FindByID(ctx, created.Id)
	require.NoError(t, err)
	assert.Nil(t, found)

	err = orders.Delete(ctx, created)
	assert.True(t, lib.IsNotFound(err))
}

func TestOrderRepository_CreateRollsBackOnLateFailure(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	logger := gecho.NewDefaultLogger()

	orders := repositories.NewOrderRepository(logger, db)
	product, item := seedCatalog(t, ctx, logger, repositories.NewProductRepository(logger, db), repositories.NewItemRepository(logger, db))

	// the order and its lines are written before the customizations, which now have nowhere to go
	_, err := db.NewDropTable().Model((*tables.OrderItemCustomization)(nil)).Exec(ctx)
	require.NoError(t, err)

	created, err := orders.Create(ctx, newOrderRequest(product.ID, item.ID))
	require.Error(t, err)
	assert.Nil(t, created)

	result, err := orders.FindAllPaginated(ctx, structs.OrderListFilters{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Meta.Total)

	lines, err := database.Query[tables.OrderItem](db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, lines)
}

func TestOrderRepository_ReferencedCatalogRowsAreProtected(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	logger := gecho.NewDefaultLogger()

	orders := repositories.NewOrderRepository(logger, db)
	products := repositories.NewProductRepository(logger, db)
	items := repositories.NewItemRepository(logger, db)
	product, item := seedCatalog(t, ctx, logger, products, items)

	t.Run("unknown product in a line", func(t *testing.T) {
		req := newOrderRequest(uuid.New(), item.ID)
		req.TransactionId = strPtr("tx-unknown-product")

		_, err := orders.Create(ctx, req)
		require.Error(t, err)
		assert.True(t, lib.IsConflict(err))
	})

	_, err := orders.Create(ctx, newOrderRequest(product.ID, item.ID))
	require.NoError(t, err)

	t.Run("product", func(t *testing.T) {
		err := products.Delete(ctx, product)
		require.Error(t, err)
		assert.True(t, lib.IsConflict(err))
		assert.Equal(t, "resource is still referenced", lib.PublicMessage(err, ""))
	})

	t.Run("item", func(t *testing.T) {
		err := items.Delete(ctx, item)
		require.Error(t, err)
		assert.True(t, lib.IsConflict(err))
	})
}
