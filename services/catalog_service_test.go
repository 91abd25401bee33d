package services_test

import (
	"context"
	"foodmenu_server/lib"
	"foodmenu_server/repositories/memory"
	"foodmenu_server/services"
	"foodmenu_server/structs"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalog struct {
	categories   *services.CategoryService
	items        *services.ItemService
	products     *services.ProductService
	productItems *services.ProductItemService
}

func newCatalog() catalog {
	logger := gecho.NewDefaultLogger()
	products := memory.NewProductRepository()
	items := memory.NewItemRepository()
	categories := memory.NewCategoryRepository(products)
	productItems := memory.NewProductItemRepository()

	return catalog{
		categories:   services.NewCategoryService(logger, categories),
		items:        services.NewItemService(logger, items),
		products:     services.NewProductService(logger, products, categories),
		productItems: services.NewProductItemService(logger, productItems, products, items),
	}
}

func TestCategoryService(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()

	burgers, err := c.categories.CreateCategory(ctx, &structs.CategoryRequest{Name: "Burgers"})
	require.NoError(t, err)

	drinks, err := c.categories.CreateCategory(ctx, &structs.CategoryRequest{Name: "Drinks"})
	require.NoError(t, err)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := c.categories.CreateCategory(ctx, &structs.CategoryRequest{Name: "Burgers"})
		assert.True(t, lib.IsConflict(err))
	})

	t.Run("update keeps own name", func(t *testing.T) {
		updated, err := c.categories.UpdateCategory(ctx, burgers.ID, &structs.CategoryRequest{Name: "Burgers", Description: "Grilled"})
		require.NoError(t, err)
		assert.Equal(t, "Grilled", updated.Description)
	})

	t.Run("update to a taken name", func(t *testing.T) {
		_, err := c.categories.UpdateCategory(ctx, drinks.ID, &structs.CategoryRequest{Name: "Burgers"})
		assert.True(t, lib.IsConflict(err))
	})

	t.Run("delete with products is rejected", func(t *testing.T) {
		_, err := c.products.CreateProduct(ctx, &structs.ProductRequest{Name: "Classic", Amount: decimal.NewFromInt(10), CategoryID: &burgers.ID})
		require.NoError(t, err)

		err = c.categories.DeleteCategory(ctx, burgers.ID)
		assert.True(t, lib.IsConflict(err))
	})

	t.Run("delete empty category", func(t *testing.T) {
		require.NoError(t, c.categories.DeleteCategory(ctx, drinks.ID))
		assert.True(t, lib.IsNotFound(c.categories.DeleteCategory(ctx, drinks.ID)))
	})

	t.Run("list", func(t *testing.T) {
		result, err := c.categories.ListCategories(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Meta.Total)
	})
}

func TestProductService(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()

	missingCategory := uuid.New()

	testCases := []struct {
		name  string
		req   structs.ProductRequest
		check func(t *testing.T, err error)
	}{
		{
			name: "unknown category",
			req:  structs.ProductRequest{Name: "Wrap", Amount: decimal.NewFromInt(7), CategoryID: &missingCategory},
			check: func(t *testing.T, err error) {
				assert.True(t, lib.IsNotFound(err))
			},
		},
		{
			name: "created available by default",
			req:  structs.ProductRequest{Name: "Pizza", Amount: decimal.NewFromInt(12), Customizable: true},
			check: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "duplicate name",
			req:  structs.ProductRequest{Name: "Pizza", Amount: decimal.NewFromInt(12)},
			check: func(t *testing.T, err error) {
				assert.True(t, lib.IsConflict(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.products.CreateProduct(ctx, &tc.req)
			tc.check(t, err)
		})
	}

	result, err := c.products.ListProducts(ctx, structs.ProductListFilters{Search: "piz"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	pizza := result.Items[0]
	assert.True(t, pizza.Available)

	no := false
	updated, err := c.products.UpdateProduct(ctx, pizza.ID, &structs.ProductRequest{Name: "Pizza", Amount: decimal.NewFromInt(14), Available: &no})
	require.NoError(t, err)
	assert.False(t, updated.Available)
	assert.True(t, decimal.NewFromInt(14).Equal(updated.Amount))

	_, err = c.products.FindProduct(ctx, uuid.New())
	assert.True(t, lib.IsNotFound(err))

	require.NoError(t, c.products.DeleteProduct(ctx, pizza.ID))
}

func TestProductItemService(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()

	burger, err := c.products.CreateProduct(ctx, &structs.ProductRequest{Name: "Burger", Amount: decimal.NewFromInt(20), Customizable: true})
	require.NoError(t, err)
	cheese, err := c.items.CreateItem(ctx, &structs.ItemRequest{Name: "Cheese", Price: decimal.RequireFromString("1.50")})
	require.NoError(t, err)
	assert.True(t, cheese.Available)

	t.Run("unknown product", func(t *testing.T) {
		_, err := c.productItems.CreateProductItem(ctx, &structs.CreateProductItemRequest{ProductID: uuid.New(), ItemID: cheese.ID})
		assert.True(t, lib.IsNotFound(err))
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := c.productItems.CreateProductItem(ctx, &structs.CreateProductItemRequest{ProductID: burger.ID, ItemID: uuid.New()})
		assert.True(t, lib.IsNotFound(err))
	})

	link, err := c.productItems.CreateProductItem(ctx, &structs.CreateProductItemRequest{ProductID: burger.ID, ItemID: cheese.ID, Customizable: true})
	require.NoError(t, err)
	assert.Equal(t, 1, link.Quantity)

	t.Run("duplicate pair", func(t *testing.T) {
		_, err := c.productItems.CreateProductItem(ctx, &structs.CreateProductItemRequest{ProductID: burger.ID, ItemID: cheese.ID})
		assert.True(t, lib.IsConflict(err))
	})

	t.Run("update", func(t *testing.T) {
		updated, err := c.productItems.UpdateProductItem(ctx, link.ID, &structs.UpdateProductItemRequest{Essential: true, Quantity: 2})
		require.NoError(t, err)
		assert.True(t, updated.Essential)
		assert.False(t, updated.Customizable)
		assert.Equal(t, 2, updated.Quantity)
	})

	t.Run("list by product", func(t *testing.T) {
		links, err := c.productItems.ListByProduct(ctx, burger.ID)
		require.NoError(t, err)
		assert.Len(t, links, 1)

		_, err = c.productItems.ListByProduct(ctx, uuid.New())
		assert.True(t, lib.IsNotFound(err))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, c.productItems.DeleteProductItem(ctx, link.ID))
		assert.True(t, lib.IsNotFound(c.productItems.DeleteProductItem(ctx, link.ID)))
	})
}
