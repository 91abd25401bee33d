package repositories_test

import (
	"context"
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

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	logger := gecho.NewDefaultLogger()

	categories := repositories.NewCategoryRepository(logger, db)
	products := repositories.NewProductRepository(logger, db)

	drinks := &tables.Category{Name: "Drinks"}
	require.NoError(t, categories.Create(ctx, drinks))
	assert.NotEqual(t, uuid.Nil, drinks.ID)

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		err := categories.Create(ctx, &tables.Category{Name: "Drinks"})
		require.Error(t, err)
		assert.True(t, lib.IsConflict(err))
	})

	t.Run("find by name", func(t *testing.T) {
		found, err := categories.FindByName(ctx, "Drinks")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, drinks.ID, found.ID)

		missing, err := categories.FindByName(ctx, "Desserts")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("count products", func(t *testing.T) {
		require.NoError(t, products.Create(ctx, &tables.Product{Name: "Cola", Amount: decimal.NewFromInt(3), CategoryID: &drinks.ID}))

		count, err := categories.CountProducts(ctx, drinks.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("category in use cannot be deleted", func(t *testing.T) {
		err := categories.Delete(ctx, drinks)
		require.Error(t, err)
		assert.True(t, lib.IsConflict(err))

		found, err := categories.FindByID(ctx, drinks.ID)
		require.NoError(t, err)
		assert.NotNil(t, found)
	})

	t.Run("update and delete", func(t *testing.T) {
		other := &tables.Category{Name: "Sides"}
		require.NoError(t, categories.Create(ctx, other))

		other.Description = "Fries and more"
		require.NoError(t, categories.Update(ctx, other))

		found, err := categories.FindByID(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, "Fries and more", found.Description)

		require.NoError(t, categories.Delete(ctx, other))
		assert.True(t, lib.IsNotFound(categories.Delete(ctx, other)))
	})
}

func TestProductRepository_FindAllPaginated(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	products := repositories.NewProductRepository(gecho.NewDefaultLogger(), db)

	seed := []*tables.Product{
		{Name: "Cheeseburger", Amount: decimal.NewFromInt(10), Customizable: true, Available: true},
		{Name: "Veggie Burger", Amount: decimal.NewFromInt(9), Customizable: true, Available: false},
		{Name: "Fries", Amount: decimal.NewFromInt(4), Available: true},
	}
	for _, p := range seed {
		require.NoError(t, products.Create(ctx, p))
	}

	yes := true

	testCases := []struct {
		name     string
		filters  structs.ProductListFilters
		expected []string
	}{
		{name: "no filters", filters: structs.ProductListFilters{}, expected: []string{"Cheeseburger", "Fries", "Veggie Burger"}},
		{name: "search", filters: structs.ProductListFilters{Search: "BURGER"}, expected: []string{"Cheeseburger", "Veggie Burger"}},
		{name: "available", filters: structs.ProductListFilters{Available: &yes}, expected: []string{"Cheeseburger", "Fries"}},
		{name: "customizable and available", filters: structs.ProductListFilters{Available: &yes, Customizable: &yes}, expected: []string{"Cheeseburger"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := products.FindAllPaginated(ctx, tc.filters, 1, 10)
			require.NoError(t, err)

			names := make([]string, 0, len(result.Items))
			for _, p := range result.Items {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.expected, names)
			assert.Equal(t, len(tc.expected), result.Meta.Total)
		})
	}
}

func TestProductItemRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	logger := gecho.NewDefaultLogger()

	product, item := seedCatalog(t, ctx, logger, repositories.NewProductRepository(logger, db), repositories.NewItemRepository(logger, db))
	productItems := repositories.NewProductItemRepository(logger, db)

	link := &tables.ProductItem{ProductID: product.ID, ItemID: item.ID, Customizable: true}
	require.NoError(t, productItems.Create(ctx, link))
	assert.Equal(t, 1, link.Quantity)

	found, err := productItems.FindByProductAndItem(ctx, product.ID, item.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Customizable)

	missing, err := productItems.FindByProductAndItem(ctx, product.ID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = productItems.Create(ctx, &tables.ProductItem{ProductID: product.ID, ItemID: item.ID})
	require.Error(t, err)
	assert.True(t, lib.IsConflict(err))

	link.Customizable = false
	link.Quantity = 3
	require.NoError(t, productItems.Update(ctx, link))

	byProduct, err := productItems.FindByProductID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.False(t, byProduct[0].Customizable)
	assert.Equal(t, 3, byProduct[0].Quantity)

	require.NoError(t, productItems.Delete(ctx, link))
	byProduct, err = productItems.FindByProductID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, byProduct)
}
