package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"foodmenu_server/database"
	"foodmenu_server/database/dbtest"
	"foodmenu_server/structs/tables"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItems(t *testing.T, db *database.DB, n int) []*tables.Item {
	t.Helper()

	now := time.Now()
	items := make([]*tables.Item, 0, n)
	for i := range n {
		items = append(items, &tables.Item{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Item %02d", i),
			Price:     decimal.NewFromInt(int64(i)),
			Available: i%2 == 0,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	require.NoError(t, database.Query[tables.Item](db).InsertMany(context.Background(), items))
	return items
}

func TestQueryBuilderFirst(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	items := seedItems(t, db, 3)

	found, err := database.FindByID[tables.Item](ctx, db, items[1].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Item 01", found.Name)

	missing, err := database.FindByID[tables.Item](ctx, db, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQueryBuilderFilters(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	items := seedItems(t, db, 5)

	available, err := database.Query[tables.Item](db).
		Where("available", true).
		OrderBy("name", database.ASC).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, available, 3)
	assert.Equal(t, "Item 00", available[0].Name)

	subset, err := database.Query[tables.Item](db).
		WhereIn("id", []uuid.UUID{items[0].ID, items[4].ID}).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, subset)

	matched, err := database.Query[tables.Item](db).WhereContains("name", "item 03").All(ctx)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, items[3].ID, matched[0].ID)
}

func TestPaginate(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	seedItems(t, db, 12)

	page, err := database.Paginate(ctx, database.Query[tables.Item](db).OrderBy("name", database.ASC), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, page.Meta.Total)
	assert.Equal(t, 2, page.Meta.Page)
	assert.Equal(t, 5, page.Meta.Limit)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "Item 05", page.Items[0].Name)

	last, err := database.Paginate(ctx, database.Query[tables.Item](db).OrderBy("name", database.ASC), 3, 5)
	require.NoError(t, err)
	assert.Len(t, last.Items, 2)
}

func TestNormalizePage(t *testing.T) {
	page, size := database.NormalizePage(0, 0)
	assert.Equal(t, database.DefaultPage, page)
	assert.Equal(t, database.DefaultPageSize, size)

	_, size = database.NormalizePage(3, 1000)
	assert.Equal(t, database.MaxPageSize, size)
}

func TestQueryBuilderUpdateAndDelete(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	items := seedItems(t, db, 2)

	affected, err := database.Query[tables.Item](db).
		Where("id", items[0].ID).
		Update(ctx, map[string]any{"name": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	renamed, err := database.FindByID[tables.Item](ctx, db, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", renamed.Name)

	deleted, err := database.Query[tables.Item](db).Where("id", items[1].ID).Delete(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = database.Query[tables.Item](db).Delete(ctx)
	assert.Error(t, err)
}
