package database

import (
	"context"
	"fmt"
	"foodmenu_server/structs/tables"

	"github.com/uptrace/bun"
)

type tableSpec struct {
	model       any
	foreignKeys []string
}

// Tables in dependency order; the order aggregate comes last.
var schemaTables = []tableSpec{
	{model: (*tables.Category)(nil)},
	{model: (*tables.Product)(nil), foreignKeys: []string{
		`("category_id") REFERENCES "categories" ("id") ON DELETE RESTRICT`,
	}},
	{model: (*tables.Item)(nil)},
	{model: (*tables.ProductItem)(nil), foreignKeys: []string{
		`("product_id") REFERENCES "products" ("id") ON DELETE CASCADE`,
		`("item_id") REFERENCES "items" ("id") ON DELETE CASCADE`,
	}},
	{model: (*tables.Order)(nil)},
	{model: (*tables.OrderItem)(nil), foreignKeys: []string{
		`("order_id") REFERENCES "orders" ("id") ON DELETE CASCADE`,
		`("product_id") REFERENCES "products" ("id") ON DELETE RESTRICT`,
	}},
	{model: (*tables.OrderItemCustomization)(nil), foreignKeys: []string{
		`("order_item_id") REFERENCES "order_items" ("id") ON DELETE CASCADE`,
		`("item_id") REFERENCES "items" ("id") ON DELETE RESTRICT`,
	}},
}

type indexSpec struct {
	model   any
	name    string
	columns []string
}

var schemaIndexes = []indexSpec{
	{model: (*tables.Product)(nil), name: "idx_products_category_id", columns: []string{"category_id"}},
	{model: (*tables.OrderItem)(nil), name: "idx_order_items_order_id", columns: []string{"order_id"}},
	{model: (*tables.OrderItemCustomization)(nil), name: "idx_order_item_customizations_order_item_id", columns: []string{"order_item_id"}},
	{model: (*tables.Order)(nil), name: "idx_orders_status", columns: []string{"status"}},
}

// CreateSchema creates every table and index that does not exist yet
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, t := range schemaTables {
		query := db.NewCreateTable().Model(t.model).IfNotExists()
		for _, fk := range t.foreignKeys {
			query = query.ForeignKey(fk)
		}
		if _, err := query.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", t.model, err)
		}
	}

	for _, idx := range schemaIndexes {
		_, err := db.NewCreateIndex().
			Model(idx.model).
			Index(idx.name).
			Column(idx.columns...).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
