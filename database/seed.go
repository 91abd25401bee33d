package database

import (
	"context"
	"fmt"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// SeedResult counts the rows a Seed run actually inserted
type SeedResult struct {
	Categories   int
	Items        int
	Products     int
	ProductItems int
	Orders       int
}

type seedCategory struct {
	name, description string
}

type seedItem struct {
	name, description, price, image string
}

type seedProduct struct {
	name, description, amount, image string
	customizable                     bool
	category                         string
}

type seedLink struct {
	product, item           string
	essential, customizable bool
}

type seedLine struct {
	product, observation string
	extras               []seedExtra
}

type seedExtra struct {
	item, title, observation string
}

type seedOrder struct {
	transactionId string
	status        tables.OrderStatus
	lines         []seedLine
}

var seedCategories = []seedCategory{
	{"Burgers", "Burgers from the grill"},
	{"Drinks", "Sodas and juices"},
	{"Sides", "Fries and other sides"},
	{"Desserts", "Sweets and ice cream"},
	{"Combos", "Promotional combinations"},
}

var seedItems = []seedItem{
	{"Burger Patty", "160g blend", "10.00", "https://picsum.photos/seed/patty/400/300"},
	{"Cheese", "Slice of cheddar", "2.50", "https://picsum.photos/seed/cheese/400/300"},
	{"Bacon", "Crispy strips", "4.00", "https://picsum.photos/seed/bacon/400/300"},
	{"Lettuce", "Green leaves", "1.50", "https://picsum.photos/seed/lettuce/400/300"},
	{"Tomato", "Fresh slices", "1.50", "https://picsum.photos/seed/tomato/400/300"},
	{"Onion", "Onion rings", "1.20", "https://picsum.photos/seed/onion/400/300"},
	{"Pickles", "Pickle slices", "1.70", "https://picsum.photos/seed/pickles/400/300"},
	{"Egg", "Fried egg", "2.50", "https://picsum.photos/seed/egg/400/300"},
	{"House Sauce", "Our own recipe", "1.90", "https://picsum.photos/seed/sauce/400/300"},
	{"Medium Fries", "300g portion", "13.00", "https://picsum.photos/seed/fries/400/300"},
	{"Canned Soda", "350ml", "7.00", "https://picsum.photos/seed/soda/400/300"},
	{"Nuggets 6pc", "Six chicken nuggets", "12.00", "https://picsum.photos/seed/nuggets/400/300"},
	{"Chocolate Sundae", "Frozen dessert", "9.50", "https://picsum.photos/seed/sundae/400/300"},
	{"Chocolate Milkshake", "400ml", "14.90", "https://picsum.photos/seed/milkshake/400/300"},
	{"Orange Juice", "300ml fresh", "8.50", "https://picsum.photos/seed/juice/400/300"},
}

var seedProducts = []seedProduct{
	{"Cheeseburger", "Bun, patty and cheese", "29.90", "https://picsum.photos/seed/cheeseburger/800/600", true, "Burgers"},
	{"Bacon Burger", "Burger with bacon", "31.90", "https://picsum.photos/seed/baconburger/800/600", true, "Burgers"},
	{"Salad Burger", "Burger with salad", "30.90", "https://picsum.photos/seed/saladburger/800/600", true, "Burgers"},
	{"Egg Burger", "Burger with egg", "33.90", "https://picsum.photos/seed/eggburger/800/600", true, "Burgers"},
	{"Medium Fries", "Medium portion of fries", "13.00", "https://picsum.photos/seed/friesprod/800/600", false, "Sides"},
	{"Nuggets 6pc", "Portion of nuggets", "12.00", "https://picsum.photos/seed/nuggetsprod/800/600", false, "Sides"},
	{"Canned Soda", "350ml", "7.00", "https://picsum.photos/seed/sodaprod/800/600", false, "Drinks"},
	{"Orange Juice", "Fresh 300ml", "8.50", "https://picsum.photos/seed/juiceprod/800/600", false, "Drinks"},
	{"Chocolate Milkshake", "400ml", "14.90", "https://picsum.photos/seed/milkshakeprod/800/600", false, "Drinks"},
	{"Chocolate Sundae", "Frozen dessert", "9.50", "https://picsum.photos/seed/sundaeprod/800/600", false, "Desserts"},
	{"Bacon Burger Combo", "Bacon Burger with a soda", "36.90", "https://picsum.photos/seed/combo/800/600", false, "Combos"},
}

var seedLinks = []seedLink{
	{"Cheeseburger", "Burger Patty", true, false},
	{"Cheeseburger", "Cheese", true, false},
	{"Cheeseburger", "Lettuce", false, true},
	{"Cheeseburger", "Tomato", false, true},

	{"Bacon Burger", "Burger Patty", true, false},
	{"Bacon Burger", "Cheese", true, false},
	{"Bacon Burger", "Bacon", true, false},
	{"Bacon Burger", "Lettuce", false, true},
	{"Bacon Burger", "House Sauce", false, true},

	{"Salad Burger", "Burger Patty", true, false},
	{"Salad Burger", "Cheese", true, false},
	{"Salad Burger", "Lettuce", false, true},
	{"Salad Burger", "Tomato", false, true},
	{"Salad Burger", "Onion", false, true},

	{"Egg Burger", "Burger Patty", true, false},
	{"Egg Burger", "Cheese", true, false},
	{"Egg Burger", "Egg", true, false},
	{"Egg Burger", "Pickles", false, true},
}

var seedOrders = []seedOrder{
	{"seed-tx-0001", tables.OrderStatusPending, []seedLine{
		{"Bacon Burger", "Well done", []seedExtra{{"Lettuce", "Extra lettuce", "Small leaves"}}},
	}},
	{"seed-tx-0002", tables.OrderStatusDone, []seedLine{
		{"Medium Fries", "", nil},
	}},
	{"seed-tx-0003", tables.OrderStatusPaid, []seedLine{
		{"Cheeseburger", "", nil},
		{"Canned Soda", "Cola", nil},
	}},
	{"seed-tx-0004", tables.OrderStatusCanceled, []seedLine{
		{"Salad Burger", "No tomato", []seedExtra{{"Onion", "Extra onion", ""}}},
	}},
	{"seed-tx-0005", tables.OrderStatusFailed, []seedLine{
		{"Chocolate Milkshake", "", nil},
	}},
	{"seed-tx-0006", tables.OrderStatusInPreparation, []seedLine{
		{"Egg Burger", "", []seedExtra{{"Pickles", "Extra pickles", ""}}},
		{"Orange Juice", "No sugar", nil},
	}},
	{"seed-tx-0007", tables.OrderStatusReadyToDeliver, []seedLine{
		{"Cheeseburger", "", nil},
		{"Medium Fries", "With mayo", nil},
	}},
	{"seed-tx-0008", tables.OrderStatusDone, []seedLine{
		{"Nuggets 6pc", "", nil},
		{"Chocolate Sundae", "", nil},
	}},
}

// Seed loads a starter menu and a few sample orders in one transaction.
// Catalog rows are matched on their unique name and orders on their transaction id, so a second run inserts nothing.
func Seed(ctx context.Context, db *DB) (*SeedResult, error) {
	result := &SeedResult{}
	now := time.Now()

	err := Transaction(ctx, db, func(ctx context.Context, tx bun.Tx) error {
		categories := make(map[string]*tables.Category, len(seedCategories))
		for _, c := range seedCategories {
			category, created, err := firstOrInsert(ctx, Query[tables.Category](tx).Where("name", c.name), func() *tables.Category {
				return &tables.Category{ID: uuid.New(), Name: c.name, Description: c.description, CreatedAt: now, UpdatedAt: now}
			})
			if err != nil {
				return fmt.Errorf("category %q: %w", c.name, err)
			}
			categories[c.name] = category
			result.Categories += created
		}

		items := make(map[string]*tables.Item, len(seedItems))
		for _, i := range seedItems {
			item, created, err := firstOrInsert(ctx, Query[tables.Item](tx).Where("name", i.name), func() *tables.Item {
				return &tables.Item{
					ID:          uuid.New(),
					Name:        i.name,
					Description: i.description,
					Price:       decimal.RequireFromString(i.price),
					Image:       i.image,
					Available:   true,
					CreatedAt:   now,
					UpdatedAt:   now,
				}
			})
			if err != nil {
				return fmt.Errorf("item %q: %w", i.name, err)
			}
			items[i.name] = item
			result.Items += created
		}

		products := make(map[string]*tables.Product, len(seedProducts))
		for _, p := range seedProducts {
			categoryID := categories[p.category].ID
			product, created, err := firstOrInsert(ctx, Query[tables.Product](tx).Where("name", p.name), func() *tables.Product {
				return &tables.Product{
					ID:           uuid.New(),
					Name:         p.name,
					Description:  p.description,
					Amount:       decimal.RequireFromString(p.amount),
					Image:        p.image,
					Customizable: p.customizable,
					Available:    true,
					CategoryID:   &categoryID,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
			})
			if err != nil {
				return fmt.Errorf("product %q: %w", p.name, err)
			}
			products[p.name] = product
			result.Products += created
		}

		for _, l := range seedLinks {
			productID, itemID := products[l.product].ID, items[l.item].ID
			query := Query[tables.ProductItem](tx).Where("product_id", productID).Where("item_id", itemID)
			_, created, err := firstOrInsert(ctx, query, func() *tables.ProductItem {
				return &tables.ProductItem{
					ID:           uuid.New(),
					ProductID:    productID,
					ItemID:       itemID,
					Essential:    l.essential,
					Quantity:     1,
					Customizable: l.customizable,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
			})
			if err != nil {
				return fmt.Errorf("link %q/%q: %w", l.product, l.item, err)
			}
			result.ProductItems += created
		}

		for n, o := range seedOrders {
			exists, err := Query[tables.Order](tx).Where("transaction_id", o.transactionId).Exists(ctx)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			order := o.build(n, products, items, now)
			if _, err := Query[tables.Order](tx).Insert(ctx, order); err != nil {
				return fmt.Errorf("order %s: %w", o.transactionId, err)
			}

			var customizations []*tables.OrderItemCustomization
			for _, line := range order.Items {
				customizations = append(customizations, line.Customizations...)
			}
			if err := Query[tables.OrderItem](tx).InsertMany(ctx, order.Items); err != nil {
				return fmt.Errorf("order %s lines: %w", o.transactionId, err)
			}
			if err := Query[tables.OrderItemCustomization](tx).InsertMany(ctx, customizations); err != nil {
				return fmt.Errorf("order %s customizations: %w", o.transactionId, err)
			}
			result.Orders++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// build turns the sample into an order aggregate priced from the catalog. Every line and extra has quantity one.
func (o seedOrder) build(n int, products map[string]*tables.Product, items map[string]*tables.Item, now time.Time) *tables.Order {
	code := 1001 + n
	req := &structs.CreateOrderRequest{
		TransactionId:    &o.transactionId,
		IsRandomClient:   true,
		CodeClientRandom: &code,
		Items:            make([]structs.CreateOrderItemRequest, 0, len(o.lines)),
	}

	for _, line := range o.lines {
		product := products[line.product]
		itemReq := structs.CreateOrderItemRequest{
			ProductId:   product.ID,
			Title:       product.Name,
			Quantity:    1,
			Price:       product.Amount,
			Observation: optional(line.observation),
		}
		req.Amount = req.Amount.Add(product.Amount)

		for _, extra := range line.extras {
			item := items[extra.item]
			itemReq.CustomerItems = append(itemReq.CustomerItems, structs.CreateOrderItemCustomizationRequest{
				ItemId:      item.ID,
				Title:       extra.title,
				Quantity:    1,
				Price:       item.Price,
				Observation: optional(extra.observation),
			})
			req.Amount = req.Amount.Add(item.Price)
		}

		req.Items = append(req.Items, itemReq)
	}

	order := req.NewOrder(now)
	order.Status = o.status
	return order
}

// firstOrInsert returns the row matched by q, inserting the one built by fresh when there is none.
// The second return value is 1 when a row was inserted.
func firstOrInsert[T any](ctx context.Context, q *QueryBuilder[T], fresh func() *T) (*T, int, error) {
	existing, err := q.First(ctx)
	if err != nil {
		return nil, 0, err
	}
	if existing != nil {
		return existing, 0, nil
	}

	inserted, err := q.Insert(ctx, fresh())
	if err != nil {
		return nil, 0, err
	}
	return inserted, 1, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
