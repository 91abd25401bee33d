package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Category struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID          uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name        string    `bun:"name,notnull,unique" json:"name"`
	Description string    `bun:"description" json:"description"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID           uuid.UUID       `bun:"id,pk,type:uuid" json:"id"`
	Name         string          `bun:"name,notnull,unique" json:"name"`
	Description  string          `bun:"description" json:"description"`
	Amount       decimal.Decimal `bun:"amount,type:numeric(10,2),notnull" json:"amount"`
	Image        string          `bun:"image" json:"image,omitempty"`
	Customizable bool            `bun:"customizable,notnull" json:"customizable"` // gate for any customization on order lines
	Available    bool            `bun:"available,notnull" json:"available"`
	CategoryID   *uuid.UUID      `bun:"category_id,type:uuid" json:"category_id"`
	CreatedAt    time.Time       `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt    time.Time       `bun:"updated_at,notnull" json:"updated_at"`
}

// Item is a raw menu component, usable as an ingredient or as a customization
type Item struct {
	bun.BaseModel `bun:"table:items,alias:i"`

	ID          uuid.UUID       `bun:"id,pk,type:uuid" json:"id"`
	Name        string          `bun:"name,notnull,unique" json:"name"`
	Description string          `bun:"description" json:"description"`
	Price       decimal.Decimal `bun:"price,type:numeric(10,2),notnull" json:"price"`
	Image       string          `bun:"image" json:"image,omitempty"`
	Available   bool            `bun:"available,notnull" json:"available"`
	CreatedAt   time.Time       `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time       `bun:"updated_at,notnull" json:"updated_at"`
}

type ProductItem struct {
	bun.BaseModel `bun:"table:product_items,alias:pi"`

	ID           uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	ProductID    uuid.UUID `bun:"product_id,notnull,type:uuid,unique:product_item" json:"productId"`
	ItemID       uuid.UUID `bun:"item_id,notnull,type:uuid,unique:product_item" json:"itemId"`
	Essential    bool      `bun:"essential,notnull" json:"essential"`
	Quantity     int       `bun:"quantity,notnull" json:"quantity"`
	Customizable bool      `bun:"customizable,notnull" json:"customizable"`
	CreatedAt    time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
