package tables

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	Id       uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	ClientId *int64    `bun:"client_id" json:"client_id"`

	// Order Data
	Status        OrderStatus     `bun:"status,notnull" json:"status"`
	Amount        decimal.Decimal `bun:"amount,type:numeric(10,2),notnull" json:"amount"`
	TransactionId *string         `bun:"transaction_id,unique" json:"transaction_id"`

	// Walk-in customers get a short code instead of a client id
	IsRandomClient   bool `bun:"is_random_client,notnull" json:"is_random_client"`
	CodeClientRandom *int `bun:"code_client_random" json:"code_client_random"`

	Observation *string      `bun:"observation" json:"observation"`
	Items       []*OrderItem `bun:"rel:has-many,join:id=order_id" json:"items"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

type OrderItem struct {
	bun.BaseModel `bun:"table:order_items,alias:oi"`

	Id        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"-"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"productId"`
	Position  int       `bun:"position,notnull" json:"-"`

	// Snapshot of the product at time of order
	Title    string          `bun:"title,notnull" json:"title"`
	Quantity int             `bun:"quantity,notnull" json:"quantity"`
	Price    decimal.Decimal `bun:"price,type:numeric(10,2),notnull" json:"price"`

	Observation    *string                   `bun:"observation" json:"observation"`
	Customizations []*OrderItemCustomization `bun:"rel:has-many,join:id=order_item_id" json:"customerItems"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

type OrderItemCustomization struct {
	bun.BaseModel `bun:"table:order_item_customizations,alias:oic"`

	Id          uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	OrderItemId uuid.UUID `bun:"order_item_id,notnull,type:uuid" json:"-"`
	ItemId      uuid.UUID `bun:"item_id,notnull,type:uuid" json:"itemId"`
	Position    int       `bun:"position,notnull" json:"-"`

	// Snapshot of the item at time of order
	Title    string          `bun:"title,notnull" json:"title"`
	Quantity int             `bun:"quantity,notnull" json:"quantity"`
	Price    decimal.Decimal `bun:"price,type:numeric(10,2),notnull" json:"price"`

	Observation *string `bun:"observation" json:"observation"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusCanceled       OrderStatus = "CANCELED"
	OrderStatusFailed         OrderStatus = "FAILED"
	OrderStatusInPreparation  OrderStatus = "IN_PREPARATION"
	OrderStatusReadyToDeliver OrderStatus = "READY_TO_DELIVER"
	OrderStatusDone           OrderStatus = "DONE"
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusCanceled,
	OrderStatusFailed,
	OrderStatusInPreparation,
	OrderStatusReadyToDeliver,
	OrderStatusDone,
}

// OrderStatuses returns every known status in declaration order.
func OrderStatuses() []OrderStatus {
	return slices.Clone(orderStatuses)
}

func (s OrderStatus) IsValid() bool {
	return slices.Contains(orderStatuses, s)
}
