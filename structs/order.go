package structs

import (
	"foodmenu_server/structs/tables"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	ClientId         *int64                   `json:"clientId" validate:"omitempty,gt=0"`
	Amount           decimal.Decimal          `json:"amount" validate:"gte=0"`
	TransactionId    *string                  `json:"transactionId" validate:"omitempty,max=191"`
	IsRandomClient   bool                     `json:"isRandomClient"`
	CodeClientRandom *int                     `json:"codeClientRandom" validate:"omitempty,gt=0"`
	Observation      *string                  `json:"observation" validate:"omitempty,max=5000"`
	Items            []CreateOrderItemRequest `json:"items" validate:"dive"`
}

// CreateOrderItemRequest is one order line. Quantities are checked by the order service so the
// offending index can be reported.
type CreateOrderItemRequest struct {
	ProductId     uuid.UUID                             `json:"productId" validate:"required"`
	Title         string                                `json:"title" validate:"max=255"`
	Quantity      int                                   `json:"quantity"`
	Price         decimal.Decimal                       `json:"price" validate:"gte=0"`
	Observation   *string                               `json:"observation" validate:"omitempty,max=5000"`
	CustomerItems []CreateOrderItemCustomizationRequest `json:"customerItems" validate:"dive"`
}

type CreateOrderItemCustomizationRequest struct {
	ItemId      uuid.UUID       `json:"itemId" validate:"required"`
	Title       string          `json:"title" validate:"max=255"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Observation *string         `json:"observation" validate:"omitempty,max=5000"`
}

type UpdateOrderStatusRequest struct {
	Status tables.OrderStatus `json:"status" validate:"required"`
}

type OrderListFilters struct {
	Status   *tables.OrderStatus
	ClientId *int64
}

// NewOrder builds the pending order aggregate with fresh ids. Titles and prices are copied as given
// and line order is kept through the position columns.
func (req *CreateOrderRequest) NewOrder(now time.Time) *tables.Order {
	order := &tables.Order{
		Id:               uuid.New(),
		ClientId:         req.ClientId,
		Status:           tables.OrderStatusPending,
		Amount:           req.Amount.Round(2),
		TransactionId:    req.TransactionId,
		IsRandomClient:   req.IsRandomClient,
		CodeClientRandom: req.CodeClientRandom,
		Observation:      req.Observation,
		Items:            make([]*tables.OrderItem, 0, len(req.Items)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	for i, itemReq := range req.Items {
		item := &tables.OrderItem{
			Id:             uuid.New(),
			OrderId:        order.Id,
			ProductId:      itemReq.ProductId,
			Position:       i,
			Title:          itemReq.Title,
			Quantity:       itemReq.Quantity,
			Price:          itemReq.Price.Round(2),
			Observation:    itemReq.Observation,
			Customizations: make([]*tables.OrderItemCustomization, 0, len(itemReq.CustomerItems)),
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		for j, c := range itemReq.CustomerItems {
			item.Customizations = append(item.Customizations, &tables.OrderItemCustomization{
				Id:          uuid.New(),
				OrderItemId: item.Id,
				ItemId:      c.ItemId,
				Position:    j,
				Title:       c.Title,
				Quantity:    c.Quantity,
				Price:       c.Price.Round(2),
				Observation: c.Observation,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}

		order.Items = append(order.Items, item)
	}

	return order
}
