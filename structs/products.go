package structs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

type ItemRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"max=1000"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Image       string          `json:"image" validate:"omitempty,max=500"`
	Available   *bool           `json:"available"` // defaults to true
}

type ProductRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=255"`
	Description  string          `json:"description" validate:"max=1000"`
	Amount       decimal.Decimal `json:"amount" validate:"gte=0"`
	Image        string          `json:"image" validate:"omitempty,max=500"`
	Customizable bool            `json:"customizable"`
	Available    *bool           `json:"available"` // defaults to true
	CategoryID   *uuid.UUID      `json:"categoryId"`
}

type CreateProductItemRequest struct {
	ProductID    uuid.UUID `json:"productId" validate:"required"`
	ItemID       uuid.UUID `json:"itemId" validate:"required"`
	Essential    bool      `json:"essential"`
	Quantity     *int      `json:"quantity" validate:"omitempty,gt=0"` // defaults to 1
	Customizable bool      `json:"customizable"`
}

type UpdateProductItemRequest struct {
	Essential    bool `json:"essential"`
	Quantity     int  `json:"quantity" validate:"gt=0"`
	Customizable bool `json:"customizable"`
}

type ProductListFilters struct {
	CategoryID   *uuid.UUID
	Available    *bool
	Customizable *bool
	Search       string
}
