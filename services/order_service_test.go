package services_test

import (
	"context"
	"errors"
	"foodmenu_server/lib"
	"foodmenu_server/repositories/memory"
	"foodmenu_server/services"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderServiceSuite struct {
	suite.Suite

	ctx      context.Context
	orders   *memory.OrderRepository
	notifier *memory.Notifier
	service  *services.OrderService

	burger      tables.Product // customizable
	fries       tables.Product // not customizable
	cheese      tables.Item    // linked to burger, customizable
	bacon       tables.Item    // linked to burger, not customizable
	ketchup     tables.Item    // not linked to burger
	burgerPrice decimal.Decimal
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.burgerPrice = decimal.RequireFromString("29.90")

	s.burger = tables.Product{ID: uuid.New(), Name: "Burger", Amount: s.burgerPrice, Customizable: true, Available: true}
	s.fries = tables.Product{ID: uuid.New(), Name: "Fries", Amount: decimal.RequireFromString("9.00"), Available: true}
	s.cheese = tables.Item{ID: uuid.New(), Name: "Cheese", Price: decimal.RequireFromString("1.50"), Available: true}
	s.bacon = tables.Item{ID: uuid.New(), Name: "Bacon", Price: decimal.RequireFromString("3.00"), Available: true}
	s.ketchup = tables.Item{ID: uuid.New(), Name: "Ketchup", Price: decimal.RequireFromString("0.50"), Available: true}

	products := memory.NewProductRepository(s.burger, s.fries)
	items := memory.NewItemRepository(s.cheese, s.bacon, s.ketchup)
	productItems := memory.NewProductItemRepository(
		tables.ProductItem{ProductID: s.burger.ID, ItemID: s.cheese.ID, Quantity: 1, Customizable: true},
		tables.ProductItem{ProductID: s.burger.ID, ItemID: s.bacon.ID, Quantity: 1, Essential: true, Customizable: false},
	)

	s.orders = memory.NewOrderRepository()
	s.notifier = &memory.Notifier{}
	s.service = services.NewOrderService(gecho.NewDefaultLogger(), s.orders, products, items, productItems, s.notifier)
}

func (s *OrderServiceSuite) line(productID uuid.UUID, quantity int, customizations ...structs.CreateOrderItemCustomizationRequest) structs.CreateOrderItemRequest {
	return structs.CreateOrderItemRequest{
		ProductId:     productID,
		Title:         "line",
		Quantity:      quantity,
		Price:         s.burgerPrice,
		CustomerItems: customizations,
	}
}

func custom(itemID uuid.UUID, title string, quantity int) structs.CreateOrderItemCustomizationRequest {
	return structs.CreateOrderItemCustomizationRequest{
		ItemId:   itemID,
		Title:    title,
		Quantity: quantity,
		Price:    decimal.RequireFromString("1.50"),
	}
}

func request(lines ...structs.CreateOrderItemRequest) *structs.CreateOrderRequest {
	return &structs.CreateOrderRequest{
		Amount: decimal.RequireFromString("31.40"),
		Items:  lines,
	}
}

func (s *OrderServiceSuite) TestCreateOrder_HappyPath() {
	order, err := s.service.CreateOrder(s.ctx, request(
		s.line(s.burger.ID, 1, custom(s.cheese.ID, "Extra cheese", 1)),
	))
	s.Require().NoError(err)
	s.Require().NotNil(order)

	s.Equal(tables.OrderStatusPending, order.Status)
	s.Require().Len(order.Items, 1)
	s.Require().Len(order.Items[0].Customizations, 1)
	s.True(s.burgerPrice.Equal(order.Items[0].Price))
	s.Equal(s.cheese.ID, order.Items[0].Customizations[0].ItemId)

	s.Len(s.orders.CreateCalls(), 1)
	s.Equal([]uuid.UUID{order.Id}, s.notifier.Created())
}

func (s *OrderServiceSuite) TestCreateOrder_MultiItem() {
	order, err := s.service.CreateOrder(s.ctx, request(
		s.line(s.fries.ID, 2),
		s.line(s.burger.ID, 1, custom(s.cheese.ID, "Extra cheese", 1)),
	))
	s.Require().NoError(err)

	s.Require().Len(order.Items, 2)
	s.Empty(order.Items[0].Customizations)
	s.Len(order.Items[1].Customizations, 1)
	s.Equal(s.fries.ID, order.Items[0].ProductId)
	s.Equal(s.burger.ID, order.Items[1].ProductId)
}

func (s *OrderServiceSuite) TestCreateOrder_EmptyItems() {
	order, err := s.service.CreateOrder(s.ctx, request())
	s.Require().NoError(err)
	s.Empty(order.Items)
}

func (s *OrderServiceSuite) TestCreateOrder_BlankTitlesFallBackToCatalogNames() {
	req := request(s.line(s.burger.ID, 1, custom(s.cheese.ID, "", 1)))
	req.Items[0].Title = ""

	order, err := s.service.CreateOrder(s.ctx, req)
	s.Require().NoError(err)

	s.Equal("Burger", order.Items[0].Title)
	s.Equal("Cheese", order.Items[0].Customizations[0].Title)

	// the caller's request is not rewritten
	s.Empty(req.Items[0].Title)
	s.Empty(req.Items[0].CustomerItems[0].Title)
}

func (s *OrderServiceSuite) TestCreateOrder_Rejections() {
	missing := uuid.New()

	testCases := []struct {
		name    string
		req     *structs.CreateOrderRequest
		kind    error
		message string
	}{
		{
			name:    "zero item quantity",
			req:     request(s.line(s.burger.ID, 0)),
			kind:    lib.ErrBadRequest,
			message: "invalid quantity for item #0",
		},
		{
			name:    "negative quantity on a later item",
			req:     request(s.line(s.fries.ID, 1), s.line(s.fries.ID, -3)),
			kind:    lib.ErrBadRequest,
			message: "invalid quantity for item #1",
		},
		{
			name:    "zero customization quantity with valid item quantity",
			req:     request(s.line(s.burger.ID, 2, custom(s.cheese.ID, "Extra cheese", 1), custom(s.cheese.ID, "More cheese", 0))),
			kind:    lib.ErrBadRequest,
			message: "invalid quantity for customization #1 of item #0",
		},
		{
			name:    "quantities are checked before products are resolved",
			req:     request(s.line(missing, 1), s.line(s.burger.ID, 0)),
			kind:    lib.ErrBadRequest,
			message: "invalid quantity for item #1",
		},
		{
			name:    "unknown product",
			req:     request(s.line(missing, 1, custom(missing, "Ghost", 1))),
			kind:    lib.ErrNotFound,
			message: "order-item's product not found",
		},
		{
			name:    "customization on a non customizable product",
			req:     request(s.line(s.fries.ID, 1, custom(missing, "Ghost", 1))),
			kind:    lib.ErrBadRequest,
			message: "product does not allow customization",
		},
		{
			name:    "unknown customization item",
			req:     request(s.line(s.burger.ID, 1, custom(missing, "Ghost", 1))),
			kind:    lib.ErrNotFound,
			message: "customization item not found",
		},
		{
			name:    "item not linked to the product",
			req:     request(s.line(s.burger.ID, 1, custom(s.ketchup.ID, "Ketchup", 1))),
			kind:    lib.ErrBadRequest,
			message: "item does not belong to the product and cannot be customized",
		},
		{
			name:    "linked item that is not customizable",
			req:     request(s.line(s.burger.ID, 1, custom(s.bacon.ID, "Double bacon", 1))),
			kind:    lib.ErrBadRequest,
			message: "this Double bacon is not customizable for the product",
		},
		{
			name:    "first failing item wins",
			req:     request(s.line(s.burger.ID, 1, custom(s.cheese.ID, "Extra cheese", 1)), s.line(missing, 1)),
			kind:    lib.ErrNotFound,
			message: "order-item's product not found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			for attempt := 0; attempt < 3; attempt++ {
				order, err := s.service.CreateOrder(s.ctx, tc.req)
				s.Require().Error(err)
				s.Nil(order)
				s.True(errors.Is(err, tc.kind), "unexpected error kind: %v", err)
				s.Equal(tc.message, lib.PublicMessage(err, ""))
			}

			s.Empty(s.orders.CreateCalls())
			s.Empty(s.notifier.Created())
		})
	}
}

func (s *OrderServiceSuite) TestCreateOrder_RepositoryErrorsPropagate() {
	conflict := lib.Conflict("resource already exists")
	s.orders.CreateErr = conflict

	_, err := s.service.CreateOrder(s.ctx, request(s.line(s.fries.ID, 1)))
	s.Require().Error(err)
	s.Same(conflict, err)
	s.Len(s.orders.CreateCalls(), 1)
	s.Empty(s.notifier.Created())
}

func (s *OrderServiceSuite) TestFindOrder() {
	created, err := s.service.CreateOrder(s.ctx, request(s.line(s.fries.ID, 1)))
	s.Require().NoError(err)

	found, err := s.service.FindOrder(s.ctx, created.Id)
	s.Require().NoError(err)
	s.Equal(created.Id, found.Id)

	_, err = s.service.FindOrder(s.ctx, uuid.New())
	s.True(lib.IsNotFound(err))
	s.Equal("Order not found", lib.PublicMessage(err, ""))
}

func (s *OrderServiceSuite) TestUpdateOrderStatus() {
	created, err := s.service.CreateOrder(s.ctx, request(s.line(s.fries.ID, 1)))
	s.Require().NoError(err)

	// any status may follow any other
	for _, status := range []tables.OrderStatus{tables.OrderStatusDone, tables.OrderStatusPending, tables.OrderStatusCanceled} {
		updated, err := s.service.UpdateOrderStatus(s.ctx, created.Id, status)
		s.Require().NoError(err)
		s.Equal(status, updated.Status)
	}

	changes := s.notifier.StatusChanges()
	s.Require().Len(changes, 3)
	s.Equal(tables.OrderStatusPending, changes[0].Previous)
	s.Equal(tables.OrderStatusDone, changes[0].Current)

	_, err = s.service.UpdateOrderStatus(s.ctx, created.Id, tables.OrderStatus("SHIPPED"))
	s.True(lib.IsBadRequest(err))

	_, err = s.service.UpdateOrderStatus(s.ctx, uuid.New(), tables.OrderStatusPaid)
	s.True(lib.IsNotFound(err))
}

func (s *OrderServiceSuite) TestDeleteOrder() {
	created, err := s.service.CreateOrder(s.ctx, request(s.line(s.fries.ID, 1)))
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteOrder(s.ctx, created.Id))

	_, err = s.service.FindOrder(s.ctx, created.Id)
	s.True(lib.IsNotFound(err))

	s.True(lib.IsNotFound(s.service.DeleteOrder(s.ctx, created.Id)))
}

func (s *OrderServiceSuite) TestListOrders() {
	for i := 0; i < 3; i++ {
		_, err := s.service.CreateOrder(s.ctx, request(s.line(s.fries.ID, 1)))
		s.Require().NoError(err)
	}

	result, err := s.service.ListOrders(s.ctx, structs.OrderListFilters{}, 1, 2)
	s.Require().NoError(err)
	s.Len(result.Items, 2)
	s.Equal(3, result.Meta.Total)

	bogus := tables.OrderStatus("LOST")
	_, err = s.service.ListOrders(s.ctx, structs.OrderListFilters{Status: &bogus}, 1, 10)
	s.True(lib.IsBadRequest(err))
}

func TestCreateOrder_NilNotifier(t *testing.T) {
	product := tables.Product{ID: uuid.New(), Name: "Soup", Amount: decimal.NewFromInt(5)}
	orders := memory.NewOrderRepository()
	service := services.NewOrderService(
		gecho.NewDefaultLogger(),
		orders,
		memory.NewProductRepository(product),
		memory.NewItemRepository(),
		memory.NewProductItemRepository(),
		nil,
	)

	order, err := service.CreateOrder(context.Background(), &structs.CreateOrderRequest{
		Items: []structs.CreateOrderItemRequest{{ProductId: product.ID, Quantity: 1, Price: product.Amount}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Soup", order.Items[0].Title)
}
