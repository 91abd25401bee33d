package api

import (
	"foodmenu_server/api/categories"
	"foodmenu_server/api/health"
	"foodmenu_server/api/items"
	"foodmenu_server/api/orders"
	"foodmenu_server/api/productitems"
	"foodmenu_server/api/products"
	"foodmenu_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	healthRoutes      *health.HealthRoutesManager
	categoryRoutes    *categories.CategoryRoutesManager
	itemRoutes        *items.ItemRoutesManager
	productRoutes     *products.ProductRoutesManager
	productItemRoutes *productitems.ProductItemRoutesManager
	orderRoutes       *orders.OrderRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager) *routerManager {
	return &routerManager{
		healthRoutes:      health.NewHealthRoutesManager(logger, sm.HealthService),
		categoryRoutes:    categories.NewCategoryRoutesManager(logger, sm.CategoryService),
		itemRoutes:        items.NewItemRoutesManager(logger, sm.ItemService),
		productRoutes:     products.NewProductRoutesManager(logger, sm.ProductService, sm.ProductItemService),
		productItemRoutes: productitems.NewProductItemRoutesManager(logger, sm.ProductItemService),
		orderRoutes:       orders.NewOrderRoutesManager(logger, sm.OrderService),
	}
}

// RegisterOperationalRoutes mounts the unauthenticated health and metrics endpoints
func (rm *routerManager) RegisterOperationalRoutes(r chi.Router) {
	rm.healthRoutes.RegisterRoutes(r)
}

// RegisterAPIRoutes mounts the resource routes; the caller wraps them in the auth gate
func (rm *routerManager) RegisterAPIRoutes(r chi.Router) {
	rm.categoryRoutes.RegisterRoutes(r)
	rm.itemRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.productItemRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
}
