package services

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/messaging"
	"foodmenu_server/repositories"
	"foodmenu_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService         *AuthService
	CacheService        *CacheService
	HealthService       *HealthService
	NotificationService *NotificationService
	CategoryService     *CategoryService
	ItemService         *ItemService
	ProductService      *ProductService
	ProductItemService  *ProductItemService
	OrderService        *OrderService
}

// NewServiceManager wires every service on top of the bun repositories. broker may be nil when messaging is off.
func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB, broker *messaging.Client) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)

	categoryRepo := repositories.NewCategoryRepository(logger, db)
	productRepo := NewCachedProductRepository(logger, repositories.NewProductRepository(logger, db), cacheService)
	itemRepo := NewCachedItemRepository(logger, repositories.NewItemRepository(logger, db), cacheService)
	productItemRepo := repositories.NewProductItemRepository(logger, db)
	orderRepo := repositories.NewOrderRepository(logger, db)

	var publisher EventPublisher
	checks := map[string]HealthCheck{}
	if broker != nil {
		publisher = broker
		checks["broker"] = func(context.Context) error { return broker.Ping() }
	}
	if cacheService.Enabled() {
		checks["cache"] = cacheService.Ping
	}

	var mailer OrderMailer
	if cfg.Email.Enabled {
		mailer = NewEmailService(logger, cfg)
	}

	notificationService := NewNotificationService(logger, publisher, mailer)

	return &ServiceManager{
		AuthService:         NewAuthService(logger, cfg),
		CacheService:        cacheService,
		HealthService:       NewHealthService(logger, db.Health, checks),
		NotificationService: notificationService,
		CategoryService:     NewCategoryService(logger, categoryRepo),
		ItemService:         NewItemService(logger, itemRepo),
		ProductService:      NewProductService(logger, productRepo, categoryRepo),
		ProductItemService:  NewProductItemService(logger, productItemRepo, productRepo, itemRepo),
		OrderService:        NewOrderService(logger, orderRepo, productRepo, itemRepo, productItemRepo, notificationService),
	}
}
