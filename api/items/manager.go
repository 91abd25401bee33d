package items

import (
	"foodmenu_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ItemRoutesManager struct {
	logger      *gecho.Logger
	itemService *services.ItemService
}

func NewItemRoutesManager(logger *gecho.Logger, itemService *services.ItemService) *ItemRoutesManager {
	return &ItemRoutesManager{
		logger:      logger,
		itemService: itemService,
	}
}

func (irm *ItemRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/items", func(r chi.Router) {
		r.Post("/", irm.CreateItem)
		r.Get("/", irm.ListItems)
		r.Get("/{id}", irm.GetItem)
		r.Put("/{id}", irm.UpdateItem)
		r.Delete("/{id}", irm.DeleteItem)
	})
}
