package productitems

import (
	"foodmenu_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductItemRoutesManager struct {
	logger             *gecho.Logger
	productItemService *services.ProductItemService
}

func NewProductItemRoutesManager(logger *gecho.Logger, productItemService *services.ProductItemService) *ProductItemRoutesManager {
	return &ProductItemRoutesManager{
		logger:             logger,
		productItemService: productItemService,
	}
}

func (pirm *ProductItemRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/product-items", func(r chi.Router) {
		r.Post("/", pirm.CreateProductItem)
		r.Get("/", pirm.ListProductItems)
		r.Get("/{id}", pirm.GetProductItem)
		r.Put("/{id}", pirm.UpdateProductItem)
		r.Delete("/{id}", pirm.DeleteProductItem)
	})
}
