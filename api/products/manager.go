package products

import (
	"foodmenu_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger             *gecho.Logger
	productService     *services.ProductService
	productItemService *services.ProductItemService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	productItemService *services.ProductItemService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:             logger,
		productService:     productService,
		productItemService: productItemService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", prm.CreateProduct)
		r.Get("/", prm.FetchAllProducts)
		r.Get("/{id}", prm.FetchProductByID)
		r.Get("/{id}/items", prm.FetchProductItems)
		r.Put("/{id}", prm.UpdateProduct)
		r.Delete("/{id}", prm.DeleteProduct)
	})
}
