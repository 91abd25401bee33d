package categories

import (
	"foodmenu_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CategoryRoutesManager struct {
	logger          *gecho.Logger
	categoryService *services.CategoryService
}

func NewCategoryRoutesManager(logger *gecho.Logger, categoryService *services.CategoryService) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:          logger,
		categoryService: categoryService,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", crm.CreateCategory)
		r.Get("/", crm.ListCategories)
		r.Get("/{id}", crm.GetCategory)
		r.Put("/{id}", crm.UpdateCategory)
		r.Delete("/{id}", crm.DeleteCategory)
	})
}
