package services

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CategoryService struct {
	logger     *gecho.Logger
	categories CategoryRepository
}

func NewCategoryService(logger *gecho.Logger, categories CategoryRepository) *CategoryService {
	return &CategoryService{
		logger:     logger,
		categories: categories,
	}
}

func (cs *CategoryService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*tables.Category, error) {
	existing, err := cs.categories.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, lib.Conflict("category %s already exists", req.Name)
	}

	category := &tables.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := cs.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	cs.logger.Info("Category created", gecho.Field("category_id", category.ID), gecho.Field("name", category.Name))
	return category, nil
}

func (cs *CategoryService) FindCategory(ctx context.Context, id uuid.UUID) (*tables.Category, error) {
	category, err := cs.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, lib.NotFound("Category not found")
	}
	return category, nil
}

func (cs *CategoryService) ListCategories(ctx context.Context, page, perPage int) (*database.PaginationResult[tables.Category], error) {
	return cs.categories.FindAllPaginated(ctx, page, perPage)
}

func (cs *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) (*tables.Category, error) {
	category, err := cs.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := cs.categories.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, lib.Conflict("category %s already exists", req.Name)
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := cs.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to remove a category that still has products
func (cs *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := cs.FindCategory(ctx, id)
	if err != nil {
		return err
	}

	count, err := cs.categories.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return lib.Conflict("category still has %d product(s)", count)
	}

	if err := cs.categories.Delete(ctx, category); err != nil {
		return err
	}

	cs.logger.Info("Category deleted", gecho.Field("category_id", id))
	return nil
}
