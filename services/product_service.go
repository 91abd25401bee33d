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

type ProductService struct {
	logger     *gecho.Logger
	products   ProductRepository
	categories CategoryRepository
}

func NewProductService(logger *gecho.Logger, products ProductRepository, categories CategoryRepository) *ProductService {
	return &ProductService{
		logger:     logger,
		products:   products,
		categories: categories,
	}
}

func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*tables.Product, error) {
	existing, err := ps.products.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, lib.Conflict("product %s already exists", req.Name)
	}

	if err := ps.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &tables.Product{
		Name:         req.Name,
		Description:  req.Description,
		Amount:       req.Amount,
		Image:        req.Image,
		Customizable: req.Customizable,
		Available:    boolOrDefault(req.Available, true),
		CategoryID:   req.CategoryID,
	}
	if err := ps.products.Create(ctx, product); err != nil {
		return nil, err
	}

	ps.logger.Info("Product created", gecho.Field("product_id", product.ID), gecho.Field("name", product.Name))
	return product, nil
}

func (ps *ProductService) FindProduct(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	product, err := ps.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, lib.NotFound("Product not found")
	}
	return product, nil
}

func (ps *ProductService) ListProducts(ctx context.Context, filters structs.ProductListFilters, page, perPage int) (*database.PaginationResult[tables.Product], error) {
	return ps.products.FindAllPaginated(ctx, filters, page, perPage)
}

// UpdateProduct conflicts only when another product already uses the name
func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	product, err := ps.FindProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := ps.products.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, lib.Conflict("product %s already exists", req.Name)
	}

	if err := ps.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Amount = req.Amount
	product.Image = req.Image
	product.Customizable = req.Customizable
	product.Available = boolOrDefault(req.Available, product.Available)
	product.CategoryID = req.CategoryID
	if err := ps.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := ps.FindProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := ps.products.Delete(ctx, product); err != nil {
		return err
	}

	ps.logger.Info("Product deleted", gecho.Field("product_id", id))
	return nil
}

func (ps *ProductService) ensureCategory(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	category, err := ps.categories.FindByID(ctx, *id)
	if err != nil {
		return err
	}
	if category == nil {
		return lib.NotFound("Category not found")
	}
	return nil
}
