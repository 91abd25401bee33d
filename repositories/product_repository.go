package repositories

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ProductRepository struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewProductRepository(logger *gecho.Logger, db *database.DB) *ProductRepository {
	return &ProductRepository{
		logger: logger,
		db:     db,
	}
}

func (pr *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	product, err := database.FindByID[tables.Product](ctx, pr.db, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return product, nil
}

func (pr *ProductRepository) FindByName(ctx context.Context, name string) (*tables.Product, error) {
	product, err := database.Query[tables.Product](pr.db).Where("name", name).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return product, nil
}

func (pr *ProductRepository) FindAllPaginated(ctx context.Context, filters structs.ProductListFilters, page, perPage int) (*database.PaginationResult[tables.Product], error) {
	query := database.Query[tables.Product](pr.db)

	if filters.CategoryID != nil {
		query = query.Where("category_id", *filters.CategoryID)
	}
	if filters.Available != nil {
		query = query.Where("available", *filters.Available)
	}
	if filters.Customizable != nil {
		query = query.Where("customizable", *filters.Customizable)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		query = query.WhereContains("name", search)
	}

	result, err := database.Paginate(ctx, query.OrderBy("name", database.ASC), page, perPage)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

func (pr *ProductRepository) Create(ctx context.Context, product *tables.Product) error {
	now := time.Now()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.Amount = product.Amount.Round(2)
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := database.Query[tables.Product](pr.db).Insert(ctx, product); err != nil {
		pr.logger.Error("Failed to create product", gecho.Field("error", err), gecho.Field("name", product.Name))
		return lib.MapPgError(err)
	}
	return nil
}

func (pr *ProductRepository) Update(ctx context.Context, product *tables.Product) error {
	product.Amount = product.Amount.Round(2)
	product.UpdatedAt = time.Now()

	affected, err := database.Query[tables.Product](pr.db).
		Where("id", product.ID).
		Update(ctx, map[string]any{
			"name":         product.Name,
			"description":  product.Description,
			"amount":       product.Amount,
			"image":        product.Image,
			"customizable": product.Customizable,
			"available":    product.Available,
			"category_id":  product.CategoryID,
			"updated_at":   product.UpdatedAt,
		})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.NotFound("Product not found")
	}
	return nil
}

// Delete fails with a conflict while orders still reference the product
func (pr *ProductRepository) Delete(ctx context.Context, product *tables.Product) error {
	affected, err := database.Query[tables.Product](pr.db).Where("id", product.ID).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.NotFound("Product not found")
	}
	return nil
}
