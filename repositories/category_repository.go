package repositories

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/lib"
	"foodmenu_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CategoryRepository struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCategoryRepository(logger *gecho.Logger, db *database.DB) *CategoryRepository {
	return &CategoryRepository{
		logger: logger,
		db:     db,
	}
}

func (cr *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*tables.Category, error) {
	category, err := database.FindByID[tables.Category](ctx, cr.db, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return category, nil
}

func (cr *CategoryRepository) FindByName(ctx context.Context, name string) (*tables.Category, error) {
	category, err := database.Query[tables.Category](cr.db).Where("name", name).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return category, nil
}

func (cr *CategoryRepository) FindAllPaginated(ctx context.Context, page, perPage int) (*database.PaginationResult[tables.Category], error) {
	query := database.Query[tables.Category](cr.db).OrderBy("name", database.ASC)

	result, err := database.Paginate(ctx, query, page, perPage)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

func (cr *CategoryRepository) CountProducts(ctx context.Context, id uuid.UUID) (int, error) {
	count, err := database.Query[tables.Product](cr.db).Where("category_id", id).Count(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return count, nil
}

func (cr *CategoryRepository) Create(ctx context.Context, category *tables.Category) error {
	now := time.Now()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	category.CreatedAt = now
	category.UpdatedAt = now

	if _, err := database.Query[tables.Category](cr.db).Insert(ctx, category); err != nil {
		cr.logger.Error("Failed to create category", gecho.Field("error", err), gecho.Field("name", category.Name))
		return lib.MapPgError(err)
	}
	return nil
}

func (cr *CategoryRepository) Update(ctx context.Context, category *tables.Category) error {
	category.UpdatedAt = time.Now()

	affected, err := database.Query[tables.Category](cr.db).
		Where("id", category.ID).
		Update(ctx, map[string]any{
			"name":        category.Name,
			"description": category.Description,
			"updated_at":  category.UpdatedAt,
		})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.NotFound("Category not found")
	}
	return nil
}

func (cr *CategoryRepository) Delete(ctx context.Context, category *tables.Category) error {
	affected, err := database.Query[tables.Category](cr.db).Where("id", category.ID).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.NotFound("Category not found")
	}
	return nil
}
