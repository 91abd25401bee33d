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

type ItemRepository struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewItemRepository(logger *gecho.Logger, db *database.DB) *ItemRepository {
	return &ItemRepository{
		logger: logger,
		db:     db,
	}
}

func (ir *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*tables.Item, error) {
	item, err := database.FindByID[tables.Item](ctx, ir.db, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return item, nil
}

func (ir *ItemRepository) FindByName(ctx context.Context, name string) (*tables.Item, error) {
	item, err := database.Query[tables.Item](ir.db).Where("name", name).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return item, nil
}

func (ir *ItemRepository) FindAllPaginated(ctx context.Context, page, perPage int) (*database.PaginationResult[tables.Item], error) {
	query := database.Query[tables.Item](ir.db).OrderBy("name", database.ASC)

	result, err := database.Paginate(ctx, query, page, perPage)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

func (ir *ItemRepository) Create(ctx context.Context, item *tables.Item) error {
	now := time.Now()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.Price = item.Price.Round(2)
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := database.Query[tables.Item](ir.db).Insert(ctx, item); err != nil {
		ir.logger.Error("Failed to create item", gecho.Field("error", err), gecho.Field("name", item.Name))
		return lib.MapPgError(err)
	}
	return nil
}

func (ir *ItemRepository) Update(ctx context.Context, item *tables.Item) error {
	item.Price = item.Price.Round(2)
	item.UpdatedAt = time.Now()

	affected, err := database.Query[tables.Item](ir.db).
		Where("id", item.ID).
		Update(ctx, map[string]any{
			"name":        item.Name,
			"description": item.Description,
			"price":       item.Price,
			"image":       item.Image,
			"available":   item.Available,
			"updated_at":  item.UpdatedAt,
		})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.NotFound("Item not found")
	}
	return nil
}

func (ir *ItemRepository) Delete(ctx context.Context, item *tables.Item) error {
	affected, err := database.Query[tables.Item](ir.db).Where("id", item.ID).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.NotFound("Item not found")
	}
	return nil
}
