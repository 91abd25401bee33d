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

type ProductItemRepository struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewProductItemRepository(logger *gecho.Logger, db *database.DB) *ProductItemRepository {
	return &ProductItemRepository{
		logger: logger,
		db:     db,
	}
}

func (pir *ProductItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*tables.ProductItem, error) {
	productItem, err := database.FindByID[tables.ProductItem](ctx, pir.db, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return productItem, nil
}

func (pir *ProductItemRepository) FindByProductAndItem(ctx context.Context, productID, itemID uuid.UUID) (*tables.ProductItem, error) {
	productItem, err := database.Query[tables.ProductItem](pir.db).
		Where("product_id", productID).
		Where("item_id", itemID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return productItem, nil
}

func (pir *ProductItemRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]tables.ProductItem, error) {
	productItems, err := database.Query[tables.ProductItem](pir.db).
		Where("product_id", productID).
		OrderBy("created_at", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if productItems == nil {
		productItems = []tables.ProductItem{}
	}
	return productItems, nil
}

func (pir *ProductItemRepository) FindAllPaginated(ctx context.Context, page, perPage int) (*database.PaginationResult[tables.ProductItem], error) {
	query := database.Query[tables.ProductItem](pir.db).OrderBy("created_at", database.DESC)

	result, err := database.Paginate(ctx, query, page, perPage)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

func (pir *ProductItemRepository) Create(ctx context.Context, productItem *tables.ProductItem) error {
	now := time.Now()
	if productItem.ID == uuid.Nil {
		productItem.ID = uuid.New()
	}
	if productItem.Quantity <= 0 {
		productItem.Quantity = 1
	}
	productItem.CreatedAt = now
	productItem.UpdatedAt = now

	if _, err := database.Query[tables.ProductItem](pir.db).Insert(ctx, productItem); err != nil {
		pir.logger.Error("Failed to link item to product",
			gecho.Field("error", err),
			gecho.Field("product_id", productItem.ProductID),
			gecho.Field("item_id", productItem.ItemID),
		)
		return lib.MapPgError(err)
	}
	return nil
}

func (pir *ProductItemRepository) Update(ctx context.Context, productItem *tables.ProductItem) error {
	productItem.UpdatedAt = time.Now()

	affected, err := database.Query[tables.ProductItem](pir.db).
		Where("id", productItem.ID).
		Update(ctx, map[string]any{
			"essential":    productItem.Essential,
			"quantity":     productItem.Quantity,
			"customizable": productItem.Customizable,
			"updated_at":   productItem.UpdatedAt,
		})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.NotFound("Product item not found")
	}
	return nil
}

func (pir *ProductItemRepository) Delete(ctx context.Context, productItem *tables.ProductItem) error {
	affected, err := database.Query[tables.ProductItem](pir.db).Where("id", productItem.ID).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.NotFound("Product item not found")
	}
	return nil
}
