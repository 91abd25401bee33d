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

type ItemService struct {
	logger *gecho.Logger
	items  ItemRepository
}

func NewItemService(logger *gecho.Logger, items ItemRepository) *ItemService {
	return &ItemService{
		logger: logger,
		items:  items,
	}
}

func (is *ItemService) CreateItem(ctx context.Context, req *structs.ItemRequest) (*tables.Item, error) {
	existing, err := is.items.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, lib.Conflict("item %s already exists", req.Name)
	}

	item := &tables.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Available:   boolOrDefault(req.Available, true),
	}
	if err := is.items.Create(ctx, item); err != nil {
		return nil, err
	}

	is.logger.Info("Item created", gecho.Field("item_id", item.ID), gecho.Field("name", item.Name))
	return item, nil
}

func (is *ItemService) FindItem(ctx context.Context, id uuid.UUID) (*tables.Item, error) {
	item, err := is.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, lib.NotFound("Item not found")
	}
	return item, nil
}

func (is *ItemService) ListItems(ctx context.Context, page, perPage int) (*database.PaginationResult[tables.Item], error) {
	return is.items.FindAllPaginated(ctx, page, perPage)
}

func (is *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, req *structs.ItemRequest) (*tables.Item, error) {
	item, err := is.FindItem(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := is.items.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, lib.Conflict("item %s already exists", req.Name)
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Image = req.Image
	item.Available = boolOrDefault(req.Available, item.Available)
	if err := is.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (is *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := is.FindItem(ctx, id)
	if err != nil {
		return err
	}
	if err := is.items.Delete(ctx, item); err != nil {
		return err
	}

	is.logger.Info("Item deleted", gecho.Field("item_id", id))
	return nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
