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

// ProductItemService manages which items make up a product and which of them may be customized
type ProductItemService struct {
	logger       *gecho.Logger
	productItems ProductItemRepository
	products     ProductRepository
	items        ItemRepository
}

func NewProductItemService(logger *gecho.Logger, productItems ProductItemRepository, products ProductRepository, items ItemRepository) *ProductItemService {
	return &ProductItemService{
		logger:       logger,
		productItems: productItems,
		products:     products,
		items:        items,
	}
}

func (pis *ProductItemService) CreateProductItem(ctx context.Context, req *structs.CreateProductItemRequest) (*tables.ProductItem, error) {
	product, err := pis.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, lib.NotFound("Product not found")
	}

	item, err := pis.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, lib.NotFound("Item not found")
	}

	existing, err := pis.productItems.FindByProductAndItem(ctx, req.ProductID, req.ItemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, lib.Conflict("item %s is already linked to product %s", item.Name, product.Name)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	productItem := &tables.ProductItem{
		ProductID:    req.ProductID,
		ItemID:       req.ItemID,
		Essential:    req.Essential,
		Quantity:     quantity,
		Customizable: req.Customizable,
	}
	if err := pis.productItems.Create(ctx, productItem); err != nil {
		return nil, err
	}

	pis.logger.Info("Item linked to product",
		gecho.Field("product_item_id", productItem.ID),
		gecho.Field("product_id", product.ID),
		gecho.Field("item_id", item.ID),
	)
	return productItem, nil
}

func (pis *ProductItemService) FindProductItem(ctx context.Context, id uuid.UUID) (*tables.ProductItem, error) {
	productItem, err := pis.productItems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if productItem == nil {
		return nil, lib.NotFound("Product item not found")
	}
	return productItem, nil
}

func (pis *ProductItemService) ListProductItems(ctx context.Context, page, perPage int) (*database.PaginationResult[tables.ProductItem], error) {
	return pis.productItems.FindAllPaginated(ctx, page, perPage)
}

func (pis *ProductItemService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]tables.ProductItem, error) {
	product, err := pis.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, lib.NotFound("Product not found")
	}
	return pis.productItems.FindByProductID(ctx, productID)
}

func (pis *ProductItemService) UpdateProductItem(ctx context.Context, id uuid.UUID, req *structs.UpdateProductItemRequest) (*tables.ProductItem, error) {
	productItem, err := pis.FindProductItem(ctx, id)
	if err != nil {
		return nil, err
	}

	productItem.Essential = req.Essential
	productItem.Quantity = req.Quantity
	productItem.Customizable = req.Customizable
	if err := pis.productItems.Update(ctx, productItem); err != nil {
		return nil, err
	}
	return productItem, nil
}

func (pis *ProductItemService) DeleteProductItem(ctx context.Context, id uuid.UUID) error {
	productItem, err := pis.FindProductItem(ctx, id)
	if err != nil {
		return err
	}
	return pis.productItems.Delete(ctx, productItem)
}
