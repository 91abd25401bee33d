package services

import (
	"context"
	"foodmenu_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CachedProductRepository reads products through the cache and drops the entry on every write.
// Cache failures are logged and fall back to the wrapped repository.
type CachedProductRepository struct {
	ProductRepository
	cache  *CacheService
	logger *gecho.Logger
}

func NewCachedProductRepository(logger *gecho.Logger, repo ProductRepository, cache *CacheService) *CachedProductRepository {
	return &CachedProductRepository{ProductRepository: repo, cache: cache, logger: logger}
}

func (r *CachedProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	cached, err := r.cache.GetProduct(ctx, id)
	if err != nil {
		r.logger.Warn("Failed to read product from cache", gecho.Field("error", err), gecho.Field("id", id))
	} else if cached != nil {
		return cached, nil
	}

	product, err := r.ProductRepository.FindByID(ctx, id)
	if err != nil || product == nil {
		return product, err
	}

	if err := r.cache.SetProduct(ctx, product); err != nil {
		r.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("id", id))
	}
	return product, nil
}

func (r *CachedProductRepository) Update(ctx context.Context, product *tables.Product) error {
	if err := r.ProductRepository.Update(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, product.ID)
	return nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, product *tables.Product) error {
	if err := r.ProductRepository.Delete(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, product.ID)
	return nil
}

func (r *CachedProductRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.InvalidateProduct(ctx, id); err != nil {
		r.logger.Warn("Failed to invalidate cached product", gecho.Field("error", err), gecho.Field("id", id))
	}
}

// CachedItemRepository is the item counterpart of CachedProductRepository
type CachedItemRepository struct {
	ItemRepository
	cache  *CacheService
	logger *gecho.Logger
}

func NewCachedItemRepository(logger *gecho.Logger, repo ItemRepository, cache *CacheService) *CachedItemRepository {
	return &CachedItemRepository{ItemRepository: repo, cache: cache, logger: logger}
}

func (r *CachedItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*tables.Item, error) {
	cached, err := r.cache.GetItem(ctx, id)
	if err != nil {
		r.logger.Warn("Failed to read item from cache", gecho.Field("error", err), gecho.Field("id", id))
	} else if cached != nil {
		return cached, nil
	}

	item, err := r.ItemRepository.FindByID(ctx, id)
	if err != nil || item == nil {
		return item, err
	}

	if err := r.cache.SetItem(ctx, item); err != nil {
		r.logger.Warn("Failed to cache item", gecho.Field("error", err), gecho.Field("id", id))
	}
	return item, nil
}

func (r *CachedItemRepository) Update(ctx context.Context, item *tables.Item) error {
	if err := r.ItemRepository.Update(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID)
	return nil
}

func (r *CachedItemRepository) Delete(ctx context.Context, item *tables.Item) error {
	if err := r.ItemRepository.Delete(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID)
	return nil
}

func (r *CachedItemRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.InvalidateItem(ctx, id); err != nil {
		r.logger.Warn("Failed to invalidate cached item", gecho.Field("error", err), gecho.Field("id", id))
	}
}
