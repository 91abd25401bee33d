// Package memory holds map backed repositories used by service and handler tests.
package memory

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// paginate slices an already sorted list the way the SQL repositories do
func paginate[T any](all []T, page, perPage int) *database.PaginationResult[T] {
	page, perPage = database.NormalizePage(page, perPage)

	start := (page - 1) * perPage
	if start > len(all) {
		start = len(all)
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}

	items := make([]T, end-start)
	copy(items, all[start:end])
	return database.NewPaginationResult(items, page, perPage, len(all))
}

type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]tables.Category
	products   *ProductRepository
}

// NewCategoryRepository counts products through the given product repository, which may be nil
func NewCategoryRepository(products *ProductRepository) *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[uuid.UUID]tables.Category),
		products:   products,
	}
}

func (r *CategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*tables.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *CategoryRepository) FindByName(_ context.Context, name string) (*tables.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepository) FindAllPaginated(_ context.Context, page, perPage int) (*database.PaginationResult[tables.Category], error) {
	r.mu.RLock()
	all := make([]tables.Category, 0, len(r.categories))
	for _, c := range r.categories {
		all = append(all, c)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, page, perPage), nil
}

func (r *CategoryRepository) CountProducts(_ context.Context, id uuid.UUID) (int, error) {
	if r.products == nil {
		return 0, nil
	}

	r.products.mu.RLock()
	defer r.products.mu.RUnlock()

	count := 0
	for _, p := range r.products.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			count++
		}
	}
	return count, nil
}

func (r *CategoryRepository) Create(_ context.Context, category *tables.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name {
			return lib.Conflict("resource already exists")
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	r.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) Update(_ context.Context, category *tables.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.ID]; !ok {
		return lib.NotFound("Category not found")
	}
	category.UpdatedAt = time.Now()
	r.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, category *tables.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.ID]; !ok {
		return lib.NotFound("Category not found")
	}
	delete(r.categories, category.ID)
	return nil
}

type ProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]tables.Product
}

func NewProductRepository(products ...tables.Product) *ProductRepository {
	r := &ProductRepository{products: make(map[uuid.UUID]tables.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *ProductRepository) FindByID(_ context.Context, id uuid.UUID) (*tables.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ProductRepository) FindByName(_ context.Context, name string) (*tables.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) FindAllPaginated(_ context.Context, filters structs.ProductListFilters, page, perPage int) (*database.PaginationResult[tables.Product], error) {
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	r.mu.RLock()
	all := make([]tables.Product, 0, len(r.products))
	for _, p := range r.products {
		if filters.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filters.CategoryID) {
			continue
		}
		if filters.Available != nil && p.Available != *filters.Available {
			continue
		}
		if filters.Customizable != nil && p.Customizable != *filters.Customizable {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		all = append(all, p)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, page, perPage), nil
}

func (r *ProductRepository) Create(_ context.Context, product *tables.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Name == product.Name {
			return lib.Conflict("resource already exists")
		}
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepository) Update(_ context.Context, product *tables.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return lib.NotFound("Product not found")
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, product *tables.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return lib.NotFound("Product not found")
	}
	delete(r.products, product.ID)
	return nil
}

type ItemRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]tables.Item
}

func NewItemRepository(items ...tables.Item) *ItemRepository {
	r := &ItemRepository{items: make(map[uuid.UUID]tables.Item)}
	for _, i := range items {
		r.items[i.ID] = i
	}
	return r
}

func (r *ItemRepository) FindByID(_ context.Context, id uuid.UUID) (*tables.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.items[id]; ok {
		return &i, nil
	}
	return nil, nil
}

func (r *ItemRepository) FindByName(_ context.Context, name string) (*tables.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, i := range r.items {
		if i.Name == name {
			return &i, nil
		}
	}
	return nil, nil
}

func (r *ItemRepository) FindAllPaginated(_ context.Context, page, perPage int) (*database.PaginationResult[tables.Item], error) {
	r.mu.RLock()
	all := make([]tables.Item, 0, len(r.items))
	for _, i := range r.items {
		all = append(all, i)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, page, perPage), nil
}

func (r *ItemRepository) Create(_ context.Context, item *tables.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, i := range r.items {
		if i.Name == item.Name {
			return lib.Conflict("resource already exists")
		}
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	r.items[item.ID] = *item
	return nil
}

func (r *ItemRepository) Update(_ context.Context, item *tables.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return lib.NotFound("Item not found")
	}
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *ItemRepository) Delete(_ context.Context, item *tables.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return lib.NotFound("Item not found")
	}
	delete(r.items, item.ID)
	return nil
}

type ProductItemRepository struct {
	mu    sync.RWMutex
	links map[uuid.UUID]tables.ProductItem
}

func NewProductItemRepository(links ...tables.ProductItem) *ProductItemRepository {
	r := &ProductItemRepository{links: make(map[uuid.UUID]tables.ProductItem)}
	for _, l := range links {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		r.links[l.ID] = l
	}
	return r
}

func (r *ProductItemRepository) FindByID(_ context.Context, id uuid.UUID) (*tables.ProductItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.links[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (r *ProductItemRepository) FindByProductAndItem(_ context.Context, productID, itemID uuid.UUID) (*tables.ProductItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.links {
		if l.ProductID == productID && l.ItemID == itemID {
			return &l, nil
		}
	}
	return nil, nil
}

func (r *ProductItemRepository) FindByProductID(_ context.Context, productID uuid.UUID) ([]tables.ProductItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links := []tables.ProductItem{}
	for _, l := range r.links {
		if l.ProductID == productID {
			links = append(links, l)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].CreatedAt.Before(links[j].CreatedAt) })
	return links, nil
}

func (r *ProductItemRepository) FindAllPaginated(_ context.Context, page, perPage int) (*database.PaginationResult[tables.ProductItem], error) {
	r.mu.RLock()
	all := make([]tables.ProductItem, 0, len(r.links))
	for _, l := range r.links {
		all = append(all, l)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, page, perPage), nil
}

func (r *ProductItemRepository) Create(_ context.Context, link *tables.ProductItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.links {
		if l.ProductID == link.ProductID && l.ItemID == link.ItemID {
			return lib.Conflict("resource already exists")
		}
	}
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	if link.Quantity <= 0 {
		link.Quantity = 1
	}
	link.CreatedAt = time.Now()
	link.UpdatedAt = link.CreatedAt
	r.links[link.ID] = *link
	return nil
}

func (r *ProductItemRepository) Update(_ context.Context, link *tables.ProductItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[link.ID]; !ok {
		return lib.NotFound("Product item not found")
	}
	link.UpdatedAt = time.Now()
	r.links[link.ID] = *link
	return nil
}

func (r *ProductItemRepository) Delete(_ context.Context, link *tables.ProductItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[link.ID]; !ok {
		return lib.NotFound("Product item not found")
	}
	delete(r.links, link.ID)
	return nil
}
