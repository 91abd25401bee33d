package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Transaction executes fn within a database transaction, rolling back when it returns an error
func Transaction(ctx context.Context, db *DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	if db == nil {
		return fmt.Errorf("database instance not initialized")
	}

	return db.RunInTx(ctx, nil, fn)
}

// FindByID retrieves a record by its primary key, or nil when it does not exist
func FindByID[T any](ctx context.Context, db bun.IDB, id uuid.UUID) (*T, error) {
	return Query[T](db).Where("id", id).First(ctx)
}

// Pagination represents pagination metadata
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// PaginationResult wraps paginated data with metadata
type PaginationResult[T any] struct {
	Items []T        `json:"items"`
	Meta  Pagination `json:"meta"`
}

// NormalizePage clamps page and page size to the supported range
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// NewPaginationResult builds a result, never returning a nil item slice
func NewPaginationResult[T any](items []T, page, pageSize, total int) *PaginationResult[T] {
	if items == nil {
		items = []T{}
	}
	return &PaginationResult[T]{
		Items: items,
		Meta: Pagination{
			Page:  page,
			Limit: pageSize,
			Total: total,
		},
	}
}

// Paginate applies pagination to a query builder and returns results with metadata
func Paginate[T any](ctx context.Context, q *QueryBuilder[T], page, pageSize int) (*PaginationResult[T], error) {
	page, pageSize = NormalizePage(page, pageSize)

	// Get total count
	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	// Calculate offset
	offset := (page - 1) * pageSize

	// Get paginated data
	data, err := q.Limit(pageSize).Offset(offset).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get paginated data: %w", err)
	}

	return NewPaginationResult(data, page, pageSize, total), nil
}
