package database

import (
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// QueryBuilder provides a fluent, type-safe API for building bun queries against the table of T.
// It works on a *DB as well as inside a bun.Tx.
type QueryBuilder[T any] struct {
	db bun.IDB

	wheres    []*WhereClause
	orders    []*OrderClause
	limitVal  *int
	offsetVal *int

	timeout time.Duration
}

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction OrderDirection
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// Query creates a new QueryBuilder instance
func Query[T any](db bun.IDB) *QueryBuilder[T] {
	return &QueryBuilder[T]{db: db}
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	return q.WhereOp(column, "=", value)
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: operator,
		Value:    value,
	})
	return q
}

// WhereIn adds a WHERE IN condition. values must be a slice.
func (q *QueryBuilder[T]) WhereIn(column string, values any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IN",
		Value:    values,
	})
	return q
}

// WhereNull adds a WHERE IS NULL condition
func (q *QueryBuilder[T]) WhereNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IS NULL",
	})
	return q
}

// WhereContains adds a case-insensitive substring match
func (q *QueryBuilder[T]) WhereContains(column, term string) *QueryBuilder[T] {
	return q.WhereRaw("LOWER(?) LIKE ?", bun.Ident(column), "%"+strings.ToLower(term)+"%")
}

// WhereRaw adds a raw WHERE condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		IsRaw:   true,
		RawSQL:  sql,
		RawArgs: args,
	})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{
		Column:    column,
		Direction: direction,
	})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Timeout sets a timeout for the query
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

// toBun renders the clause as a bun query fragment and its arguments
func (w *WhereClause) toBun() (string, []any) {
	if w.IsRaw {
		return w.RawSQL, w.RawArgs
	}

	switch w.Operator {
	case "IS NULL", "IS NOT NULL":
		return "? " + w.Operator, []any{bun.Ident(w.Column)}
	case "IN":
		return "? IN (?)", []any{bun.Ident(w.Column), bun.In(w.Value)}
	default:
		return "? " + w.Operator + " ?", []any{bun.Ident(w.Column), w.Value}
	}
}

// buildBunQuery creates the select query for T with every clause applied
func (q *QueryBuilder[T]) buildBunQuery() *bun.SelectQuery {
	query := q.db.NewSelect().Model((*T)(nil))

	for _, w := range q.wheres {
		sql, args := w.toBun()
		query = query.Where(sql, args...)
	}

	for _, o := range q.orders {
		query = query.OrderExpr("? "+string(o.Direction), bun.Ident(o.Column))
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}
