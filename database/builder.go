package database

import (
	"fmt"

	"github.com/uptrace/bun"
)

// WhereClause represents an equality WHERE condition
type WhereClause struct {
	Column string
	Value  any
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

// QueryBuilder provides a fluent, type-safe API for building database
// queries. Every repository operation is a single statement built here;
// the surface is deliberately small (equality filters, ordering, limit)
// because nothing in the system needs more than one table per statement.
type QueryBuilder[T any] struct {
	db *DB

	wheres   []*WhereClause
	orders   []*OrderClause
	limitVal *int
}

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:     db,
		wheres: []*WhereClause{},
		orders: []*OrderClause{},
	}
}

// Where adds an equality WHERE condition
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column: column,
		Value:  value,
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

// Limit sets the maximum number of rows returned
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// applyWheresToSelect applies WHERE conditions to a bun SelectQuery
func (q *QueryBuilder[T]) applyWheresToSelect(query *bun.SelectQuery) *bun.SelectQuery {
	for _, where := range q.wheres {
		query = query.Where(fmt.Sprintf("%s = ?", where.Column), where.Value)
	}
	return query
}

// applyWheresToUpdate applies WHERE conditions to a bun UpdateQuery
func (q *QueryBuilder[T]) applyWheresToUpdate(query *bun.UpdateQuery) *bun.UpdateQuery {
	for _, where := range q.wheres {
		query = query.Where(fmt.Sprintf("%s = ?", where.Column), where.Value)
	}
	return query
}

// applyWheresToDelete applies WHERE conditions to a bun DeleteQuery
func (q *QueryBuilder[T]) applyWheresToDelete(query *bun.DeleteQuery) *bun.DeleteQuery {
	for _, where := range q.wheres {
		query = query.Where(fmt.Sprintf("%s = ?", where.Column), where.Value)
	}
	return query
}

// applySelectClauses applies ordering and limits to a bun SelectQuery
func (q *QueryBuilder[T]) applySelectClauses(query *bun.SelectQuery) *bun.SelectQuery {
	query = q.applyWheresToSelect(query)
	for _, order := range q.orders {
		query = query.OrderExpr(fmt.Sprintf("%s %s", order.Column, order.Direction))
	}
	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	return query
}
