package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// All executes the query and returns all matching records with automatic retry
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	var data []T

	ctx, cancel := q.withDeadline(ctx, q.db.readTimeout())
	defer cancel()

	err := WithRetry(ctx, func() error {
		data = nil // Reset on retry

		query := q.db.NewSelect().Model(&data)
		query = q.applySelectClauses(query)
		return query.Scan(ctx)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	// A scan over zero rows leaves the slice nil; lists must always
	// serialize as JSON arrays, never null.
	if data == nil {
		data = []T{}
	}

	return data, nil
}

// First executes the query and returns the first matching record with
// automatic retry. A missing row returns (nil, nil), not an error;
// callers decide whether absence is a problem.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	start := time.Now()
	var data T

	ctx, cancel := q.withDeadline(ctx, q.db.readTimeout())
	defer cancel()

	err := WithRetry(ctx, func() error {
		query := q.db.NewSelect().Model(&data)
		query = q.applySelectClauses(query).Limit(1)
		return query.Scan(ctx)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// Insert inserts a new record with automatic retry and returns it
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	start := time.Now()

	ctx, cancel := q.withDeadline(ctx, q.db.writeTimeout())
	defer cancel()

	err := WithRetry(ctx, func() error {
		_, err := q.db.NewInsert().Model(data).Exec(ctx)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Update overwrites the given columns on every row matching the query
// and reports how many rows were touched. This is the single
// apply-update point: callers hand in the complete mutable column map
// (full overwrite, last writer wins), so a partial-patch mode could be
// introduced here without changing any call site.
func (q *QueryBuilder[T]) Update(ctx context.Context, columns map[string]any) (int, error) {
	start := time.Now()
	var rowsAffected int64

	ctx, cancel := q.withDeadline(ctx, q.db.writeTimeout())
	defer cancel()

	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewUpdate().Model(&model)

		for key, value := range columns {
			query = query.Set("? = ?", bun.Ident(key), value)
		}

		query = q.applyWheresToUpdate(query)

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

// Delete deletes records matching the query with automatic retry
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int, error) {
	start := time.Now()
	var rowsAffected int64

	ctx, cancel := q.withDeadline(ctx, q.db.writeTimeout())
	defer cancel()

	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewDelete().Model(&model)

		query = q.applyWheresToDelete(query)

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute delete query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

// withDeadline applies the configured per-statement deadline.
func (q *QueryBuilder[T]) withDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
