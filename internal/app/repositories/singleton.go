package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/memitrading/memi/internal/db"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/dberrors"
	"github.com/memitrading/memi/internal/pkg/logger"
)

// Singleton tables carry a `singleton BOOLEAN UNIQUE CHECK (singleton)` column,
// so at most one row can exist.

func getSingleton[T any](ctx context.Context, t *table[T]) (*T, error) {
	sql, args, err := t.sb.Select(t.columns...).
		From(t.name).
		Where("singleton").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get %s query: %w", t.name, err)
	}

	item, err := t.scan(t.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("table", t.name).Msg("Error getting singleton row")
		return nil, fmt.Errorf("error getting %s: %w", t.name, err)
	}
	return item, nil
}

// lockedFieldsFn completes fields from the locked row. id is 0 when the table
// is empty.
type lockedFieldsFn func(ctx context.Context, tx pgx.Tx, id int64, fields map[string]interface{}) error

// upsertSingleton locks the row, then updates it with fields or, when the table
// is empty, inserts fields. insertable reports whether fields are complete
// enough to create the row. prepare, when set, runs while the lock is held.
func upsertSingleton[T any](
	ctx context.Context,
	conn db.TxBeginner,
	t *table[T],
	fields map[string]interface{},
	insertable func(map[string]interface{}) bool,
	prepare lockedFieldsFn,
) (*T, error) {
	var result *T

	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := t.sb.Select("id").
			From(t.name).
			Where("singleton").
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock %s query: %w", t.name, err)
		}

		txTable := t.with(tx)

		var id int64
		err = tx.QueryRow(ctx, sql, args...).Scan(&id)
		exists := true
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			exists = false
		case err != nil:
			logger.Error().Err(err).Str("table", t.name).Msg("Error locking singleton row")
			return fmt.Errorf("error locking %s: %w", t.name, err)
		}

		if prepare != nil {
			if err := prepare(ctx, tx, id, fields); err != nil {
				return err
			}
		}

		if !exists {
			if !insertable(fields) {
				return apperrors.ErrSingletonIncomplete
			}
			result, err = txTable.insert(ctx, fields)
			if dberrors.IsDuplicateConstraintError(err, "") {
				return apperrors.NewConflictError(fmt.Sprintf("%s was created concurrently, retry the update", t.name))
			}
			return err
		}

		result, err = txTable.update(ctx, id, fields)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// hasAll reports whether every column is present in fields
func hasAll(columns ...string) func(map[string]interface{}) bool {
	return func(fields map[string]interface{}) bool {
		for _, c := range columns {
			if _, ok := fields[c]; !ok {
				return false
			}
		}
		return true
	}
}
