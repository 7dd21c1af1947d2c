package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
	"github.com/memitrading/memi/internal/pkg/logger"
)

var statColumns = []string{"id", "icon", "value", "label", "sort_order", "created_at", "updated_at"}

func scanStat(row rowScanner) (*models.Stat, error) {
	s := &models.Stat{}
	err := row.Scan(&s.ID, &s.Icon, &s.Value, &s.Label, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// StatRepository handles stat database operations. Stats have no stable
// identity, so writes always replace the whole set.
type StatRepository struct {
	db db.TxBeginner
	t  *table[models.Stat]
}

// NewStatRepository creates a new StatRepository
func NewStatRepository(conn db.TxBeginner) *StatRepository {
	return &StatRepository{
		db: conn,
		t:  newTable(conn, "stats", statColumns, []string{"id ASC"}, scanStat),
	}
}

// GetAll retrieves the stats in the order they were last submitted
func (r *StatRepository) GetAll(ctx context.Context) ([]*models.Stat, error) {
	return r.t.list(ctx, nil)
}

// ReplaceAll deletes every stat and inserts stats in order, atomically
func (r *StatRepository) ReplaceAll(ctx context.Context, stats []*models.Stat) ([]*models.Stat, error) {
	result := make([]*models.Stat, 0, len(stats))

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.t.sb.Delete("stats").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete stats query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Msg("Error deleting stats")
			return fmt.Errorf("error deleting stats: %w", err)
		}

		txTable := r.t.with(tx)
		for _, s := range stats {
			created, err := txTable.insert(ctx, map[string]interface{}{
				"icon":       s.Icon,
				"value":      s.Value,
				"label":      s.Label,
				"sort_order": s.Order,
			})
			if err != nil {
				return err
			}
			result = append(result, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Count returns the number of stats
func (r *StatRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx, nil)
}
