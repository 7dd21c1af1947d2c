package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

var showcaseRequired = hasAll("title", "description", "features", "slider_images")

var appShowcaseColumns = []string{"id", "title", "description", "features", "slider_images", "created_at", "updated_at"}

func scanAppShowcase(row rowScanner) (*models.AppShowcase, error) {
	s := &models.AppShowcase{}
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Features, &s.SliderImages, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// AppShowcaseRepository handles the single app_showcase row
type AppShowcaseRepository struct {
	db db.TxBeginner
	t  *table[models.AppShowcase]
}

// NewAppShowcaseRepository creates a new AppShowcaseRepository
func NewAppShowcaseRepository(conn db.TxBeginner) *AppShowcaseRepository {
	return &AppShowcaseRepository{
		db: conn,
		t:  newTable(conn, "app_showcase", appShowcaseColumns, []string{"id ASC"}, scanAppShowcase),
	}
}

// Get returns the showcase, or ErrNotFound when none was saved yet
func (r *AppShowcaseRepository) Get(ctx context.Context) (*models.AppShowcase, error) {
	return getSingleton(ctx, r.t)
}

// Upsert applies the given columns (title, description, features,
// slider_images). Creating the row requires all four.
func (r *AppShowcaseRepository) Upsert(ctx context.Context, fields map[string]interface{}) (*models.AppShowcase, error) {
	return upsertSingleton(ctx, r.db, r.t, fields, showcaseRequired, nil)
}

// AppendSliderImages applies fields and appends images to the stored slider
// list. The stored list is read under the row lock, so concurrent appends
// all survive.
func (r *AppShowcaseRepository) AppendSliderImages(ctx context.Context, fields map[string]interface{}, images []models.SliderImage) (*models.AppShowcase, error) {
	set := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}

	return upsertSingleton(ctx, r.db, r.t, set, showcaseRequired, func(ctx context.Context, tx pgx.Tx, id int64, fields map[string]interface{}) error {
		var current []models.SliderImage
		if id != 0 {
			sql, args, err := r.t.sb.Select("slider_images").
				From(r.t.name).
				Where(squirrel.Eq{"id": id}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build slider images query: %w", err)
			}
			if err := tx.QueryRow(ctx, sql, args...).Scan(&current); err != nil {
				return fmt.Errorf("error reading slider images: %w", err)
			}
		}

		merged := make([]models.SliderImage, 0, len(current)+len(images))
		merged = append(merged, current...)
		merged = append(merged, images...)
		fields["slider_images"] = merged
		return nil
	})
}
