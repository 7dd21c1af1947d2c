package repositories

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

var appFeatureColumns = []string{"id", "title", "description", "icon", "sort_order", "created_at", "updated_at"}

func scanAppFeature(row rowScanner) (*models.AppFeature, error) {
	f := &models.AppFeature{}
	err := row.Scan(&f.ID, &f.Title, &f.Description, &f.Icon, &f.Order, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

// AppFeatureRepository handles app feature database operations
type AppFeatureRepository struct {
	t *table[models.AppFeature]
}

// NewAppFeatureRepository creates a new AppFeatureRepository
func NewAppFeatureRepository(conn db.DBTX) *AppFeatureRepository {
	return &AppFeatureRepository{t: newTable(conn, "app_features", appFeatureColumns, []string{"id ASC"}, scanAppFeature)}
}

// GetAll retrieves all app features
func (r *AppFeatureRepository) GetAll(ctx context.Context) ([]*models.AppFeature, error) {
	return r.t.list(ctx, nil)
}

// GetByID retrieves an app feature by ID
func (r *AppFeatureRepository) GetByID(ctx context.Context, id int64) (*models.AppFeature, error) {
	return r.t.get(ctx, id)
}

// Create inserts an app feature
func (r *AppFeatureRepository) Create(ctx context.Context, f *models.AppFeature) (*models.AppFeature, error) {
	return r.t.insert(ctx, map[string]interface{}{
		"title":       f.Title,
		"description": f.Description,
		"icon":        f.Icon,
		"sort_order":  f.Order,
	})
}

// Update applies a partial update
func (r *AppFeatureRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.AppFeature, error) {
	return r.t.update(ctx, id, fields)
}

// Delete removes an app feature
func (r *AppFeatureRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}
