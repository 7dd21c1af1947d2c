package repositories

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

var serviceColumns = []string{"id", "title", "description", "features", "icon", "category", "image_url", "status", "created_at", "updated_at"}

func scanService(row rowScanner) (*models.Service, error) {
	s := &models.Service{}
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Features, &s.Icon, &s.Category, &s.ImageURL, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// ServiceRepository handles service database operations
type ServiceRepository struct {
	t *table[models.Service]
}

// NewServiceRepository creates a new ServiceRepository
func NewServiceRepository(conn db.DBTX) *ServiceRepository {
	return &ServiceRepository{t: newTable(conn, "services", serviceColumns, []string{"id ASC"}, scanService)}
}

// GetAll retrieves all services
func (r *ServiceRepository) GetAll(ctx context.Context) ([]*models.Service, error) {
	return r.t.list(ctx, nil)
}

// GetByID retrieves a service by ID
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	return r.t.get(ctx, id)
}

// Create inserts a service
func (r *ServiceRepository) Create(ctx context.Context, s *models.Service) (*models.Service, error) {
	return r.t.insert(ctx, map[string]interface{}{
		"title":       s.Title,
		"description": s.Description,
		"features":    emptyIfNil(s.Features),
		"icon":        s.Icon,
		"category":    s.Category,
		"image_url":   s.ImageURL,
		"status":      s.Status,
	})
}

// Update applies a partial update
func (r *ServiceRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Service, error) {
	return r.t.update(ctx, id, fields)
}

// Delete removes a service
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

// Count returns the number of services
func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx, nil)
}
