package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

var testimonialColumns = []string{
	"id", "name", "position", "content", "image_url", "rating", "is_active", "display_order", "created_at", "updated_at",
}

func scanTestimonial(row rowScanner) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := row.Scan(&t.ID, &t.Name, &t.Position, &t.Content, &t.ImageURL, &t.Rating, &t.IsActive, &t.DisplayOrder, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// TestimonialRepository handles testimonial database operations
type TestimonialRepository struct {
	t *table[models.Testimonial]
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(conn db.DBTX) *TestimonialRepository {
	return &TestimonialRepository{t: newTable(conn, "testimonials", testimonialColumns, []string{"display_order DESC", "id DESC"}, scanTestimonial)}
}

// GetAll retrieves testimonials, highest display order first; activeOnly hides inactive rows
func (r *TestimonialRepository) GetAll(ctx context.Context, activeOnly bool) ([]*models.Testimonial, error) {
	if activeOnly {
		return r.t.list(ctx, squirrel.Eq{"is_active": true})
	}
	return r.t.list(ctx, nil)
}

// GetByID retrieves a testimonial by ID
func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	return r.t.get(ctx, id)
}

// Create inserts a testimonial
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	return r.t.insert(ctx, map[string]interface{}{
		"name":          t.Name,
		"position":      t.Position,
		"content":       t.Content,
		"image_url":     t.ImageURL,
		"rating":        t.Rating,
		"is_active":     t.IsActive,
		"display_order": t.DisplayOrder,
	})
}

// Update applies a partial update
func (r *TestimonialRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Testimonial, error) {
	return r.t.update(ctx, id, fields)
}

// Delete removes a testimonial
func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

// Count returns the number of testimonials
func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx, nil)
}
