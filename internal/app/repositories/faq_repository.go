package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

var faqColumns = []string{"id", "question", "answer", "category", "display_order", "is_active", "created_at", "updated_at"}

func scanFaq(row rowScanner) (*models.Faq, error) {
	f := &models.Faq{}
	err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.DisplayOrder, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

// FaqRepository handles FAQ database operations
type FaqRepository struct {
	t *table[models.Faq]
}

// NewFaqRepository creates a new FaqRepository
func NewFaqRepository(conn db.DBTX) *FaqRepository {
	return &FaqRepository{t: newTable(conn, "faqs", faqColumns, []string{"display_order ASC", "id ASC"}, scanFaq)}
}

// GetAll retrieves FAQs in display order; activeOnly hides inactive rows
func (r *FaqRepository) GetAll(ctx context.Context, activeOnly bool) ([]*models.Faq, error) {
	if activeOnly {
		return r.t.list(ctx, squirrel.Eq{"is_active": true})
	}
	return r.t.list(ctx, nil)
}

// GetByID retrieves a FAQ by ID
func (r *FaqRepository) GetByID(ctx context.Context, id int64) (*models.Faq, error) {
	return r.t.get(ctx, id)
}

// Create inserts a FAQ
func (r *FaqRepository) Create(ctx context.Context, f *models.Faq) (*models.Faq, error) {
	return r.t.insert(ctx, map[string]interface{}{
		"question":      f.Question,
		"answer":        f.Answer,
		"category":      f.Category,
		"display_order": f.DisplayOrder,
		"is_active":     f.IsActive,
	})
}

// Update applies a partial update
func (r *FaqRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Faq, error) {
	return r.t.update(ctx, id, fields)
}

// Delete removes a FAQ
func (r *FaqRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}
