package repositories

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

var aboutColumns = []string{"id", "title", "heading", "content", "location", "created_at", "updated_at"}

func scanAbout(row rowScanner) (*models.AboutContent, error) {
	a := &models.AboutContent{}
	err := row.Scan(&a.ID, &a.Title, &a.Heading, &a.Content, &a.Location, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// AboutRepository handles the single about_content row
type AboutRepository struct {
	db db.TxBeginner
	t  *table[models.AboutContent]
}

// NewAboutRepository creates a new AboutRepository
func NewAboutRepository(conn db.TxBeginner) *AboutRepository {
	return &AboutRepository{
		db: conn,
		t:  newTable(conn, "about_content", aboutColumns, []string{"id ASC"}, scanAbout),
	}
}

// Get returns the about content, or ErrNotFound when none was saved yet
func (r *AboutRepository) Get(ctx context.Context) (*models.AboutContent, error) {
	return getSingleton(ctx, r.t)
}

// Upsert replaces the about content, creating the row on first use
func (r *AboutRepository) Upsert(ctx context.Context, a *models.AboutContent) (*models.AboutContent, error) {
	fields := map[string]interface{}{
		"title":    a.Title,
		"heading":  a.Heading,
		"content":  a.Content,
		"location": a.Location,
	}
	return upsertSingleton(ctx, r.db, r.t, fields, hasAll("title", "heading", "content", "location"), nil)
}
