package repositories

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

var newsColumns = []string{
	"id", "title", "content", "excerpt", "author", "category", "tags", "image_url",
	"is_published", "published_at", "created_at", "updated_at",
}

func scanNews(row rowScanner) (*models.News, error) {
	n := &models.News{}
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Excerpt, &n.Author, &n.Category, &n.Tags, &n.ImageURL,
		&n.IsPublished, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

// NewsRepository handles news database operations
type NewsRepository struct {
	t *table[models.News]
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(conn db.DBTX) *NewsRepository {
	return &NewsRepository{t: newTable(conn, "news", newsColumns, []string{"created_at DESC", "id DESC"}, scanNews)}
}

// GetAll retrieves all news, newest first
func (r *NewsRepository) GetAll(ctx context.Context) ([]*models.News, error) {
	return r.t.list(ctx, nil)
}

// GetByID retrieves a news item by ID
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	return r.t.get(ctx, id)
}

// Create inserts a news item
func (r *NewsRepository) Create(ctx context.Context, n *models.News) (*models.News, error) {
	return r.t.insert(ctx, map[string]interface{}{
		"title":        n.Title,
		"content":      n.Content,
		"excerpt":      n.Excerpt,
		"author":       n.Author,
		"category":     n.Category,
		"tags":         emptyIfNil(n.Tags),
		"image_url":    n.ImageURL,
		"is_published": n.IsPublished,
		"published_at": n.PublishedAt,
	})
}

// Update applies a partial update
func (r *NewsRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.News, error) {
	return r.t.update(ctx, id, fields)
}

// Delete removes a news item
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

// Count returns the number of news items
func (r *NewsRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx, nil)
}
