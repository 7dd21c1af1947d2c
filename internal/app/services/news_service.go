package services

import (
	"context"
	"time"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/sanitizer"
)

// NewsService manages news articles. Content is sanitised before storage and
// publishing without a date stamps the current time.
type NewsService interface {
	List(ctx context.Context) ([]*models.News, error)
	Get(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error)
	Update(ctx context.Context, id int64, req *dto.UpdateNewsRequest) (*models.News, error)
	Delete(ctx context.Context, id int64) error
}

type newsServiceImpl struct {
	repo NewsRepository
	now  func() time.Time
}

// NewNewsService creates a new NewsService
func NewNewsService(repo NewsRepository) NewsService {
	return &newsServiceImpl{repo: repo, now: time.Now}
}

func (s *newsServiceImpl) List(ctx context.Context) ([]*models.News, error) {
	return s.repo.GetAll(ctx)
}

func (s *newsServiceImpl) Get(ctx context.Context, id int64) (*models.News, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *newsServiceImpl) Create(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error) {
	var publishedAt *time.Time
	if p := nilIfBlank(req.PublishedAt); p != nil {
		t, err := parseDate("publishedAt", *p)
		if err != nil {
			return nil, err
		}
		publishedAt = &t
	}
	if req.IsPublished && publishedAt == nil {
		t := s.now().UTC()
		publishedAt = &t
	}

	tags := dto.NormalizeList(req.Tags)
	if tags == nil {
		tags = []string{}
	}

	return s.repo.Create(ctx, &models.News{
		Title:       req.Title,
		Content:     sanitizer.HTML(req.Content),
		Excerpt:     sanitizer.HTML(req.Excerpt),
		Author:      req.Author,
		Category:    req.Category,
		Tags:        tags,
		ImageURL:    nilIfBlank(req.ImageURL),
		IsPublished: req.IsPublished,
		PublishedAt: publishedAt,
	})
}

func (s *newsServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateNewsRequest) (*models.News, error) {
	fields := req.Fields()
	if req.Content != nil {
		fields["content"] = sanitizer.HTML(*req.Content)
	}
	if req.Excerpt != nil {
		fields["excerpt"] = sanitizer.HTML(*req.Excerpt)
	}

	if req.PublishedAt != nil {
		if p := nilIfBlank(req.PublishedAt); p != nil {
			t, err := parseDate("publishedAt", *p)
			if err != nil {
				return nil, err
			}
			fields["published_at"] = t
		} else {
			fields["published_at"] = nil
		}
	}

	if req.IsPublished != nil && *req.IsPublished && fields["published_at"] == nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.PublishedAt == nil {
			fields["published_at"] = s.now().UTC()
		} else {
			delete(fields, "published_at")
		}
	}

	return s.repo.Update(ctx, id, fields)
}

func (s *newsServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
