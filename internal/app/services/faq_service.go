package services

import (
	"context"
	"strings"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/sanitizer"
)

const defaultFaqCategory = "general"

// FaqService manages FAQs. Public listings only show active entries.
type FaqService interface {
	ListActive(ctx context.Context) ([]*models.Faq, error)
	ListAll(ctx context.Context) ([]*models.Faq, error)
	Get(ctx context.Context, id int64) (*models.Faq, error)
	Create(ctx context.Context, req *dto.CreateFaqRequest) (*models.Faq, error)
	Update(ctx context.Context, id int64, req *dto.UpdateFaqRequest) (*models.Faq, error)
	Delete(ctx context.Context, id int64) error
}

type faqServiceImpl struct {
	repo FaqRepository
}

// NewFaqService creates a new FaqService
func NewFaqService(repo FaqRepository) FaqService {
	return &faqServiceImpl{repo: repo}
}

func (s *faqServiceImpl) ListActive(ctx context.Context) ([]*models.Faq, error) {
	return s.repo.GetAll(ctx, true)
}

func (s *faqServiceImpl) ListAll(ctx context.Context) ([]*models.Faq, error) {
	return s.repo.GetAll(ctx, false)
}

func (s *faqServiceImpl) Get(ctx context.Context, id int64) (*models.Faq, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *faqServiceImpl) Create(ctx context.Context, req *dto.CreateFaqRequest) (*models.Faq, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = defaultFaqCategory
	}
	return s.repo.Create(ctx, &models.Faq{
		Question:     req.Question,
		Answer:       sanitizer.HTML(req.Answer),
		Category:     category,
		DisplayOrder: valueOr(req.DisplayOrder, 0),
		IsActive:     valueOr(req.IsActive, true),
	})
}

func (s *faqServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateFaqRequest) (*models.Faq, error) {
	fields := req.Fields()
	if req.Answer != nil {
		fields["answer"] = sanitizer.HTML(*req.Answer)
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *faqServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
