package services

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/apperrors"
)

// TestimonialService manages testimonials. Public listings only show active entries.
type TestimonialService interface {
	ListActive(ctx context.Context) ([]*models.Testimonial, error)
	ListAll(ctx context.Context) ([]*models.Testimonial, error)
	Get(ctx context.Context, id int64) (*models.Testimonial, error)
	Create(ctx context.Context, req *dto.CreateTestimonialRequest) (*models.Testimonial, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTestimonialRequest) (*models.Testimonial, error)
	Delete(ctx context.Context, id int64) error
}

type testimonialServiceImpl struct {
	repo TestimonialRepository
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(repo TestimonialRepository) TestimonialService {
	return &testimonialServiceImpl{repo: repo}
}

func checkRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperrors.NewValidationError("rating", "must be between 1 and 5")
	}
	return nil
}

func (s *testimonialServiceImpl) ListActive(ctx context.Context) ([]*models.Testimonial, error) {
	return s.repo.GetAll(ctx, true)
}

func (s *testimonialServiceImpl) ListAll(ctx context.Context) ([]*models.Testimonial, error) {
	return s.repo.GetAll(ctx, false)
}

func (s *testimonialServiceImpl) Get(ctx context.Context, id int64) (*models.Testimonial, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *testimonialServiceImpl) Create(ctx context.Context, req *dto.CreateTestimonialRequest) (*models.Testimonial, error) {
	if err := checkRating(req.Rating); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &models.Testimonial{
		Name:         req.Name,
		Position:     req.Position,
		Content:      req.Content,
		ImageURL:     nilIfBlank(req.ImageURL),
		Rating:       req.Rating,
		IsActive:     valueOr(req.IsActive, true),
		DisplayOrder: req.DisplayOrder,
	})
}

func (s *testimonialServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateTestimonialRequest) (*models.Testimonial, error) {
	if req.Rating != nil {
		if err := checkRating(*req.Rating); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, req.Fields())
}

func (s *testimonialServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
