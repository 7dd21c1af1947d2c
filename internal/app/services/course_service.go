package services

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
)

// CourseService manages courses
type CourseService interface {
	List(ctx context.Context) ([]*models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	// Delete removes the course together with its enrollments
	Delete(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	repo CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo CourseRepository) CourseService {
	return &courseServiceImpl{repo: repo}
}

func (s *courseServiceImpl) List(ctx context.Context) ([]*models.Course, error) {
	return s.repo.GetAll(ctx)
}

func (s *courseServiceImpl) Get(ctx context.Context, id int64) (*models.Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *courseServiceImpl) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	rating := req.Rating
	if rating == "" {
		rating = "0"
	}
	return s.repo.Create(ctx, &models.Course{
		Title:            req.Title,
		Description:      req.Description,
		Instructor:       req.Instructor,
		Duration:         req.Duration,
		Level:            req.Level,
		Price:            req.Price,
		Category:         req.Category,
		ImageURL:         nilIfBlank(req.ImageURL),
		EnrolledStudents: req.EnrolledStudents,
		Rating:           rating,
	})
}

func (s *courseServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	return s.repo.Update(ctx, id, req.Fields())
}

func (s *courseServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
