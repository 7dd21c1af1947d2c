package services

import (
	"context"
	"errors"
	"strings"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/logger"
	"github.com/memitrading/memi/internal/pkg/validation"
)

// EnrollmentService handles public course applications and their review
type EnrollmentService interface {
	Submit(ctx context.Context, req *dto.EnrollmentRequest) (*models.Enrollment, error)
	List(ctx context.Context) ([]*models.Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Enrollment, error)
	Delete(ctx context.Context, id int64) error
}

type enrollmentServiceImpl struct {
	enrollments EnrollmentRepository
	courses     CourseRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollments EnrollmentRepository, courses CourseRepository) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollments: enrollments,
		courses:     courses,
	}
}

// Submit records an application for an existing course. The course title is
// copied onto the row and the status always starts as pending.
func (s *enrollmentServiceImpl) Submit(ctx context.Context, req *dto.EnrollmentRequest) (*models.Enrollment, error) {
	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewValidationError("courseId", "course does not exist")
		}
		return nil, err
	}

	enrollment, err := s.enrollments.Create(ctx, &models.Enrollment{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Education:   req.Education,
		Experience:  req.Experience,
		Motivation:  req.Motivation,
		Status:      models.EnrollmentStatusPending,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			// Course deleted between lookup and insert
			return nil, apperrors.NewValidationError("courseId", "course does not exist")
		}
		return nil, err
	}

	logger.Info().Int64("enrollmentID", enrollment.ID).Int64("courseID", course.ID).Msg("Enrollment submitted")
	return enrollment, nil
}

func (s *enrollmentServiceImpl) List(ctx context.Context) ([]*models.Enrollment, error) {
	return s.enrollments.GetAll(ctx)
}

func (s *enrollmentServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) (*models.Enrollment, error) {
	if !validation.IsEnrollmentStatus(status) {
		return nil, apperrors.NewValidationError("status", "must be one of: pending, approved, rejected")
	}
	return s.enrollments.UpdateStatus(ctx, id, status)
}

func (s *enrollmentServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.enrollments.Delete(ctx, id)
}
