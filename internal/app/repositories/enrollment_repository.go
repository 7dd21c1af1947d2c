package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/dberrors"
)

var enrollmentColumns = []string{
	"id", "course_id", "course_title", "full_name", "email", "phone", "education", "experience",
	"motivation", "status", "enrollment_date", "created_at", "updated_at",
}

func scanEnrollment(row rowScanner) (*models.Enrollment, error) {
	e := &models.Enrollment{}
	err := row.Scan(&e.ID, &e.CourseID, &e.CourseTitle, &e.FullName, &e.Email, &e.Phone, &e.Education, &e.Experience,
		&e.Motivation, &e.Status, &e.EnrollmentDate, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	t *table[models.Enrollment]
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(conn db.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{t: newTable(conn, "enrollments", enrollmentColumns, []string{"created_at DESC", "id DESC"}, scanEnrollment)}
}

// GetAll retrieves all enrollments, newest first
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	return r.t.list(ctx, nil)
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	e, err := r.t.get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return e, err
}

// Create inserts an enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) (*models.Enrollment, error) {
	status := e.Status
	if status == "" {
		status = models.EnrollmentStatusPending
	}

	created, err := r.t.insert(ctx, map[string]interface{}{
		"course_id":    e.CourseID,
		"course_title": e.CourseTitle,
		"full_name":    e.FullName,
		"email":        e.Email,
		"phone":        e.Phone,
		"education":    e.Education,
		"experience":   e.Experience,
		"motivation":   e.Motivation,
		"status":       status,
	})
	if dberrors.IsForeignKeyViolation(err) {
		return nil, apperrors.ErrCourseNotFound
	}
	return created, err
}

// UpdateStatus sets the review status of an enrollment
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Enrollment, error) {
	e, err := r.t.update(ctx, id, map[string]interface{}{"status": status})
	if errors.Is(err, ErrNotFound) {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return e, err
}

// Delete removes an enrollment
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	err := r.t.delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperrors.ErrEnrollmentNotFound
	}
	return err
}

// Count returns the number of enrollments
func (r *EnrollmentRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx, nil)
}

// CountByStatus returns the number of enrollments with the given status
func (r *EnrollmentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.t.count(ctx, squirrel.Eq{"status": status})
}
