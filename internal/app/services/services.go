package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/pkg/apperrors"
)

// Repository contracts consumed by the services. The concrete implementations
// live in internal/app/repositories.

// UserRepository is the user storage used by AuthService
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

// ServiceRepository stores services
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]*models.Service, error)
	GetByID(ctx context.Context, id int64) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) (*models.Service, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Service, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// AboutRepository stores the about singleton
type AboutRepository interface {
	Get(ctx context.Context) (*models.AboutContent, error)
	Upsert(ctx context.Context, a *models.AboutContent) (*models.AboutContent, error)
}

// StatRepository stores stats
type StatRepository interface {
	GetAll(ctx context.Context) ([]*models.Stat, error)
	ReplaceAll(ctx context.Context, stats []*models.Stat) ([]*models.Stat, error)
	Count(ctx context.Context) (int64, error)
}

// AppFeatureRepository stores app features
type AppFeatureRepository interface {
	GetAll(ctx context.Context) ([]*models.AppFeature, error)
	GetByID(ctx context.Context, id int64) (*models.AppFeature, error)
	Create(ctx context.Context, f *models.AppFeature) (*models.AppFeature, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.AppFeature, error)
	Delete(ctx context.Context, id int64) error
}

// AppShowcaseRepository stores the app showcase singleton
type AppShowcaseRepository interface {
	Get(ctx context.Context) (*models.AppShowcase, error)
	Upsert(ctx context.Context, fields map[string]interface{}) (*models.AppShowcase, error)
	AppendSliderImages(ctx context.Context, fields map[string]interface{}, images []models.SliderImage) (*models.AppShowcase, error)
}

// CourseRepository stores courses
type CourseRepository interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, c *models.Course) (*models.Course, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// NewsRepository stores news
type NewsRepository interface {
	GetAll(ctx context.Context) ([]*models.News, error)
	GetByID(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, n *models.News) (*models.News, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.News, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// EventRepository stores events
type EventRepository interface {
	GetAll(ctx context.Context) ([]*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, e *models.Event) (*models.Event, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// TeamMemberRepository stores team members
type TeamMemberRepository interface {
	GetAll(ctx context.Context) ([]*models.TeamMember, error)
	GetByID(ctx context.Context, id int64) (*models.TeamMember, error)
	Create(ctx context.Context, m *models.TeamMember) (*models.TeamMember, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.TeamMember, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// FaqRepository stores FAQs
type FaqRepository interface {
	GetAll(ctx context.Context, activeOnly bool) ([]*models.Faq, error)
	GetByID(ctx context.Context, id int64) (*models.Faq, error)
	Create(ctx context.Context, f *models.Faq) (*models.Faq, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Faq, error)
	Delete(ctx context.Context, id int64) error
}

// TestimonialRepository stores testimonials
type TestimonialRepository interface {
	GetAll(ctx context.Context, activeOnly bool) ([]*models.Testimonial, error)
	GetByID(ctx context.Context, id int64) (*models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Testimonial, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// EnrollmentRepository stores enrollments
type EnrollmentRepository interface {
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	Create(ctx context.Context, e *models.Enrollment) (*models.Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Enrollment, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// dateLayouts are accepted for date fields coming from admin forms
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate parses an admin-supplied date, reporting failures against field
func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(field, fmt.Sprintf("invalid date %q", value))
}

func isNotFound(err error) bool {
	return apperrors.IsNotFound(err)
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func nilIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
