package repositories

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

// NUMERIC columns are read back as text to keep their exact decimal form
var courseColumns = []string{
	"id", "title", "description", "instructor", "duration", "level", "price::text",
	"category", "image_url", "enrolled_students", "rating::text", "created_at", "updated_at",
}

func scanCourse(row rowScanner) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor, &c.Duration, &c.Level, &c.Price,
		&c.Category, &c.ImageURL, &c.EnrolledStudents, &c.Rating, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CourseRepository handles course database operations
type CourseRepository struct {
	t *table[models.Course]
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(conn db.DBTX) *CourseRepository {
	return &CourseRepository{t: newTable(conn, "courses", courseColumns, []string{"id ASC"}, scanCourse)}
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.t.list(ctx, nil)
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return r.t.get(ctx, id)
}

// Create inserts a course
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) (*models.Course, error) {
	return r.t.insert(ctx, map[string]interface{}{
		"title":             c.Title,
		"description":       c.Description,
		"instructor":        c.Instructor,
		"duration":          c.Duration,
		"level":             c.Level,
		"price":             c.Price,
		"category":          c.Category,
		"image_url":         c.ImageURL,
		"enrolled_students": c.EnrolledStudents,
		"rating":            c.Rating,
	})
}

// Update applies a partial update
func (r *CourseRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Course, error) {
	return r.t.update(ctx, id, fields)
}

// Delete removes a course; its enrollments go with it (ON DELETE CASCADE)
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

// Count returns the number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx, nil)
}
