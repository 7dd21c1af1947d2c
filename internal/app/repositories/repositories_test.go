package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func serviceRows() *pgxmock.Rows {
	return pgxmock.NewRows(serviceColumns)
}

func TestServiceRepository_GetAll(t *testing.T) {
	mock := newMock(t)
	img := "/uploads/image-1.png"
	mock.ExpectQuery(`SELECT id, title, description, features, icon, category, image_url, status, created_at, updated_at FROM services ORDER BY id ASC`).
		WillReturnRows(serviceRows().
			AddRow(int64(1), "Signals", "Daily signals", []string{"Forex", "Gold"}, "TrendingUp", "trading", &img, "active", fixedTime, fixedTime).
			AddRow(int64(2), "Mentoring", "1:1", []string{}, "Users", "education", (*string)(nil), "active", fixedTime, fixedTime))

	items, err := NewServiceRepository(mock).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Signals", items[0].Title)
	assert.Equal(t, []string{"Forex", "Gold"}, items[0].Features)
	assert.Equal(t, img, *items[0].ImageURL)
	assert.Nil(t, items[1].ImageURL)
}

func TestServiceRepository_GetAllEmptyIsNotNil(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM services`).WillReturnRows(serviceRows())

	items, err := NewServiceRepository(mock).GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestServiceRepository_GetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM services WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := NewServiceRepository(mock).GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestServiceRepository_Create(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO services \(category,description,features,icon,image_url,status,title\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING id, title`).
		WithArgs("trading", "Daily signals", []string{}, "TrendingUp", pgxmock.AnyArg(), "active", "Signals").
		WillReturnRows(serviceRows().
			AddRow(int64(5), "Signals", "Daily signals", []string{}, "TrendingUp", "trading", (*string)(nil), "active", fixedTime, fixedTime))

	created, err := NewServiceRepository(mock).Create(context.Background(), &models.Service{
		Title:       "Signals",
		Description: "Daily signals",
		Icon:        "TrendingUp",
		Category:    "trading",
		Status:      "active",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestServiceRepository_UpdateStampsUpdatedAt(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE services SET title = \$1, updated_at = NOW\(\) WHERE id = \$2 RETURNING`).
		WithArgs("Renamed", int64(3)).
		WillReturnRows(serviceRows().
			AddRow(int64(3), "Renamed", "d", []string{}, "i", "c", (*string)(nil), "active", fixedTime, fixedTime.Add(time.Hour)))

	updated, err := NewServiceRepository(mock).Update(context.Background(), 3, map[string]interface{}{"title": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestServiceRepository_UpdateMissingRow(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE services SET`).
		WithArgs("x", int64(404)).
		WillReturnRows(serviceRows())

	_, err := NewServiceRepository(mock).Update(context.Background(), 404, map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceRepository_Delete(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`DELETE FROM services WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM services WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewServiceRepository(mock)
	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrNotFound)
}

func TestStatRepository_ReplaceAll(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM stats`).WillReturnResult(pgxmock.NewResult("DELETE", 4))
	mock.ExpectQuery(`INSERT INTO stats \(icon,label,sort_order,value\)`).
		WithArgs("Users", "Traders", 1, "5000+").
		WillReturnRows(pgxmock.NewRows(statColumns).AddRow(int64(10), "Users", "5000+", "Traders", 1, fixedTime, fixedTime))
	mock.ExpectQuery(`INSERT INTO stats \(icon,label,sort_order,value\)`).
		WithArgs("Award", "Years", 2, "10").
		WillReturnRows(pgxmock.NewRows(statColumns).AddRow(int64(11), "Award", "10", "Years", 2, fixedTime, fixedTime))
	mock.ExpectCommit()

	stats, err := NewStatRepository(mock).ReplaceAll(context.Background(), []*models.Stat{
		{Icon: "Users", Value: "5000+", Label: "Traders", Order: 1},
		{Icon: "Award", Value: "10", Label: "Years", Order: 2},
	})
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, int64(10), stats[0].ID)
	assert.Equal(t, "Years", stats[1].Label)
}

func TestStatRepository_ReplaceAllRollsBack(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM stats`).WillReturnResult(pgxmock.NewResult("DELETE", 4))
	mock.ExpectQuery(`INSERT INTO stats`).
		WithArgs("Users", "Traders", 1, "5000+").
		WillReturnError(&pgconn.PgError{Code: "23502", Message: "null value"})
	mock.ExpectRollback()

	_, err := NewStatRepository(mock).ReplaceAll(context.Background(), []*models.Stat{
		{Icon: "Users", Value: "5000+", Label: "Traders", Order: 1},
	})
	assert.Error(t, err)
}

func TestAboutRepository_GetMissing(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT id, title, heading, content, location, created_at, updated_at FROM about_content WHERE singleton LIMIT 1`).
		WillReturnRows(pgxmock.NewRows(aboutColumns))

	_, err := NewAboutRepository(mock).Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAboutRepository_UpsertInsertsWhenEmpty(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM about_content WHERE singleton FOR UPDATE`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO about_content \(content,heading,location,title\)`).
		WithArgs("Body", "Heading", "Istanbul", "About").
		WillReturnRows(pgxmock.NewRows(aboutColumns).AddRow(int64(1), "About", "Heading", "Body", "Istanbul", fixedTime, fixedTime))
	mock.ExpectCommit()

	about, err := NewAboutRepository(mock).Upsert(context.Background(), &models.AboutContent{
		Title: "About", Heading: "Heading", Content: "Body", Location: "Istanbul",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), about.ID)
}

func TestAboutRepository_UpsertUpdatesLockedRow(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM about_content WHERE singleton FOR UPDATE`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`UPDATE about_content SET content = \$1, heading = \$2, location = \$3, title = \$4, updated_at = NOW\(\) WHERE id = \$5`).
		WithArgs("New body", "H", "Dubai", "About", int64(1)).
		WillReturnRows(pgxmock.NewRows(aboutColumns).AddRow(int64(1), "About", "H", "New body", "Dubai", fixedTime, fixedTime))
	mock.ExpectCommit()

	about, err := NewAboutRepository(mock).Upsert(context.Background(), &models.AboutContent{
		Title: "About", Heading: "H", Content: "New body", Location: "Dubai",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dubai", about.Location)
}

func TestAppShowcaseRepository_UpsertIncompleteOnEmptyTable(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM app_showcase WHERE singleton FOR UPDATE`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := NewAppShowcaseRepository(mock).Upsert(context.Background(), map[string]interface{}{"title": "App"})
	assert.ErrorIs(t, err, apperrors.ErrSingletonIncomplete)
}

func TestAppShowcaseRepository_UpsertConcurrentCreate(t *testing.T) {
	mock := newMock(t)
	fields := map[string]interface{}{
		"title":         "App",
		"description":   "Trade anywhere",
		"features":      []string{"Alerts"},
		"slider_images": []models.SliderImage{{Src: "/uploads/a.png"}},
	}
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM app_showcase WHERE singleton FOR UPDATE`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO app_showcase`).
		WithArgs("Trade anywhere", []string{"Alerts"}, []models.SliderImage{{Src: "/uploads/a.png"}}, "App").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "app_showcase_singleton_key"})
	mock.ExpectRollback()

	_, err := NewAppShowcaseRepository(mock).Upsert(context.Background(), fields)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestAppShowcaseRepository_AppendSliderImagesMergesUnderLock(t *testing.T) {
	mock := newMock(t)
	stored := []models.SliderImage{{Src: "/uploads/a.png", Alt: "Home"}}
	merged := []models.SliderImage{{Src: "/uploads/a.png", Alt: "Home"}, {Src: "/uploads/b.png"}}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM app_showcase WHERE singleton FOR UPDATE`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT slider_images FROM app_showcase WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"slider_images"}).AddRow(stored))
	mock.ExpectQuery(`UPDATE app_showcase SET slider_images = \$1, title = \$2, updated_at = NOW\(\) WHERE id = \$3`).
		WithArgs(merged, "App", int64(1)).
		WillReturnRows(pgxmock.NewRows(appShowcaseColumns).
			AddRow(int64(1), "App", "Trade anywhere", []string{"Alerts"}, merged, fixedTime, fixedTime))
	mock.ExpectCommit()

	fields := map[string]interface{}{"title": "App"}
	showcase, err := NewAppShowcaseRepository(mock).AppendSliderImages(context.Background(), fields, []models.SliderImage{{Src: "/uploads/b.png"}})

	require.NoError(t, err)
	assert.Equal(t, merged, showcase.SliderImages)
	assert.NotContains(t, fields, "slider_images")
}

func TestAppShowcaseRepository_AppendSliderImagesEmptyTable(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM app_showcase WHERE singleton FOR UPDATE`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := NewAppShowcaseRepository(mock).AppendSliderImages(context.Background(), nil, []models.SliderImage{{Src: "/uploads/b.png"}})
	assert.ErrorIs(t, err, apperrors.ErrSingletonIncomplete)
}

func TestFaqRepository_ActiveFilter(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM faqs WHERE is_active = \$1 ORDER BY display_order ASC, id ASC`).
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows(faqColumns))
	mock.ExpectQuery(`FROM faqs ORDER BY display_order ASC, id ASC`).
		WillReturnRows(pgxmock.NewRows(faqColumns))

	repo := NewFaqRepository(mock)
	_, err := repo.GetAll(context.Background(), true)
	require.NoError(t, err)
	_, err = repo.GetAll(context.Background(), false)
	require.NoError(t, err)
}

func TestEnrollmentRepository_CreateUnknownCourse(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO enrollments`).
		WithArgs(int64(99), "", "", "a@b.co", "", "Jane", "", "", "pending").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "enrollments_course_id_fkey"})

	_, err := NewEnrollmentRepository(mock).Create(context.Background(), &models.Enrollment{
		CourseID: 99,
		FullName: "Jane",
		Email:    "a@b.co",
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestEnrollmentRepository_StatusAndCounts(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE enrollments SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("approved", int64(7)).
		WillReturnRows(pgxmock.NewRows(enrollmentColumns))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM enrollments WHERE status = \$1`).
		WithArgs("pending").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))
	mock.ExpectExec(`DELETE FROM enrollments WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewEnrollmentRepository(mock)
	_, err := repo.UpdateStatus(context.Background(), 7, "approved")
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)

	n, err := repo.CountByStatus(context.Background(), "pending")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	assert.ErrorIs(t, repo.Delete(context.Background(), 7), apperrors.ErrEnrollmentNotFound)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT id, username, email, password, role, created_at, updated_at FROM users WHERE email = \$1 LIMIT 1`).
		WithArgs("admin@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(1), "admin", "admin@example.com", "$2a$10$hash", "admin", fixedTime, fixedTime))
	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	u, err := repo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", u.Password)

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicates(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO users \(email,password,role,username\)`).
		WithArgs("admin@example.com", "hash", "admin", "admin").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("other@example.com", "hash", "admin", "admin").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	repo := NewUserRepository(mock)
	_, err := repo.Create(context.Background(), &models.User{Username: "admin", Email: "admin@example.com", Password: "hash"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = repo.Create(context.Background(), &models.User{Username: "admin", Email: "other@example.com", Password: "hash"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}
