package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func newTestAuthService(t *testing.T, users *fakeUsers) (AuthService, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", TokenExp: 24 * time.Hour})
	return NewAuthService(users, jwtService), jwtService
}

func adminUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{ID: 1, Username: "admin", Email: "admin@example.com", Password: hash, Role: models.RoleAdmin}
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtService := newTestAuthService(t, newFakeUsers(adminUser(t, "password123")))

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: " Admin@Example.com ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Username)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestAuthService_LoginFailuresLookAlike(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeUsers(adminUser(t, "password123")))

	_, wrongPassword := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@example.com", Password: "nope"})
	_, unknownEmail := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_CreateAdmin(t *testing.T) {
	users := newFakeUsers()
	svc, _ := newTestAuthService(t, users)

	user, err := svc.CreateAdmin(context.Background(), "admin", "Admin@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, auth.CheckPassword(user.Password, "password123"))

	_, err = svc.CreateAdmin(context.Background(), "", "bad", "short")
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
}

func TestAuthService_EnsureAdminIsIdempotent(t *testing.T) {
	users := newFakeUsers()
	svc, _ := newTestAuthService(t, users)

	created, err := svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, users.created, 1)
}

func TestAuthService_ResetPassword(t *testing.T) {
	users := newFakeUsers(adminUser(t, "password123"))
	svc, _ := newTestAuthService(t, users)

	require.NoError(t, svc.ResetPassword(context.Background(), "admin@example.com", "new-password"))
	assert.True(t, auth.CheckPassword(users.password[1], "new-password"))

	err := svc.ResetPassword(context.Background(), "admin@example.com", "short")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.ResetPassword(context.Background(), "ghost@example.com", "new-password")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func newTestNewsService(repo *fakeNews) *newsServiceImpl {
	return &newsServiceImpl{repo: repo, now: func() time.Time { return testNow }}
}

func TestNewsService_CreateSanitisesAndStampsPublishedAt(t *testing.T) {
	repo := &fakeNews{}
	svc := newTestNewsService(repo)

	_, err := svc.Create(context.Background(), &dto.CreateNewsRequest{
		Title:       "Market update",
		Content:     `<p>Gold rallies</p><script>alert(1)</script>`,
		Tags:        []string{`["gold"," forex "]`},
		IsPublished: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "<p>Gold rallies</p>", repo.created.Content)
	assert.Equal(t, []string{"gold", "forex"}, repo.created.Tags)
	require.NotNil(t, repo.created.PublishedAt)
	assert.Equal(t, testNow, *repo.created.PublishedAt)
}

func TestNewsService_CreateDraftKeepsExplicitDate(t *testing.T) {
	repo := &fakeNews{}
	svc := newTestNewsService(repo)

	_, err := svc.Create(context.Background(), &dto.CreateNewsRequest{
		Title:       "Scheduled",
		Content:     "Soon",
		PublishedAt: strPtr("2025-06-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *repo.created.PublishedAt)
	assert.Equal(t, []string{}, repo.created.Tags)

	_, err = svc.Create(context.Background(), &dto.CreateNewsRequest{Title: "x", Content: "y", PublishedAt: strPtr("next week")})
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "publishedAt", verr.Fields[0].Field)
}

func TestNewsService_UpdatePublishKeepsFirstPublishDate(t *testing.T) {
	earlier := testNow.Add(-48 * time.Hour)
	repo := &fakeNews{current: &models.News{ID: 4, PublishedAt: &earlier}}
	svc := newTestNewsService(repo)

	_, err := svc.Update(context.Background(), 4, &dto.UpdateNewsRequest{IsPublished: boolPtr(true)})
	require.NoError(t, err)
	assert.NotContains(t, repo.updated, "published_at")
	assert.Equal(t, true, repo.updated["is_published"])

	repo.current.PublishedAt = nil
	_, err = svc.Update(context.Background(), 4, &dto.UpdateNewsRequest{IsPublished: boolPtr(true), Content: strPtr("<b>ok</b><img src=x onerror=y>")})
	require.NoError(t, err)
	assert.Equal(t, testNow, repo.updated["published_at"])
	assert.NotContains(t, repo.updated["content"], "onerror")
}

func TestEventService_Create(t *testing.T) {
	repo := &fakeEvents{}
	svc := NewEventService(repo)

	_, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Title:       "Webinar",
		Description: "Risk management",
		Location:    "Online",
		EventDate:   "2025-07-01T18:30",
		Capacity:    100,
	})
	require.NoError(t, err)
	assert.Equal(t, "0", repo.created.RegistrationFee)
	assert.Equal(t, time.Date(2025, 7, 1, 18, 30, 0, 0, time.UTC), repo.created.EventDate)

	_, err = svc.Create(context.Background(), &dto.CreateEventRequest{
		Title: "Full", Description: "d", Location: "l", EventDate: "2025-07-01",
		Capacity: 10, RegisteredAttendees: 11,
	})
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "registeredAttendees", verr.Fields[0].Field)
}

func TestEventService_UpdateChecksCapacityAgainstStoredRow(t *testing.T) {
	repo := &fakeEvents{current: &models.Event{ID: 2, Capacity: 50, RegisteredAttendees: 40}}
	svc := NewEventService(repo)

	_, err := svc.Update(context.Background(), 2, &dto.UpdateEventRequest{Capacity: intPtr(30)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Nil(t, repo.updated)

	_, err = svc.Update(context.Background(), 2, &dto.UpdateEventRequest{Capacity: intPtr(0), EventDate: strPtr("2025-08-01")})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.updated["capacity"])
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), repo.updated["event_date"])

	_, err = svc.Update(context.Background(), 99, &dto.UpdateEventRequest{RegisteredAttendees: intPtr(1)})
	assert.True(t, isNotFound(err))
}

func TestEnrollmentService_Submit(t *testing.T) {
	enrollments := &fakeEnrollments{}
	courses := &fakeCourses{courses: map[int64]*models.Course{3: {ID: 3, Title: "Technical Analysis 101"}}}
	svc := NewEnrollmentService(enrollments, courses)

	e, err := svc.Submit(context.Background(), &dto.EnrollmentRequest{
		CourseID: 3, FullName: " Jane Doe ", Email: "jane@example.com", Phone: "+90",
		Education: "BSc", Experience: "None", Motivation: "Learn",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusPending, e.Status)
	assert.Equal(t, "Technical Analysis 101", e.CourseTitle)
	assert.Equal(t, "Jane Doe", e.FullName)
}

func TestEnrollmentService_SubmitUnknownCourse(t *testing.T) {
	svc := NewEnrollmentService(&fakeEnrollments{}, &fakeCourses{})

	_, err := svc.Submit(context.Background(), &dto.EnrollmentRequest{CourseID: 42})
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "courseId", verr.Fields[0].Field)

	// Course removed between lookup and insert
	raced := NewEnrollmentService(
		&fakeEnrollments{createErr: apperrors.ErrCourseNotFound},
		&fakeCourses{courses: map[int64]*models.Course{1: {ID: 1}}},
	)
	_, err = raced.Submit(context.Background(), &dto.EnrollmentRequest{CourseID: 1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEnrollmentService_UpdateStatus(t *testing.T) {
	enrollments := &fakeEnrollments{}
	svc := NewEnrollmentService(enrollments, &fakeCourses{})

	e, err := svc.UpdateStatus(context.Background(), 5, "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", e.Status)

	_, err = svc.UpdateStatus(context.Background(), 5, "archived")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "approved", enrollments.status[5])
}

func TestAppShowcaseService_Update(t *testing.T) {
	stored := []models.SliderImage{{Src: "/uploads/old.png", Alt: "Old"}}
	uploaded := []models.SliderImage{{Src: "/uploads/new.png"}}

	t.Run("uploads extend the stored list", func(t *testing.T) {
		repo := &fakeShowcase{current: &models.AppShowcase{ID: 1, SliderImages: stored}}
		req := &dto.AppShowcaseRequest{Title: strPtr("App")}
		got, err := NewAppShowcaseService(repo).Update(context.Background(), req, uploaded)
		require.NoError(t, err)
		assert.Equal(t, append(append([]models.SliderImage{}, stored...), uploaded...), got.SliderImages)
		assert.Equal(t, map[string]interface{}{"title": "App"}, repo.fields)
	})

	t.Run("concurrent uploads all survive", func(t *testing.T) {
		repo := &fakeShowcase{current: &models.AppShowcase{ID: 1, SliderImages: stored}}
		svc := NewAppShowcaseService(repo)

		var wg sync.WaitGroup
		for _, src := range []string{"/uploads/b.png", "/uploads/c.png"} {
			wg.Add(1)
			go func(src string) {
				defer wg.Done()
				_, err := svc.Update(context.Background(), &dto.AppShowcaseRequest{}, []models.SliderImage{{Src: src}})
				assert.NoError(t, err)
			}(src)
		}
		wg.Wait()

		var srcs []string
		for _, img := range repo.current.SliderImages {
			srcs = append(srcs, img.Src)
		}
		assert.Len(t, srcs, 3)
		assert.ElementsMatch(t, []string{"/uploads/old.png", "/uploads/b.png", "/uploads/c.png"}, srcs)
	})

	t.Run("explicit list replaces the stored one", func(t *testing.T) {
		repo := &fakeShowcase{current: &models.AppShowcase{ID: 1, SliderImages: stored}}
		req := &dto.AppShowcaseRequest{SliderImages: []models.SliderImage{}, Title: strPtr("App")}
		_, err := NewAppShowcaseService(repo).Update(context.Background(), req, uploaded)
		require.NoError(t, err)
		assert.Equal(t, uploaded, repo.fields["slider_images"])
		assert.Equal(t, "App", repo.fields["title"])
	})

	t.Run("empty request", func(t *testing.T) {
		repo := &fakeShowcase{}
		_, err := NewAppShowcaseService(repo).Update(context.Background(), &dto.AppShowcaseRequest{}, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Nil(t, repo.fields)
	})
}

func TestDashboardService_Metrics(t *testing.T) {
	svc := &dashboardServiceImpl{
		services:     fakeCounter{n: 6},
		courses:      fakeCounter{n: 4},
		news:         fakeCounter{n: 12},
		events:       fakeCounter{n: 3},
		team:         fakeCounter{n: 8},
		testimonials: fakeCounter{n: 5},
		enrollments:  &fakeEnrollments{count: 40, pending: 7},
	}

	m, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardMetrics{
		Services: 6, Courses: 4, News: 12, Events: 3, TeamMembers: 8,
		Testimonials: 5, Enrollments: 40, PendingEnrollments: 7,
	}, *m)

	svc.news = fakeCounter{err: errors.New("connection reset")}
	_, err = svc.Metrics(context.Background())
	assert.EqualError(t, err, "connection reset")
}

func TestCheckRating(t *testing.T) {
	assert.NoError(t, checkRating(1))
	assert.NoError(t, checkRating(5))
	assert.Error(t, checkRating(0))
	assert.Error(t, checkRating(6))
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2025-01-02T03:04:05Z", "2025-01-02T03:04:05", "2025-01-02T03:04", " 2025-01-02 "} {
		_, err := parseDate("date", in)
		assert.NoError(t, err, in)
	}
	_, err := parseDate("date", "02/01/2025")
	assert.Error(t, err)
}
