package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/controllers"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/routes"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/auth"
	"github.com/memitrading/memi/internal/pkg/filestorage"
	"github.com/memitrading/memi/internal/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepo struct {
	users map[int64]*models.User
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *userRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	u.ID = int64(len(r.users) + 1)
	r.users[u.ID] = u
	return u, nil
}

func (r *userRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.users[id].Password = hash
	return nil
}

type serviceRepo struct {
	created int
}

func (r *serviceRepo) GetAll(context.Context) ([]*models.Service, error) { return []*models.Service{}, nil }
func (r *serviceRepo) GetByID(context.Context, int64) (*models.Service, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (r *serviceRepo) Create(_ context.Context, s *models.Service) (*models.Service, error) {
	r.created++
	s.ID = int64(r.created)
	return s, nil
}
func (r *serviceRepo) Update(context.Context, int64, map[string]interface{}) (*models.Service, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (r *serviceRepo) Delete(context.Context, int64) error { return apperrors.ErrResourceNotFound }
func (r *serviceRepo) Count(context.Context) (int64, error) { return int64(r.created), nil }

type aboutRepo struct{}

func (aboutRepo) Get(context.Context) (*models.AboutContent, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (aboutRepo) Upsert(_ context.Context, a *models.AboutContent) (*models.AboutContent, error) {
	return a, nil
}

type courseRepo struct {
	courses map[int64]*models.Course
}

func (r *courseRepo) GetAll(context.Context) ([]*models.Course, error) { return nil, nil }
func (r *courseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	if c, ok := r.courses[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrResourceNotFound
}
func (r *courseRepo) Create(_ context.Context, c *models.Course) (*models.Course, error) {
	return c, nil
}
func (r *courseRepo) Update(context.Context, int64, map[string]interface{}) (*models.Course, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (r *courseRepo) Delete(context.Context, int64) error { return nil }
func (r *courseRepo) Count(context.Context) (int64, error) { return int64(len(r.courses)), nil }

type enrollmentRepo struct {
	rows []*models.Enrollment
}

func (r *enrollmentRepo) GetAll(context.Context) ([]*models.Enrollment, error) { return r.rows, nil }
func (r *enrollmentRepo) GetByID(context.Context, int64) (*models.Enrollment, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (r *enrollmentRepo) Create(_ context.Context, e *models.Enrollment) (*models.Enrollment, error) {
	e.ID = int64(len(r.rows) + 1)
	e.CreatedAt = time.Now()
	r.rows = append(r.rows, e)
	return e, nil
}
func (r *enrollmentRepo) UpdateStatus(context.Context, int64, string) (*models.Enrollment, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (r *enrollmentRepo) Delete(context.Context, int64) error { return nil }
func (r *enrollmentRepo) Count(context.Context) (int64, error) { return int64(len(r.rows)), nil }
func (r *enrollmentRepo) CountByStatus(context.Context, string) (int64, error) {
	return 0, nil
}

type discardStorage struct {
	saved int
}

func (s *discardStorage) Save(_ context.Context, obj filestorage.Object) (string, error) {
	s.saved++
	return "/uploads/" + obj.Name, nil
}

func (s *discardStorage) Delete(context.Context, string) error { return nil }

type testApp struct {
	router      *gin.Engine
	jwt         *auth.JWTService
	users       *userRepo
	services    *serviceRepo
	enrollments *enrollmentRepo
	storage     *discardStorage
}

const adminPassword = "admin123456"

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Register()

	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)

	app := &testApp{
		jwt: auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour, TokenIssuer: "memi"}),
		users: &userRepo{users: map[int64]*models.User{
			1: {ID: 1, Username: "admin", Email: "admin@example.com", Password: hash, Role: "admin"},
		}},
		services:    &serviceRepo{},
		enrollments: &enrollmentRepo{},
		storage:     &discardStorage{},
	}

	courses := &courseRepo{courses: map[int64]*models.Course{
		7: {ID: 7, Title: "Technical Analysis 101"},
	}}
	uploader := filestorage.NewUploader(app.storage, 64)
	authService := services.NewAuthService(app.users, app.jwt)

	ctl := &routes.Controllers{
		Auth:        controllers.NewAuthController(authService),
		Health:      controllers.NewHealthController("test"),
		Service:     controllers.NewServiceController(services.NewServiceService(app.services), uploader),
		Site:        controllers.NewSiteController(services.NewAboutService(aboutRepo{}), nil, nil, nil, uploader),
		Course:      controllers.NewCourseController(nil, uploader),
		News:        controllers.NewNewsController(nil, uploader),
		Event:       controllers.NewEventController(nil, uploader),
		Team:        controllers.NewTeamController(nil, uploader),
		Faq:         controllers.NewFaqController(nil),
		Testimonial: controllers.NewTestimonialController(nil, uploader),
		Enrollment:  controllers.NewEnrollmentController(services.NewEnrollmentService(app.enrollments, courses)),
		Dashboard:   controllers.NewDashboardController(nil),
	}

	app.router = gin.New()
	routes.SetupRouter(app.router, ctl, middleware.NewAuthMiddleware(app.jwt, authService))
	return app
}

func (a *testApp) do(method, path, token, contentType string, body *bytes.Buffer) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postJSON(path, token string, payload interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	return a.do(http.MethodPost, path, token, "application/json", bytes.NewBuffer(raw))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	return *resp.Error
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/health", "", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestLoginThenMe(t *testing.T) {
	app := newTestApp(t)

	w := app.postJSON("/api/auth/login", "", map[string]string{
		"email":    "Admin@Example.com",
		"password": adminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "admin", login.User.Username)
	assert.NotContains(t, w.Body.String(), "password")

	w = app.do(http.MethodGet, "/api/auth/me", login.Token, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, int64(1), me.ID)
	assert.Equal(t, "admin@example.com", me.Email)
}

func TestLoginFailures(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		body   map[string]string
		status int
		code   dto.ErrorCode
	}{
		{"wrong password", map[string]string{"email": "admin@example.com", "password": "nope"}, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"unknown email", map[string]string{"email": "ghost@example.com", "password": adminPassword}, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"missing password", map[string]string{"email": "admin@example.com"}, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.postJSON("/api/auth/login", "", tt.body)
			require.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/admin/enrollments", "", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeTokenNotFound, decodeError(t, w).Code)

	w = app.do(http.MethodGet, "/api/admin/enrollments", "not.a.token", "", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, decodeError(t, w).Code)

	token, _, err := app.jwt.GenerateToken(1)
	require.NoError(t, err)
	w = app.do(http.MethodGet, "/api/admin/enrollments", token, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitEnrollment(t *testing.T) {
	app := newTestApp(t)
	valid := map[string]interface{}{
		"courseId":   7,
		"fullName":   "Jane Doe",
		"email":      "jane@example.com",
		"phone":      "+90 555 000 00 00",
		"education":  "BSc",
		"experience": "None",
		"motivation": "Learn",
		"status":     "approved",
	}

	t.Run("pending regardless of client status", func(t *testing.T) {
		w := app.postJSON("/api/enrollments", "", valid)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got models.Enrollment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, models.EnrollmentStatusPending, got.Status)
		assert.Equal(t, "Technical Analysis 101", got.CourseTitle)
	})

	t.Run("missing email", func(t *testing.T) {
		body := map[string]interface{}{}
		for k, v := range valid {
			if k != "email" {
				body[k] = v
			}
		}
		w := app.postJSON("/api/enrollments", "", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		detail := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
		assert.Equal(t, "email", detail.Field)
	})

	t.Run("unknown course", func(t *testing.T) {
		body := map[string]interface{}{}
		for k, v := range valid {
			body[k] = v
		}
		body["courseId"] = 999
		w := app.postJSON("/api/enrollments", "", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "courseId", decodeError(t, w).Field)
	})

	assert.Len(t, app.enrollments.rows, 1)
}

func TestOversizedUploadCreatesNothing(t *testing.T) {
	app := newTestApp(t)
	token, _, err := app.jwt.GenerateToken(1)
	require.NoError(t, err)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range map[string]string{"title": "Signals", "description": "Daily", "icon": "TrendingUp", "category": "trading"} {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("image", "big.png")
	require.NoError(t, err)
	_, err = part.Write([]byte(strings.Repeat("x", 1024)))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := app.do(http.MethodPost, "/api/admin/services", token, mw.FormDataContentType(), body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeUploadFailed, detail.Code)
	assert.Equal(t, "image", detail.Field)
	assert.Zero(t, app.services.created)
	assert.Zero(t, app.storage.saved)
}

func TestCreateServiceJSON(t *testing.T) {
	app := newTestApp(t)
	token, _, err := app.jwt.GenerateToken(1)
	require.NoError(t, err)

	w := app.postJSON("/api/admin/services", token, map[string]interface{}{
		"title":       "Signals",
		"description": "Daily",
		"icon":        "TrendingUp",
		"category":    "trading",
		"features":    []string{"a", "b"},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, []string{"a", "b"}, got.Features)
}

func TestAboutWithoutRowIsNull(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/about", "", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
}

func TestUnknownServiceIs404(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/services/42", "", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, decodeError(t, w).Code)

	w = app.do(http.MethodGet, "/api/services/abc", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
