package services

import (
	"context"
	"sync"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/pkg/apperrors"
)

type fakeUsers struct {
	byEmail  map[string]*models.User
	created  []*models.User
	password map[int64]string
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{byEmail: map[string]*models.User{}, password: map[int64]string{}}
	for _, u := range users {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) (*models.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	created := *user
	created.ID = int64(len(f.byEmail) + 1)
	f.byEmail[created.Email] = &created
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.password[id] = hash
	return nil
}

type fakeNews struct {
	current *models.News
	created *models.News
	updated map[string]interface{}
}

func (f *fakeNews) GetAll(context.Context) ([]*models.News, error) { return nil, nil }

func (f *fakeNews) GetByID(_ context.Context, id int64) (*models.News, error) {
	if f.current == nil || f.current.ID != id {
		return nil, apperrors.ErrResourceNotFound
	}
	return f.current, nil
}

func (f *fakeNews) Create(_ context.Context, n *models.News) (*models.News, error) {
	f.created = n
	return n, nil
}

func (f *fakeNews) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.News, error) {
	f.updated = fields
	return &models.News{ID: id}, nil
}

func (f *fakeNews) Delete(context.Context, int64) error  { return nil }
func (f *fakeNews) Count(context.Context) (int64, error) { return 0, nil }

type fakeEvents struct {
	current *models.Event
	created *models.Event
	updated map[string]interface{}
}

func (f *fakeEvents) GetAll(context.Context) ([]*models.Event, error) { return nil, nil }

func (f *fakeEvents) GetByID(_ context.Context, id int64) (*models.Event, error) {
	if f.current == nil || f.current.ID != id {
		return nil, apperrors.ErrResourceNotFound
	}
	return f.current, nil
}

func (f *fakeEvents) Create(_ context.Context, e *models.Event) (*models.Event, error) {
	f.created = e
	return e, nil
}

func (f *fakeEvents) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.Event, error) {
	f.updated = fields
	return &models.Event{ID: id}, nil
}

func (f *fakeEvents) Delete(context.Context, int64) error { return nil }
func (f *fakeEvents) Count(context.Context) (int64, error) { return 0, nil }

type fakeCourses struct {
	courses map[int64]*models.Course
	created *models.Course
	count   int64
}

func (f *fakeCourses) GetAll(context.Context) ([]*models.Course, error) { return nil, nil }

func (f *fakeCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	if c, ok := f.courses[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeCourses) Create(_ context.Context, c *models.Course) (*models.Course, error) {
	f.created = c
	return c, nil
}

func (f *fakeCourses) Update(_ context.Context, id int64, _ map[string]interface{}) (*models.Course, error) {
	return &models.Course{ID: id}, nil
}

func (f *fakeCourses) Delete(context.Context, int64) error { return nil }
func (f *fakeCourses) Count(context.Context) (int64, error) { return f.count, nil }

type fakeEnrollments struct {
	created   *models.Enrollment
	createErr error
	status    map[int64]string
	count     int64
	pending   int64
}

func (f *fakeEnrollments) GetAll(context.Context) ([]*models.Enrollment, error) { return nil, nil }

func (f *fakeEnrollments) GetByID(context.Context, int64) (*models.Enrollment, error) {
	return nil, apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollments) Create(_ context.Context, e *models.Enrollment) (*models.Enrollment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *e
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeEnrollments) UpdateStatus(_ context.Context, id int64, status string) (*models.Enrollment, error) {
	if f.status == nil {
		f.status = map[int64]string{}
	}
	f.status[id] = status
	return &models.Enrollment{ID: id, Status: status}, nil
}

func (f *fakeEnrollments) Delete(context.Context, int64) error { return nil }
func (f *fakeEnrollments) Count(context.Context) (int64, error) { return f.count, nil }

func (f *fakeEnrollments) CountByStatus(_ context.Context, status string) (int64, error) {
	if status == models.EnrollmentStatusPending {
		return f.pending, nil
	}
	return 0, nil
}

// fakeShowcase serialises writes the way the row lock does
type fakeShowcase struct {
	mu      sync.Mutex
	current *models.AppShowcase
	fields  map[string]interface{}
}

func (f *fakeShowcase) Get(context.Context) (*models.AppShowcase, error) {
	if f.current == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return f.current, nil
}

func (f *fakeShowcase) Upsert(_ context.Context, fields map[string]interface{}) (*models.AppShowcase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
	return &models.AppShowcase{ID: 1}, nil
}

func (f *fakeShowcase) AppendSliderImages(_ context.Context, fields map[string]interface{}, images []models.SliderImage) (*models.AppShowcase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return nil, apperrors.ErrSingletonIncomplete
	}
	merged := append(append([]models.SliderImage{}, f.current.SliderImages...), images...)
	f.current = &models.AppShowcase{ID: f.current.ID, SliderImages: merged}
	f.fields = fields
	return f.current, nil
}

type fakeCounter struct {
	n   int64
	err error
}

func (f fakeCounter) Count(context.Context) (int64, error) { return f.n, f.err }
