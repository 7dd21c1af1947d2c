package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/filestorage"
	"github.com/memitrading/memi/internal/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

type recordingStorage struct {
	saved   []string
	deleted []string
}

func (s *recordingStorage) Save(_ context.Context, obj filestorage.Object) (string, error) {
	url := "/uploads/" + obj.Name
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *recordingStorage) Delete(_ context.Context, fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return nil
}

type fakeShowcase struct {
	calls    int
	req      *dto.AppShowcaseRequest
	uploaded []models.SliderImage
	err      error
}

func (f *fakeShowcase) Get(context.Context) (*models.AppShowcase, error) { return nil, nil }

func (f *fakeShowcase) Update(_ context.Context, req *dto.AppShowcaseRequest, uploaded []models.SliderImage) (*models.AppShowcase, error) {
	f.calls++
	f.req = req
	f.uploaded = uploaded
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppShowcase{ID: 1, SliderImages: append(req.SliderImages, uploaded...)}, nil
}

type fakeTeam struct {
	created *dto.CreateTeamMemberRequest
}

func (f *fakeTeam) List(context.Context) ([]*models.TeamMember, error) { return nil, nil }
func (f *fakeTeam) Get(context.Context, int64) (*models.TeamMember, error) { return nil, nil }
func (f *fakeTeam) Delete(context.Context, int64) error { return nil }
func (f *fakeTeam) Update(context.Context, int64, *dto.UpdateTeamMemberRequest) (*models.TeamMember, error) {
	return nil, nil
}

func (f *fakeTeam) Create(_ context.Context, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error) {
	f.created = req
	return &models.TeamMember{ID: 1, Name: req.Name, Position: req.Position}, nil
}

type form struct {
	buf *bytes.Buffer
	w   *multipart.Writer
}

func newForm() *form {
	buf := &bytes.Buffer{}
	return &form{buf: buf, w: multipart.NewWriter(buf)}
}

func (f *form) field(t *testing.T, name, value string) *form {
	require.NoError(t, f.w.WriteField(name, value))
	return f
}

func (f *form) png(t *testing.T, field, filename string) *form {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", "image/png")
	part, err := f.w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(pngBytes)
	require.NoError(t, err)
	return f
}

func (f *form) request(t *testing.T, method, path string) *http.Request {
	require.NoError(t, f.w.Close())
	req := httptest.NewRequest(method, path, f.buf)
	req.Header.Set("Content-Type", f.w.FormDataContentType())
	return req
}

func serve(handler gin.HandlerFunc, method, path string, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	validation.Register()
	r := gin.New()
	r.Handle(method, path, handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorDetail(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestUpdateAppShowcaseMultipart(t *testing.T) {
	storage := &recordingStorage{}
	svc := &fakeShowcase{}
	ctl := NewSiteController(nil, nil, nil, svc, filestorage.NewUploader(storage, 1<<20))

	req := newForm().
		field(t, "title", "MEMI App").
		field(t, "sliderImages", `[{"src":"/uploads/old.png","alt":"Home"}]`).
		png(t, "sliderImages", "one.png").
		png(t, "sliderImages", "two.png").
		request(t, http.MethodPut, "/showcase")

	w := serve(ctl.UpdateAppShowcase, http.MethodPut, "/showcase", req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, 1, svc.calls)
	require.NotNil(t, svc.req.Title)
	assert.Equal(t, "MEMI App", *svc.req.Title)
	assert.Equal(t, []models.SliderImage{{Src: "/uploads/old.png", Alt: "Home"}}, svc.req.SliderImages)
	require.Len(t, svc.uploaded, 2)
	assert.Equal(t, storage.saved, []string{svc.uploaded[0].Src, svc.uploaded[1].Src})
	assert.Empty(t, svc.uploaded[0].Alt)
}

func TestUpdateAppShowcaseRejectsBadSliderList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		field string
	}{
		{"not json", `not-json`, "sliderImages"},
		{"missing src", `[{"alt":"x"}]`, "sliderImages[0].src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &recordingStorage{}
			svc := &fakeShowcase{}
			ctl := NewSiteController(nil, nil, nil, svc, filestorage.NewUploader(storage, 1<<20))

			req := newForm().
				field(t, "sliderImages", tt.value).
				png(t, "sliderImages", "one.png").
				request(t, http.MethodPut, "/showcase")

			w := serve(ctl.UpdateAppShowcase, http.MethodPut, "/showcase", req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.field, errorDetail(t, w).Field)
			assert.Zero(t, svc.calls)
			assert.Empty(t, storage.saved)
		})
	}
}

func TestUpdateAppShowcaseDiscardsUploadsOnFailure(t *testing.T) {
	storage := &recordingStorage{}
	svc := &fakeShowcase{err: errors.New("database down")}
	ctl := NewSiteController(nil, nil, nil, svc, filestorage.NewUploader(storage, 1<<20))

	req := newForm().png(t, "sliderImages", "one.png").request(t, http.MethodPut, "/showcase")

	w := serve(ctl.UpdateAppShowcase, http.MethodPut, "/showcase", req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, storage.saved, 1)
	assert.Equal(t, storage.saved, storage.deleted)
}

func TestCreateTeamMemberBlankEmail(t *testing.T) {
	storage := &recordingStorage{}
	svc := &fakeTeam{}
	ctl := NewTeamController(svc, filestorage.NewUploader(storage, 1<<20))

	req := newForm().
		field(t, "name", "Jane").
		field(t, "position", "Analyst").
		field(t, "email", "").
		png(t, "image", "jane.png").
		request(t, http.MethodPost, "/team")

	w := serve(ctl.Create, http.MethodPost, "/team", req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, svc.created)
	require.NotNil(t, svc.created.ImageURL)
	assert.Equal(t, storage.saved[0], *svc.created.ImageURL)
}

func TestCreateTeamMemberInvalidEmail(t *testing.T) {
	svc := &fakeTeam{}
	ctl := NewTeamController(svc, filestorage.NewUploader(&recordingStorage{}, 1<<20))

	req := newForm().
		field(t, "name", "Jane").
		field(t, "position", "Analyst").
		field(t, "email", "not-an-email").
		request(t, http.MethodPost, "/team")

	w := serve(ctl.Create, http.MethodPost, "/team", req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email", errorDetail(t, w).Field)
	assert.Nil(t, svc.created)
}

func TestIDParamRejectsNonPositive(t *testing.T) {
	ctl := NewEnrollmentController(nil)

	for _, id := range []string{"0", "-3", "abc"} {
		w := serve(ctl.Delete, http.MethodDelete, "/enrollments/:id", httptest.NewRequest(http.MethodDelete, "/enrollments/"+id, nil))
		require.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Equal(t, "id", errorDetail(t, w).Field)
	}
}
