package seed

import (
	"context"
	"errors"
	"testing"

	appModels "github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmin struct {
	calls   int
	created bool
	err     error
}

func (f *fakeAdmin) EnsureAdmin(context.Context, string, string, string) (bool, error) {
	f.calls++
	return f.created, f.err
}

type fakeAbout struct {
	stored *appModels.AboutContent
	getErr error
}

func (f *fakeAbout) Get(context.Context) (*appModels.AboutContent, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return f.stored, nil
}

func (f *fakeAbout) Upsert(_ context.Context, a *appModels.AboutContent) (*appModels.AboutContent, error) {
	f.stored = a
	return a, nil
}

type fakeStats struct {
	rows     []*appModels.Stat
	countErr error
	replaced int
}

func (f *fakeStats) GetAll(context.Context) ([]*appModels.Stat, error) { return f.rows, nil }

func (f *fakeStats) ReplaceAll(_ context.Context, stats []*appModels.Stat) ([]*appModels.Stat, error) {
	f.replaced++
	f.rows = stats
	return stats, nil
}

func (f *fakeStats) Count(context.Context) (int64, error) {
	return int64(len(f.rows)), f.countErr
}

var admin = AdminAccount{Username: "admin", Email: "admin@example.com", Password: "admin123456"}

func TestCreateDefaultDataFillsEmptyDatabase(t *testing.T) {
	src := Sources{Auth: &fakeAdmin{created: true}, About: &fakeAbout{}, Stats: &fakeStats{}}

	require.NoError(t, CreateDefaultData(context.Background(), src, admin, zerolog.Nop()))

	about := src.About.(*fakeAbout).stored
	require.NotNil(t, about)
	assert.Equal(t, DefaultAbout.Title, about.Title)

	stats := src.Stats.(*fakeStats)
	require.Len(t, stats.rows, len(DefaultStats))
	assert.Equal(t, "50+", stats.rows[0].Value)
}

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	existing := &appModels.AboutContent{ID: 1, Title: "Custom"}
	stats := &fakeStats{rows: []*appModels.Stat{{ID: 1, Label: "Kept"}}}
	src := Sources{Auth: &fakeAdmin{}, About: &fakeAbout{stored: existing}, Stats: stats}

	require.NoError(t, CreateDefaultData(context.Background(), src, admin, zerolog.Nop()))

	assert.Same(t, existing, src.About.(*fakeAbout).stored)
	assert.Zero(t, stats.replaced)
}

func TestCreateDefaultDataJoinsErrors(t *testing.T) {
	adminErr := errors.New("admin failed")
	aboutErr := errors.New("about failed")
	countErr := errors.New("count failed")
	src := Sources{
		Auth:  &fakeAdmin{err: adminErr},
		About: &fakeAbout{getErr: aboutErr},
		Stats: &fakeStats{countErr: countErr},
	}

	err := CreateDefaultData(context.Background(), src, admin, zerolog.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, adminErr)
	assert.ErrorIs(t, err, aboutErr)
	assert.ErrorIs(t, err, countErr)
	assert.Equal(t, 1, src.Auth.(*fakeAdmin).calls)
}
