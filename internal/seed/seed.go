package seed

import (
	"context"
	"errors"

	appModels "github.com/memitrading/memi/internal/app/models"
	appServices "github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// AdminEnsurer creates the bootstrap admin when missing
type AdminEnsurer interface {
	EnsureAdmin(ctx context.Context, username, email, password string) (bool, error)
}

// AdminAccount is the bootstrap admin taken from configuration
type AdminAccount struct {
	Username string
	Email    string
	Password string
}

// Sources holds what CreateDefaultData writes to
type Sources struct {
	Auth  AdminEnsurer
	About appServices.AboutRepository
	Stats appServices.StatRepository
}

// DefaultAbout is stored when the about section was never saved
var DefaultAbout = appModels.AboutContent{
	Title:   "About MEMI",
	Heading: "A Purpose-Driven Company",
	Content: "MeMi Trading is a fast-growing company based in Tigray, Ethiopia, with a vision to become one of Africa's top companies by 2033. " +
		"We focus on excellence, inclusiveness, and innovation to build a strong, sustainable brand. " +
		"Our mission is to bring world-class products and services from Tigray to the global market, powered by talented individuals. " +
		"We aim to create over 300,000 jobs for youth and women, helping to grow our community and economy.",
	Location: "Headquartered in Mekelle, Tigray, Ethiopia",
}

// DefaultStats are stored when there are no stats
var DefaultStats = []appModels.Stat{
	{Icon: "ri-team-line", Value: "50+", Label: "Young professionals trained", Order: 0},
	{Icon: "ri-building-line", Value: "4", Label: "Business divisions", Order: 1},
	{Icon: "ri-global-line", Value: "1", Label: "Digital marketplace", Order: 2},
	{Icon: "ri-calendar-event-line", Value: "12+", Label: "Community events", Order: 3},
}

// CreateDefaultData ensures the admin account exists and fills the about
// section and stats when they are empty. Every step runs even if an earlier
// one failed; the errors are joined.
func CreateDefaultData(ctx context.Context, src Sources, admin AdminAccount, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (admin, about, stats)...")
	var finalErr error

	created, err := src.Auth.EnsureAdmin(ctx, admin.Username, admin.Email, admin.Password)
	switch {
	case err != nil:
		lgr.Error().Err(err).Str("email", admin.Email).Msg("Error creating default admin")
		finalErr = errors.Join(finalErr, err)
	case created:
		lgr.Info().Str("email", admin.Email).Msg("Default admin user created")
	default:
		lgr.Debug().Str("email", admin.Email).Msg("Admin user already exists")
	}

	if _, err := src.About.Get(ctx); err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			lgr.Error().Err(err).Msg("Error reading about content")
			finalErr = errors.Join(finalErr, err)
		} else {
			about := DefaultAbout
			if _, err := src.About.Upsert(ctx, &about); err != nil {
				lgr.Error().Err(err).Msg("Error creating default about content")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Msg("Default about content created")
			}
		}
	}

	count, err := src.Stats.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting stats")
		return errors.Join(finalErr, err)
	}
	if count == 0 {
		stats := make([]*appModels.Stat, 0, len(DefaultStats))
		for i := range DefaultStats {
			s := DefaultStats[i]
			stats = append(stats, &s)
		}
		if _, err := src.Stats.ReplaceAll(ctx, stats); err != nil {
			lgr.Error().Err(err).Msg("Error creating default stats")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int("count", len(stats)).Msg("Default stats created")
		}
	}

	return finalErr
}
