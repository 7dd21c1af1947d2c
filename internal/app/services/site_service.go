package services

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/sanitizer"
)

// AboutService manages the about section
type AboutService interface {
	Get(ctx context.Context) (*models.AboutContent, error)
	Update(ctx context.Context, req *dto.AboutRequest) (*models.AboutContent, error)
}

type aboutServiceImpl struct {
	repo AboutRepository
}

// NewAboutService creates a new AboutService
func NewAboutService(repo AboutRepository) AboutService {
	return &aboutServiceImpl{repo: repo}
}

func (s *aboutServiceImpl) Get(ctx context.Context) (*models.AboutContent, error) {
	return s.repo.Get(ctx)
}

func (s *aboutServiceImpl) Update(ctx context.Context, req *dto.AboutRequest) (*models.AboutContent, error) {
	return s.repo.Upsert(ctx, &models.AboutContent{
		Title:    req.Title,
		Heading:  req.Heading,
		Content:  sanitizer.HTML(req.Content),
		Location: req.Location,
	})
}

// StatService manages the headline stats
type StatService interface {
	List(ctx context.Context) ([]*models.Stat, error)
	Replace(ctx context.Context, reqs []dto.StatRequest) ([]*models.Stat, error)
}

type statServiceImpl struct {
	repo StatRepository
}

// NewStatService creates a new StatService
func NewStatService(repo StatRepository) StatService {
	return &statServiceImpl{repo: repo}
}

func (s *statServiceImpl) List(ctx context.Context) ([]*models.Stat, error) {
	return s.repo.GetAll(ctx)
}

// Replace swaps the whole set of stats for reqs, keeping their order
func (s *statServiceImpl) Replace(ctx context.Context, reqs []dto.StatRequest) ([]*models.Stat, error) {
	stats := make([]*models.Stat, 0, len(reqs))
	for _, r := range reqs {
		stats = append(stats, &models.Stat{
			Icon:  r.Icon,
			Value: r.Value,
			Label: r.Label,
			Order: r.Order,
		})
	}
	return s.repo.ReplaceAll(ctx, stats)
}

// AppFeatureService manages the app feature cards
type AppFeatureService interface {
	List(ctx context.Context) ([]*models.AppFeature, error)
	Get(ctx context.Context, id int64) (*models.AppFeature, error)
	Create(ctx context.Context, req *dto.CreateAppFeatureRequest) (*models.AppFeature, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAppFeatureRequest) (*models.AppFeature, error)
	Delete(ctx context.Context, id int64) error
}

type appFeatureServiceImpl struct {
	repo AppFeatureRepository
}

// NewAppFeatureService creates a new AppFeatureService
func NewAppFeatureService(repo AppFeatureRepository) AppFeatureService {
	return &appFeatureServiceImpl{repo: repo}
}

func (s *appFeatureServiceImpl) List(ctx context.Context) ([]*models.AppFeature, error) {
	return s.repo.GetAll(ctx)
}

func (s *appFeatureServiceImpl) Get(ctx context.Context, id int64) (*models.AppFeature, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *appFeatureServiceImpl) Create(ctx context.Context, req *dto.CreateAppFeatureRequest) (*models.AppFeature, error) {
	return s.repo.Create(ctx, &models.AppFeature{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	})
}

func (s *appFeatureServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateAppFeatureRequest) (*models.AppFeature, error) {
	return s.repo.Update(ctx, id, req.Fields())
}

func (s *appFeatureServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// AppShowcaseService manages the app showcase section
type AppShowcaseService interface {
	Get(ctx context.Context) (*models.AppShowcase, error)
	// Update applies req; uploaded holds already stored slider images appended after req.SliderImages
	Update(ctx context.Context, req *dto.AppShowcaseRequest, uploaded []models.SliderImage) (*models.AppShowcase, error)
}

type appShowcaseServiceImpl struct {
	repo AppShowcaseRepository
}

// NewAppShowcaseService creates a new AppShowcaseService
func NewAppShowcaseService(repo AppShowcaseRepository) AppShowcaseService {
	return &appShowcaseServiceImpl{repo: repo}
}

func (s *appShowcaseServiceImpl) Get(ctx context.Context) (*models.AppShowcase, error) {
	return s.repo.Get(ctx)
}

func (s *appShowcaseServiceImpl) Update(ctx context.Context, req *dto.AppShowcaseRequest, uploaded []models.SliderImage) (*models.AppShowcase, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Features != nil {
		fields["features"] = dto.NormalizeList(req.Features)
	}

	// Uploads without an explicit list extend the stored one
	if req.SliderImages == nil && len(uploaded) > 0 {
		return s.repo.AppendSliderImages(ctx, fields, uploaded)
	}

	if req.SliderImages != nil {
		merged := make([]models.SliderImage, 0, len(req.SliderImages)+len(uploaded))
		merged = append(merged, req.SliderImages...)
		merged = append(merged, uploaded...)
		fields["slider_images"] = merged
	}

	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("body", "no fields to update")
	}
	return s.repo.Upsert(ctx, fields)
}
