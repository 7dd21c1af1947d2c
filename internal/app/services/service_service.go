package services

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
)

// ServiceService manages the services offered on the site
type ServiceService interface {
	List(ctx context.Context) ([]*models.Service, error)
	Get(ctx context.Context, id int64) (*models.Service, error)
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*models.Service, error)
	Update(ctx context.Context, id int64, req *dto.UpdateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, id int64) error
}

type serviceServiceImpl struct {
	repo ServiceRepository
}

// NewServiceService creates a new ServiceService
func NewServiceService(repo ServiceRepository) ServiceService {
	return &serviceServiceImpl{repo: repo}
}

func (s *serviceServiceImpl) List(ctx context.Context) ([]*models.Service, error) {
	return s.repo.GetAll(ctx)
}

func (s *serviceServiceImpl) Get(ctx context.Context, id int64) (*models.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *serviceServiceImpl) Create(ctx context.Context, req *dto.CreateServiceRequest) (*models.Service, error) {
	status := req.Status
	if status == "" {
		status = models.ServiceStatusActive
	}
	features := dto.NormalizeList(req.Features)
	if features == nil {
		features = []string{}
	}

	return s.repo.Create(ctx, &models.Service{
		Title:       req.Title,
		Description: req.Description,
		Features:    features,
		Icon:        req.Icon,
		Category:    req.Category,
		ImageURL:    nilIfBlank(req.ImageURL),
		Status:      status,
	})
}

func (s *serviceServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateServiceRequest) (*models.Service, error) {
	return s.repo.Update(ctx, id, req.Fields())
}

func (s *serviceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
