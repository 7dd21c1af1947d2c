package services

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
)

// TeamService manages team members
type TeamService interface {
	List(ctx context.Context) ([]*models.TeamMember, error)
	Get(ctx context.Context, id int64) (*models.TeamMember, error)
	Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTeamMemberRequest) (*models.TeamMember, error)
	Delete(ctx context.Context, id int64) error
}

type teamServiceImpl struct {
	repo TeamMemberRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(repo TeamMemberRepository) TeamService {
	return &teamServiceImpl{repo: repo}
}

func (s *teamServiceImpl) List(ctx context.Context) ([]*models.TeamMember, error) {
	return s.repo.GetAll(ctx)
}

func (s *teamServiceImpl) Get(ctx context.Context, id int64) (*models.TeamMember, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *teamServiceImpl) Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error) {
	return s.repo.Create(ctx, &models.TeamMember{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		Email:        nilIfBlank(req.Email),
		Linkedin:     nilIfBlank(req.Linkedin),
		Twitter:      nilIfBlank(req.Twitter),
		Department:   req.Department,
		ImageURL:     nilIfBlank(req.ImageURL),
		DisplayOrder: req.DisplayOrder,
	})
}

func (s *teamServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateTeamMemberRequest) (*models.TeamMember, error) {
	fields := req.Fields()
	// Blank optional contact fields clear the column
	for column, value := range map[string]*string{"email": req.Email, "linkedin": req.Linkedin, "twitter": req.Twitter} {
		if value != nil {
			fields[column] = nilIfBlank(value)
		}
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *teamServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
