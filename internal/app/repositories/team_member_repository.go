package repositories

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

var teamMemberColumns = []string{
	"id", "name", "position", "bio", "email", "linkedin", "twitter", "department",
	"image_url", "display_order", "created_at", "updated_at",
}

func scanTeamMember(row rowScanner) (*models.TeamMember, error) {
	m := &models.TeamMember{}
	err := row.Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.Email, &m.Linkedin, &m.Twitter, &m.Department,
		&m.ImageURL, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// TeamMemberRepository handles team member database operations
type TeamMemberRepository struct {
	t *table[models.TeamMember]
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(conn db.DBTX) *TeamMemberRepository {
	return &TeamMemberRepository{t: newTable(conn, "team_members", teamMemberColumns, []string{"display_order ASC", "id ASC"}, scanTeamMember)}
}

// GetAll retrieves all team members in display order
func (r *TeamMemberRepository) GetAll(ctx context.Context) ([]*models.TeamMember, error) {
	return r.t.list(ctx, nil)
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	return r.t.get(ctx, id)
}

// Create inserts a team member
func (r *TeamMemberRepository) Create(ctx context.Context, m *models.TeamMember) (*models.TeamMember, error) {
	return r.t.insert(ctx, map[string]interface{}{
		"name":          m.Name,
		"position":      m.Position,
		"bio":           m.Bio,
		"email":         m.Email,
		"linkedin":      m.Linkedin,
		"twitter":       m.Twitter,
		"department":    m.Department,
		"image_url":     m.ImageURL,
		"display_order": m.DisplayOrder,
	})
}

// Update applies a partial update
func (r *TeamMemberRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.TeamMember, error) {
	return r.t.update(ctx, id, fields)
}

// Delete removes a team member
func (r *TeamMemberRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

// Count returns the number of team members
func (r *TeamMemberRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx, nil)
}
