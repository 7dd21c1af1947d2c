package dto

// CreateTeamMemberRequest is the body of POST /api/admin/team (JSON or multipart)
type CreateTeamMemberRequest struct {
	Name         string  `json:"name" form:"name" binding:"required,max=255"`
	Position     string  `json:"position" form:"position" binding:"required"`
	Bio          string  `json:"bio" form:"bio"`
	Email        *string `json:"email" form:"email" binding:"omitempty,optionalemail"`
	Linkedin     *string `json:"linkedin" form:"linkedin"`
	Twitter      *string `json:"twitter" form:"twitter"`
	Department   string  `json:"department" form:"department"`
	ImageURL     *string `json:"imageUrl" form:"imageUrl"`
	DisplayOrder int     `json:"displayOrder" form:"displayOrder"`
}

// UpdateTeamMemberRequest is the body of PUT /api/admin/team/:id
type UpdateTeamMemberRequest struct {
	Name         *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
	Position     *string `json:"position" form:"position" binding:"omitempty,min=1"`
	Bio          *string `json:"bio" form:"bio"`
	Email        *string `json:"email" form:"email" binding:"omitempty,optionalemail"`
	Linkedin     *string `json:"linkedin" form:"linkedin"`
	Twitter      *string `json:"twitter" form:"twitter"`
	Department   *string `json:"department" form:"department"`
	ImageURL     *string `json:"imageUrl" form:"imageUrl"`
	DisplayOrder *int    `json:"displayOrder" form:"displayOrder"`
}

// Fields returns the columns present in the request
func (r *UpdateTeamMemberRequest) Fields() map[string]interface{} {
	f := fields{}
	f.str("name", r.Name)
	f.str("position", r.Position)
	f.str("bio", r.Bio)
	f.str("email", r.Email)
	f.str("linkedin", r.Linkedin)
	f.str("twitter", r.Twitter)
	f.str("department", r.Department)
	f.str("image_url", r.ImageURL)
	f.num("display_order", r.DisplayOrder)
	return f
}
