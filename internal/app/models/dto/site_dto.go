package dto

import "github.com/memitrading/memi/internal/app/models"

// AboutRequest is the body of PUT /api/admin/about
type AboutRequest struct {
	Title    string `json:"title" binding:"required"`
	Heading  string `json:"heading" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// StatRequest is one element of the PUT /api/admin/stats array
type StatRequest struct {
	Icon  string `json:"icon" binding:"required"`
	Value string `json:"value" binding:"required"`
	Label string `json:"label" binding:"required"`
	Order int    `json:"order"`
}

// CreateAppFeatureRequest is the body of POST /api/admin/app-features
type CreateAppFeatureRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
	Order       int    `json:"order"`
}

// UpdateAppFeatureRequest is the body of PUT /api/admin/app-features/:id
type UpdateAppFeatureRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Icon        *string `json:"icon" binding:"omitempty,min=1"`
	Order       *int    `json:"order"`
}

// Fields returns the columns present in the request
func (r *UpdateAppFeatureRequest) Fields() map[string]interface{} {
	f := fields{}
	f.str("title", r.Title)
	f.str("description", r.Description)
	f.str("icon", r.Icon)
	f.num("sort_order", r.Order)
	return f
}

// AppShowcaseRequest is the body of PUT /api/admin/app-showcase. Absent fields
// are left unchanged. In multipart requests sliderImages is a JSON array string
// and uploaded sliderImages files are appended to it.
type AppShowcaseRequest struct {
	Title        *string              `json:"title" form:"title" binding:"omitempty,min=1"`
	Description  *string              `json:"description" form:"description" binding:"omitempty,min=1"`
	Features     []string             `json:"features" form:"features"`
	SliderImages []models.SliderImage `json:"sliderImages" form:"-" binding:"omitempty,dive"`
}
