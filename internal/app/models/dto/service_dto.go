package dto

// CreateServiceRequest is the body of POST /api/admin/services (JSON or multipart)
type CreateServiceRequest struct {
	Title       string   `json:"title" form:"title" binding:"required,max=255"`
	Description string   `json:"description" form:"description" binding:"required"`
	Features    []string `json:"features" form:"features"`
	Icon        string   `json:"icon" form:"icon" binding:"required"`
	Category    string   `json:"category" form:"category" binding:"required"`
	ImageURL    *string  `json:"imageUrl" form:"imageUrl"`
	Status      string   `json:"status" form:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateServiceRequest is the body of PUT /api/admin/services/:id
type UpdateServiceRequest struct {
	Title       *string  `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description" form:"description" binding:"omitempty,min=1"`
	Features    []string `json:"features" form:"features"`
	Icon        *string  `json:"icon" form:"icon" binding:"omitempty,min=1"`
	Category    *string  `json:"category" form:"category" binding:"omitempty,min=1"`
	ImageURL    *string  `json:"imageUrl" form:"imageUrl"`
	Status      *string  `json:"status" form:"status" binding:"omitempty,oneof=active inactive"`
}

// Fields returns the columns present in the request
func (r *UpdateServiceRequest) Fields() map[string]interface{} {
	f := fields{}
	f.str("title", r.Title)
	f.str("description", r.Description)
	f.list("features", r.Features)
	f.str("icon", r.Icon)
	f.str("category", r.Category)
	f.str("image_url", r.ImageURL)
	f.str("status", r.Status)
	return f
}
