package dto

// CreateTestimonialRequest is the body of POST /api/admin/testimonials (JSON or multipart)
type CreateTestimonialRequest struct {
	Name         string  `json:"name" form:"name" binding:"required,max=255"`
	Position     string  `json:"position" form:"position"`
	Content      string  `json:"content" form:"content" binding:"required"`
	ImageURL     *string `json:"imageUrl" form:"imageUrl"`
	Rating       int     `json:"rating" form:"rating" binding:"required,gte=1,lte=5"`
	IsActive     *bool   `json:"isActive" form:"isActive"`
	DisplayOrder int     `json:"displayOrder" form:"displayOrder"`
}

// UpdateTestimonialRequest is the body of PUT /api/admin/testimonials/:id
type UpdateTestimonialRequest struct {
	Name         *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
	Position     *string `json:"position" form:"position"`
	Content      *string `json:"content" form:"content" binding:"omitempty,min=1"`
	ImageURL     *string `json:"imageUrl" form:"imageUrl"`
	Rating       *int    `json:"rating" form:"rating" binding:"omitempty,gte=1,lte=5"`
	IsActive     *bool   `json:"isActive" form:"isActive"`
	DisplayOrder *int    `json:"displayOrder" form:"displayOrder"`
}

// Fields returns the columns present in the request
func (r *UpdateTestimonialRequest) Fields() map[string]interface{} {
	f := fields{}
	f.str("name", r.Name)
	f.str("position", r.Position)
	f.str("content", r.Content)
	f.str("image_url", r.ImageURL)
	f.num("rating", r.Rating)
	f.flag("is_active", r.IsActive)
	f.num("display_order", r.DisplayOrder)
	return f
}
