package dto

// CreateFaqRequest is the body of POST /api/admin/faqs
type CreateFaqRequest struct {
	Question     string `json:"question" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
	Category     string `json:"category"`
	DisplayOrder *int   `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

// UpdateFaqRequest is the body of PUT /api/admin/faqs/:id
type UpdateFaqRequest struct {
	Question     *string `json:"question" binding:"omitempty,min=1"`
	Answer       *string `json:"answer" binding:"omitempty,min=1"`
	Category     *string `json:"category"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// Fields returns the columns present in the request
func (r *UpdateFaqRequest) Fields() map[string]interface{} {
	f := fields{}
	f.str("question", r.Question)
	f.str("answer", r.Answer)
	f.str("category", r.Category)
	f.num("display_order", r.DisplayOrder)
	f.flag("is_active", r.IsActive)
	return f
}
