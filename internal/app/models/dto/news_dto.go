package dto

// CreateNewsRequest is the body of POST /api/admin/news (JSON or multipart).
// PublishedAt accepts RFC 3339, "2006-01-02T15:04" or "2006-01-02".
type CreateNewsRequest struct {
	Title       string   `json:"title" form:"title" binding:"required,max=255"`
	Content     string   `json:"content" form:"content" binding:"required"`
	Excerpt     string   `json:"excerpt" form:"excerpt"`
	Author      string   `json:"author" form:"author"`
	Category    string   `json:"category" form:"category"`
	Tags        []string `json:"tags" form:"tags"`
	ImageURL    *string  `json:"imageUrl" form:"imageUrl"`
	IsPublished bool     `json:"isPublished" form:"isPublished"`
	PublishedAt *string  `json:"publishedAt" form:"publishedAt"`
}

// UpdateNewsRequest is the body of PUT /api/admin/news/:id
type UpdateNewsRequest struct {
	Title       *string  `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Content     *string  `json:"content" form:"content" binding:"omitempty,min=1"`
	Excerpt     *string  `json:"excerpt" form:"excerpt"`
	Author      *string  `json:"author" form:"author"`
	Category    *string  `json:"category" form:"category"`
	Tags        []string `json:"tags" form:"tags"`
	ImageURL    *string  `json:"imageUrl" form:"imageUrl"`
	IsPublished *bool    `json:"isPublished" form:"isPublished"`
	PublishedAt *string  `json:"publishedAt" form:"publishedAt"`
}

// Fields returns the columns present in the request, except published_at which
// needs parsing
func (r *UpdateNewsRequest) Fields() map[string]interface{} {
	f := fields{}
	f.str("title", r.Title)
	f.str("content", r.Content)
	f.str("excerpt", r.Excerpt)
	f.str("author", r.Author)
	f.str("category", r.Category)
	f.list("tags", r.Tags)
	f.str("image_url", r.ImageURL)
	f.flag("is_published", r.IsPublished)
	return f
}
