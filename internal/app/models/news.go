package models

import "time"

// News is a news article
type News struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Excerpt     string     `json:"excerpt" db:"excerpt"`
	Author      string     `json:"author" db:"author"`
	Category    string     `json:"category" db:"category"`
	Tags        []string   `json:"tags" db:"tags"`
	ImageURL    *string    `json:"imageUrl" db:"image_url"`
	IsPublished bool       `json:"isPublished" db:"is_published"`
	PublishedAt *time.Time `json:"publishedAt" db:"published_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
