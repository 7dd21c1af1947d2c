package models

import "time"

// Testimonial is a customer quote
type Testimonial struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Position     string    `json:"position" db:"position"`
	Content      string    `json:"content" db:"content"`
	ImageURL     *string   `json:"imageUrl" db:"image_url"`
	Rating       int       `json:"rating" db:"rating" example:"5"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
