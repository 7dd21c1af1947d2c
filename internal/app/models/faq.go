package models

import "time"

// Faq is a question and answer pair
type Faq struct {
	ID           int64     `json:"id" db:"id"`
	Question     string    `json:"question" db:"question"`
	Answer       string    `json:"answer" db:"answer"`
	Category     string    `json:"category" db:"category" example:"general"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
