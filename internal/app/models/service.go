package models

import "time"

// Service is an offering listed on the services page
type Service struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Title       string    `json:"title" db:"title" example:"Forex Signals"`
	Description string    `json:"description" db:"description"`
	Features    []string  `json:"features" db:"features"`
	Icon        string    `json:"icon" db:"icon" example:"TrendingUp"`
	Category    string    `json:"category" db:"category" example:"trading"`
	ImageURL    *string   `json:"imageUrl" db:"image_url" example:"/uploads/image-1700000000000-1a2b3c4d.png"`
	Status      string    `json:"status" db:"status" example:"active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
