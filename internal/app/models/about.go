package models

import "time"

// AboutContent is the single about-section row
type AboutContent struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title" example:"About MEMI Trading"`
	Heading   string    `json:"heading" db:"heading"`
	Content   string    `json:"content" db:"content"`
	Location  string    `json:"location" db:"location" example:"Istanbul"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
