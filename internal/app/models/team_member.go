package models

import "time"

// TeamMember is a person on the team page
type TeamMember struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Position     string    `json:"position" db:"position"`
	Bio          string    `json:"bio" db:"bio"`
	Email        *string   `json:"email" db:"email"`
	Linkedin     *string   `json:"linkedin" db:"linkedin"`
	Twitter      *string   `json:"twitter" db:"twitter"`
	Department   string    `json:"department" db:"department"`
	ImageURL     *string   `json:"imageUrl" db:"image_url"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
