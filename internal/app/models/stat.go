package models

import "time"

// Stat is a headline figure; the set is always replaced as a whole
type Stat struct {
	ID        int64     `json:"id" db:"id"`
	Icon      string    `json:"icon" db:"icon" example:"Users"`
	Value     string    `json:"value" db:"value" example:"5000+"`
	Label     string    `json:"label" db:"label" example:"Active traders"`
	Order     int       `json:"order" db:"sort_order" example:"1"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
