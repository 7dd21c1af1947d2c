package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"admin"`
	Email     string    `json:"email" db:"email" example:"admin@example.com"`
	Password  string    `json:"-" db:"password"` // bcrypt hash
	Role      string    `json:"role" db:"role" example:"admin"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
