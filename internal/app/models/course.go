package models

import "time"

// Course is a training course open for enrollment.
// Price and Rating are decimal strings, e.g. "499.00" and "4.80".
type Course struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	Title            string    `json:"title" db:"title" example:"Technical Analysis 101"`
	Description      string    `json:"description" db:"description"`
	Instructor       string    `json:"instructor" db:"instructor"`
	Duration         string    `json:"duration" db:"duration" example:"8 weeks"`
	Level            string    `json:"level" db:"level" example:"beginner"`
	Price            string    `json:"price" db:"price" example:"499.00"`
	Category         string    `json:"category" db:"category"`
	ImageURL         *string   `json:"imageUrl" db:"image_url"`
	EnrolledStudents int       `json:"enrolledStudents" db:"enrolled_students" example:"120"`
	Rating           string    `json:"rating" db:"rating" example:"4.80"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}
