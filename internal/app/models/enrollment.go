package models

import "time"

// Enrollment is a public course application
type Enrollment struct {
	ID             int64     `json:"id" db:"id"`
	CourseID       int64     `json:"courseId" db:"course_id" example:"1"`
	CourseTitle    string    `json:"courseTitle" db:"course_title"`
	FullName       string    `json:"fullName" db:"full_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Education      string    `json:"education" db:"education"`
	Experience     string    `json:"experience" db:"experience"`
	Motivation     string    `json:"motivation" db:"motivation"`
	Status         string    `json:"status" db:"status" example:"pending"`
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
