package models

import "time"

// Event is a seminar or webinar listed on the events page
type Event struct {
	ID                  int64     `json:"id" db:"id"`
	Title               string    `json:"title" db:"title"`
	Description         string    `json:"description" db:"description"`
	Location            string    `json:"location" db:"location"`
	EventDate           time.Time `json:"eventDate" db:"event_date"`
	Organizer           string    `json:"organizer" db:"organizer"`
	Capacity            int       `json:"capacity" db:"capacity"`
	RegisteredAttendees int       `json:"registeredAttendees" db:"registered_attendees"`
	RegistrationFee     string    `json:"registrationFee" db:"registration_fee" example:"0.00"`
	ImageURL            *string   `json:"imageUrl" db:"image_url"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}
