package dto

// CreateEventRequest is the body of POST /api/admin/events (JSON or multipart).
// EventDate accepts RFC 3339, "2006-01-02T15:04" or "2006-01-02".
type CreateEventRequest struct {
	Title               string  `json:"title" form:"title" binding:"required,max=255"`
	Description         string  `json:"description" form:"description" binding:"required"`
	Location            string  `json:"location" form:"location" binding:"required"`
	EventDate           string  `json:"eventDate" form:"eventDate" binding:"required"`
	Organizer           string  `json:"organizer" form:"organizer"`
	Capacity            int     `json:"capacity" form:"capacity" binding:"gte=0"`
	RegisteredAttendees int     `json:"registeredAttendees" form:"registeredAttendees" binding:"gte=0"`
	RegistrationFee     string  `json:"registrationFee" form:"registrationFee" binding:"omitempty,decimal"`
	ImageURL            *string `json:"imageUrl" form:"imageUrl"`
}

// UpdateEventRequest is the body of PUT /api/admin/events/:id
type UpdateEventRequest struct {
	Title               *string `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Description         *string `json:"description" form:"description" binding:"omitempty,min=1"`
	Location            *string `json:"location" form:"location" binding:"omitempty,min=1"`
	EventDate           *string `json:"eventDate" form:"eventDate" binding:"omitempty,min=1"`
	Organizer           *string `json:"organizer" form:"organizer"`
	Capacity            *int    `json:"capacity" form:"capacity" binding:"omitempty,gte=0"`
	RegisteredAttendees *int    `json:"registeredAttendees" form:"registeredAttendees" binding:"omitempty,gte=0"`
	RegistrationFee     *string `json:"registrationFee" form:"registrationFee" binding:"omitempty,decimal"`
	ImageURL            *string `json:"imageUrl" form:"imageUrl"`
}

// Fields returns the columns present in the request, except event_date which
// needs parsing
func (r *UpdateEventRequest) Fields() map[string]interface{} {
	f := fields{}
	f.str("title", r.Title)
	f.str("description", r.Description)
	f.str("location", r.Location)
	f.str("organizer", r.Organizer)
	f.num("capacity", r.Capacity)
	f.num("registered_attendees", r.RegisteredAttendees)
	f.str("registration_fee", r.RegistrationFee)
	f.str("image_url", r.ImageURL)
	return f
}
