package dto

// CreateCourseRequest is the body of POST /api/admin/courses (JSON or multipart)
type CreateCourseRequest struct {
	Title            string  `json:"title" form:"title" binding:"required,max=255"`
	Description      string  `json:"description" form:"description" binding:"required"`
	Instructor       string  `json:"instructor" form:"instructor" binding:"required"`
	Duration         string  `json:"duration" form:"duration" binding:"required"`
	Level            string  `json:"level" form:"level" binding:"required"`
	Price            string  `json:"price" form:"price" binding:"required,decimal"`
	Category         string  `json:"category" form:"category" binding:"required"`
	ImageURL         *string `json:"imageUrl" form:"imageUrl"`
	EnrolledStudents int     `json:"enrolledStudents" form:"enrolledStudents" binding:"gte=0"`
	Rating           string  `json:"rating" form:"rating" binding:"omitempty,decimal"`
}

// UpdateCourseRequest is the body of PUT /api/admin/courses/:id
type UpdateCourseRequest struct {
	Title            *string `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Description      *string `json:"description" form:"description" binding:"omitempty,min=1"`
	Instructor       *string `json:"instructor" form:"instructor" binding:"omitempty,min=1"`
	Duration         *string `json:"duration" form:"duration" binding:"omitempty,min=1"`
	Level            *string `json:"level" form:"level" binding:"omitempty,min=1"`
	Price            *string `json:"price" form:"price" binding:"omitempty,decimal"`
	Category         *string `json:"category" form:"category" binding:"omitempty,min=1"`
	ImageURL         *string `json:"imageUrl" form:"imageUrl"`
	EnrolledStudents *int    `json:"enrolledStudents" form:"enrolledStudents" binding:"omitempty,gte=0"`
	Rating           *string `json:"rating" form:"rating" binding:"omitempty,decimal"`
}

// Fields returns the columns present in the request
func (r *UpdateCourseRequest) Fields() map[string]interface{} {
	f := fields{}
	f.str("title", r.Title)
	f.str("description", r.Description)
	f.str("instructor", r.Instructor)
	f.str("duration", r.Duration)
	f.str("level", r.Level)
	f.str("price", r.Price)
	f.str("category", r.Category)
	f.str("image_url", r.ImageURL)
	f.num("enrolled_students", r.EnrolledStudents)
	f.str("rating", r.Rating)
	return f
}
