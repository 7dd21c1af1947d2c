package dto

// EnrollmentRequest is the body of the public POST /api/enrollments.
// Any status sent by the client is ignored.
type EnrollmentRequest struct {
	CourseID   int64  `json:"courseId" binding:"required,gt=0" example:"1"`
	FullName   string `json:"fullName" binding:"required,max=255" example:"Jane Doe"`
	Email      string `json:"email" binding:"required,email,max=255" example:"jane@example.com"`
	Phone      string `json:"phone" binding:"required,max=50" example:"+90 555 000 00 00"`
	Education  string `json:"education" binding:"required"`
	Experience string `json:"experience" binding:"required"`
	Motivation string `json:"motivation" binding:"required"`
}

// EnrollmentStatusRequest is the body of PUT /api/admin/enrollments/:id/status
type EnrollmentStatusRequest struct {
	Status string `json:"status" binding:"required,enrollmentstatus" example:"approved"`
}
