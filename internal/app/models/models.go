package models

// RoleAdmin is the default role assigned to users
const RoleAdmin = "admin"

// Enrollment statuses
const (
	EnrollmentStatusPending  = "pending"
	EnrollmentStatusApproved = "approved"
	EnrollmentStatusRejected = "rejected"
)

// Service statuses
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

// DashboardMetrics holds the counters shown on the admin dashboard
type DashboardMetrics struct {
	Services           int64 `json:"services" example:"6"`
	Courses            int64 `json:"courses" example:"4"`
	News               int64 `json:"news" example:"12"`
	Events             int64 `json:"events" example:"3"`
	TeamMembers        int64 `json:"teamMembers" example:"8"`
	Testimonials       int64 `json:"testimonials" example:"5"`
	Enrollments        int64 `json:"enrollments" example:"40"`
	PendingEnrollments int64 `json:"pendingEnrollments" example:"7"`
}
