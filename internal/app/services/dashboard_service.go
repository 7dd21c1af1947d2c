package services

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
)

// counter is any repository that can count its rows
type counter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardService computes the admin dashboard counters
type DashboardService interface {
	Metrics(ctx context.Context) (*models.DashboardMetrics, error)
}

type dashboardServiceImpl struct {
	services     counter
	courses      counter
	news         counter
	events       counter
	team         counter
	testimonials counter
	enrollments  EnrollmentRepository
}

// DashboardSources groups the repositories counted by the dashboard
type DashboardSources struct {
	Services     ServiceRepository
	Courses      CourseRepository
	News         NewsRepository
	Events       EventRepository
	Team         TeamMemberRepository
	Testimonials TestimonialRepository
	Enrollments  EnrollmentRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(src DashboardSources) DashboardService {
	return &dashboardServiceImpl{
		services:     src.Services,
		courses:      src.Courses,
		news:         src.News,
		events:       src.Events,
		team:         src.Team,
		testimonials: src.Testimonials,
		enrollments:  src.Enrollments,
	}
}

func (s *dashboardServiceImpl) Metrics(ctx context.Context) (*models.DashboardMetrics, error) {
	m := &models.DashboardMetrics{}

	counts := []struct {
		src counter
		dst *int64
	}{
		{s.services, &m.Services},
		{s.courses, &m.Courses},
		{s.news, &m.News},
		{s.events, &m.Events},
		{s.team, &m.TeamMembers},
		{s.testimonials, &m.Testimonials},
		{s.enrollments, &m.Enrollments},
	}
	for _, c := range counts {
		n, err := c.src.Count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	pending, err := s.enrollments.CountByStatus(ctx, models.EnrollmentStatusPending)
	if err != nil {
		return nil, err
	}
	m.PendingEnrollments = pending

	return m, nil
}
