package services

import (
	"github.com/memitrading/memi/internal/app/repositories"
	"github.com/memitrading/memi/internal/pkg/auth"
)

// Services holds every service instance used by the controllers
type Services struct {
	Auth        AuthService
	Service     ServiceService
	About       AboutService
	Stat        StatService
	AppFeature  AppFeatureService
	AppShowcase AppShowcaseService
	Course      CourseService
	News        NewsService
	Event       EventService
	Team        TeamService
	Faq         FaqService
	Testimonial TestimonialService
	Enrollment  EnrollmentService
	Dashboard   DashboardService
}

// NewServices wires the services on top of the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:        NewAuthService(repos.UserRepository, jwtService),
		Service:     NewServiceService(repos.ServiceRepository),
		About:       NewAboutService(repos.AboutRepository),
		Stat:        NewStatService(repos.StatRepository),
		AppFeature:  NewAppFeatureService(repos.AppFeatureRepository),
		AppShowcase: NewAppShowcaseService(repos.AppShowcaseRepository),
		Course:      NewCourseService(repos.CourseRepository),
		News:        NewNewsService(repos.NewsRepository),
		Event:       NewEventService(repos.EventRepository),
		Team:        NewTeamService(repos.TeamMemberRepository),
		Faq:         NewFaqService(repos.FaqRepository),
		Testimonial: NewTestimonialService(repos.TestimonialRepository),
		Enrollment:  NewEnrollmentService(repos.EnrollmentRepository, repos.CourseRepository),
		Dashboard: NewDashboardService(DashboardSources{
			Services:     repos.ServiceRepository,
			Courses:      repos.CourseRepository,
			News:         repos.NewsRepository,
			Events:       repos.EventRepository,
			Team:         repos.TeamMemberRepository,
			Testimonials: repos.TestimonialRepository,
			Enrollments:  repos.EnrollmentRepository,
		}),
	}
}
