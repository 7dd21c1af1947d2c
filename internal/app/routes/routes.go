package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/controllers"
	"github.com/memitrading/memi/internal/middleware"
)

// Controllers groups every controller mounted by SetupRouter
type Controllers struct {
	Auth        *controllers.AuthController
	Health      *controllers.HealthController
	Service     *controllers.ServiceController
	Site        *controllers.SiteController
	Course      *controllers.CourseController
	News        *controllers.NewsController
	Event       *controllers.EventController
	Team        *controllers.TeamController
	Faq         *controllers.FaqController
	Testimonial *controllers.TestimonialController
	Enrollment  *controllers.EnrollmentController
	Dashboard   *controllers.DashboardController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctl *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", ctl.Health.Health)

	api := router.Group("/api")

	// --- Auth ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctl.Auth.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), ctl.Auth.Me)
	}

	// --- Public content ---
	api.GET("/services", ctl.Service.List)
	api.GET("/services/:id", ctl.Service.Get)
	api.GET("/about", ctl.Site.GetAbout)
	api.GET("/stats", ctl.Site.ListStats)
	api.GET("/app-features", ctl.Site.ListAppFeatures)
	api.GET("/app-showcase", ctl.Site.GetAppShowcase)
	api.GET("/courses", ctl.Course.List)
	api.GET("/courses/:id", ctl.Course.Get)
	api.GET("/news", ctl.News.List)
	api.GET("/news/:id", ctl.News.Get)
	api.GET("/events", ctl.Event.List)
	api.GET("/events/:id", ctl.Event.Get)
	api.GET("/team", ctl.Team.List)
	api.GET("/team/:id", ctl.Team.Get)
	api.GET("/faqs", ctl.Faq.ListActive)
	api.GET("/testimonials", ctl.Testimonial.ListActive)

	api.POST("/enrollments", ctl.Enrollment.Submit)

	// --- Admin ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	{
		admin.GET("/metrics", ctl.Dashboard.Metrics)

		admin.POST("/services", ctl.Service.Create)
		admin.PUT("/services/:id", ctl.Service.Update)
		admin.DELETE("/services/:id", ctl.Service.Delete)

		admin.PUT("/about", ctl.Site.UpdateAbout)
		admin.PUT("/stats", ctl.Site.ReplaceStats)
		admin.PUT("/app-showcase", ctl.Site.UpdateAppShowcase)

		features := admin.Group("/app-features")
		{
			features.GET("", ctl.Site.ListAppFeatures)
			features.GET("/:id", ctl.Site.GetAppFeature)
			features.POST("", ctl.Site.CreateAppFeature)
			features.PUT("/:id", ctl.Site.UpdateAppFeature)
			features.DELETE("/:id", ctl.Site.DeleteAppFeature)
		}

		admin.POST("/courses", ctl.Course.Create)
		admin.PUT("/courses/:id", ctl.Course.Update)
		admin.DELETE("/courses/:id", ctl.Course.Delete)

		admin.POST("/news", ctl.News.Create)
		admin.PUT("/news/:id", ctl.News.Update)
		admin.DELETE("/news/:id", ctl.News.Delete)

		admin.POST("/events", ctl.Event.Create)
		admin.PUT("/events/:id", ctl.Event.Update)
		admin.DELETE("/events/:id", ctl.Event.Delete)

		admin.POST("/team", ctl.Team.Create)
		admin.PUT("/team/:id", ctl.Team.Update)
		admin.DELETE("/team/:id", ctl.Team.Delete)

		faqs := admin.Group("/faqs")
		{
			faqs.GET("", ctl.Faq.ListAll)
			faqs.GET("/:id", ctl.Faq.Get)
			faqs.POST("", ctl.Faq.Create)
			faqs.PUT("/:id", ctl.Faq.Update)
			faqs.DELETE("/:id", ctl.Faq.Delete)
		}

		testimonials := admin.Group("/testimonials")
		{
			testimonials.GET("", ctl.Testimonial.ListAll)
			testimonials.GET("/:id", ctl.Testimonial.Get)
			testimonials.POST("", ctl.Testimonial.Create)
			testimonials.PUT("/:id", ctl.Testimonial.Update)
			testimonials.DELETE("/:id", ctl.Testimonial.Delete)
		}

		enrollments := admin.Group("/enrollments")
		{
			enrollments.GET("", ctl.Enrollment.List)
			enrollments.PUT("/:id/status", ctl.Enrollment.UpdateStatus)
			enrollments.DELETE("/:id", ctl.Enrollment.Delete)
		}
	}
}
