package routes

import (
	"time"

	"flowerdecor/handlers"
	"flowerdecor/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers public intake and admin booking views.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware(hb.AdminService))
		protected.GET("", hb.Booking.ListBookingsHandler)
		protected.GET("/:bookingId", hb.Booking.GetBookingHandler)
	}
}

// RegisterContactRoutes registers the contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.Contact.SendContactHandler)
}

// RegisterContentRoutes registers the public content lists and their admin writes.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminOnly := middleware.JWTAuthAdminMiddleware(hb.AdminService)

	r.GET("/api/services", hb.Content.ListServicesHandler)

	events := r.Group("/api/events")
	{
		events.GET("", hb.Content.ListEventsHandler)
		events.POST("", adminOnly, hb.Content.CreateEventHandler)
		events.PUT("/:id", adminOnly, hb.Content.UpdateEventHandler)
	}
	r.DELETE("/api/delete/events/:id", adminOnly, hb.Content.DeleteEventHandler)

	testimonials := r.Group("/api/testimonials")
	{
		testimonials.GET("", hb.Content.ListTestimonialsHandler)
		testimonials.POST("", hb.Content.CreateTestimonialHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.LoginHandler)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware(hb.AdminService))
		protected.GET("/stats", hb.Content.StatsHandler)
		protected.GET("/services", hb.Content.ListServicesHandler)
		protected.POST("/services", hb.Content.CreateServiceHandler)
		protected.PUT("/services/:id", hb.Content.UpdateServiceHandler)
		protected.DELETE("/services/:id", hb.Content.DeleteServiceHandler)
	}
}

// RegisterStorageRoutes registers image uploads.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/upload", middleware.JWTAuthAdminMiddleware(hb.AdminService), hb.Storage.UploadImageHandler)
}

// RegisterHealthRoute registers the liveness endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", handlers.RootHandler)
	r.GET("/health", hb.Health.HealthCheckHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
