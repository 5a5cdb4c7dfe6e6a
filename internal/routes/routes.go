package routes

import (
	"detailing-app-server/internal/config"
	"detailing-app-server/internal/handlers"
	"detailing-app-server/internal/middleware"
	"detailing-app-server/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	sessions := session.NewGormStore(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)
	userHandler := handlers.NewUserHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	bookingHandler := handlers.NewBookingHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	postHandler := handlers.NewPostHandler(db)
	settingHandler := handlers.NewSettingHandler(db)
	insightsHandler := handlers.NewInsightsHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/bookings", bookingHandler.CreateBooking)
		public.POST("/contact", contactHandler.CreateInquiry)

		// The home page reads the hero description without a session
		public.GET("/settings/hero", settingHandler.GetHero)
	}

	// Authenticated admin routes
	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(sessions)) // Apply session authentication middleware
	{
		private.GET("/me", authHandler.Me)
		private.POST("/logout", authHandler.Logout)
		private.PUT("/me/password", authHandler.ChangePassword)

		// Admin account management
		private.POST("/users", userHandler.CreateUser)

		// Customer CRUD
		customerRoutes := private.Group("/customers")
		{
			customerRoutes.GET("", customerHandler.GetCustomers)
			customerRoutes.POST("", customerHandler.CreateCustomer)
			customerRoutes.GET("/:id", customerHandler.GetCustomerByID)
			customerRoutes.PUT("/:id", customerHandler.UpdateCustomer)
			customerRoutes.DELETE("/:id", customerHandler.DeleteCustomer)
			customerRoutes.GET("/:id/appointments", customerHandler.GetCustomerAppointments)
		}

		// Appointment CRUD
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
			appointmentRoutes.PATCH("/:id/complete", appointmentHandler.CompleteAppointment)
		}

		// Content posts
		postRoutes := private.Group("/posts")
		{
			postRoutes.GET("", postHandler.GetPosts)
			postRoutes.POST("", postHandler.CreatePost)
			postRoutes.PUT("/:id", postHandler.UpdatePost)
			postRoutes.DELETE("/:id", postHandler.DeletePost)
		}

		// Site settings
		private.PUT("/settings/hero", settingHandler.UpdateHero)

		// Dashboard analytics
		private.GET("/insights", insightsHandler.GetInsights)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
