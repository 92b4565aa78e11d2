package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Health check endpoint (no auth required)
	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api")
	{
		// Public routes (no authentication required)
		auth := api.Group("/auth")
		{
			auth.POST("/login", s.handleLogin)
			auth.POST("/register", s.handleRegister)
			auth.POST("/forgetpassword", s.handleForgetPassword)
			auth.POST("/resetpassword", s.handleResetPassword)
		}

		// Destination browsing is public; mutations are admin-only
		destination := api.Group("/destination")
		{
			destination.GET("", s.getDestinations)
			destination.GET("/:id", s.getDestination)
			destination.GET("/section/:name", s.getDestinationsBySection)
			destination.GET("/category/:name", s.getDestinationsByCategory)
			destination.POST("", s.authMiddleware(), s.adminMiddleware(), s.createDestination)
			destination.PUT("/:id", s.authMiddleware(), s.adminMiddleware(), s.updateDestination)
			destination.DELETE("/:id", s.authMiddleware(), s.adminMiddleware(), s.deleteDestination)
		}

		packages := api.Group("/packages")
		{
			packages.GET("/find", s.getTourPackages)
			packages.GET("/:id", s.getTourPackage)
			packages.POST("/create", s.authMiddleware(), s.adminMiddleware(), s.createTourPackage)
			packages.PUT("/:id", s.authMiddleware(), s.adminMiddleware(), s.updateTourPackage)
			packages.DELETE("/:id", s.authMiddleware(), s.adminMiddleware(), s.deleteTourPackage)
		}

		accommodation := api.Group("/accommodation")
		{
			accommodation.GET("/destination/:id", s.getAccommodationsByDestination)
			accommodation.GET("/select/:id", s.getAccommodation)
			accommodation.POST("", s.authMiddleware(), s.adminMiddleware(), s.createAccommodation)
		}

		guides := api.Group("/guides")
		{
			guides.GET("", s.getGuides)
			guides.POST("", s.authMiddleware(), s.adminMiddleware(), s.createGuide)
			guides.PUT("/:id", s.authMiddleware(), s.adminMiddleware(), s.updateGuide)
		}

		// Protected routes (JWT authentication required)
		user := api.Group("/user")
		user.Use(s.authMiddleware())
		{
			user.GET("/me", s.getCurrentUserProfile)
			user.GET("", s.adminMiddleware(), s.getUsers)
			user.DELETE("/:id", s.adminMiddleware(), s.deleteUser)
		}

		booking := api.Group("/booking")
		booking.Use(s.authMiddleware())
		{
			booking.GET("", s.adminMiddleware(), s.getBookings)
			booking.GET("/user/:id", s.getBookingsByUser)
			booking.POST("/create", s.createBooking)
			booking.DELETE("/:id", s.deleteBooking)
		}

		bucketList := api.Group("/bucket-list")
		bucketList.Use(s.authMiddleware())
		{
			bucketList.GET("", s.getBucketList)
			bucketList.POST("", s.addBucketListItem)
			bucketList.DELETE("/:destinationId", s.removeBucketListItem)
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(s.authMiddleware(), s.adminMiddleware())
		{
			dashboard.GET("/stats", s.getDashboardStats)
			dashboard.GET("/bookings-over-time", s.getBookingsOverTime)
			dashboard.GET("/category-usage", s.getCategoryUsage)
		}
	}

	// Uploaded images
	s.router.Static("/destinations_image", s.config.Uploads.DestinationImageDir)
	s.router.Static("/uploads", s.config.Uploads.AccommodationDir)

	// Catch-all route
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
