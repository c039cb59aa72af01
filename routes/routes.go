package routes

import (
	"time"

	"shreeji/config"
	"shreeji/handlers"
	"shreeji/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Every visualize request costs a model call, so it gets its own budget.
const visualizePerMinute = 5

// RegisterBookingRoutes registers the customer-facing booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.SubmitBookingHandler)
		api.GET("/track/:orderId", hb.TrackOrderHandler)
	}
}

// RegisterContactRoutes registers the contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.SubmitContactHandler)
}

// RegisterVisualizeRoutes registers the gallery preview endpoint.
func RegisterVisualizeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/visualize", middleware.RateLimitMiddleware(visualizePerMinute), hb.VisualizeInGalleryHandler)
}

// RegisterAdminRoutes registers the dashboard endpoints behind admin auth.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/bookings", hb.ListBookingsHandler)
		api.PATCH("/bookings/:id/status", hb.UpdateBookingStatusHandler)
		api.GET("/messages", hb.ListMessagesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterBookingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterVisualizeRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
