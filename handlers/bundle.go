package handlers

import (
	"net/http"

	"shreeji/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	SubmitBookingHandler gin.HandlerFunc
	TrackOrderHandler    gin.HandlerFunc

	// Contact endpoints
	SubmitContactHandler gin.HandlerFunc

	// Visualization endpoint
	VisualizeInGalleryHandler gin.HandlerFunc

	// Admin endpoints
	ListBookingsHandler        gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	ListMessagesHandler        gin.HandlerFunc
}

// HealthHandler reports the latest health snapshot of external services.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"deps":   utils.GetHealthStatus(),
	})
}
