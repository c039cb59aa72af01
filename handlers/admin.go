package handlers

import (
	"errors"
	"net/http"

	"shreeji/models"
	"shreeji/services/booking"
	"shreeji/services/contact"
	"shreeji/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the shop dashboard: booking list, status updates and
// contact messages.
type AdminHandler struct {
	Bookings booking.BookingService
	Contacts contact.ContactService
	Logger   *zap.Logger
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(bookings booking.BookingService, contacts contact.ContactService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Contacts: contacts, Logger: logger}
}

// ListBookingsHandler returns all bookings, newest first, together with the
// selectable status values for the dashboard's dropdown.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	docs, err := h.Bookings.ListBookings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":     docs,
		"statuses": models.AllStatuses,
	})
}

type updateStatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateBookingStatusHandler sets the status of one booking. The enum is
// re-validated here even though the dashboard only offers the four values.
func (h *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body."})
		return
	}

	err := h.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status value."})
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found."})
		default:
			h.Logger.Error("failed to update booking status", zap.String("bookingId", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update status."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListMessagesHandler returns all contact inquiries, newest first.
func (h *AdminHandler) ListMessagesHandler(c *gin.Context) {
	inquiries, err := h.Contacts.ListMessages(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load messages.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inquiries})
}
