package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"shreeji/models"
	"shreeji/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInvalidForm     = "Invalid form data. Please check your entries."
	msgUnexpectedError = "An unexpected error occurred. Please try again."
)

// BookingHandler exposes the booking submission and tracking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// SubmitBookingHandler accepts the multipart booking form: plain fields, an
// orderItems JSON array and zero or more photo attachments.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidForm})
		return
	}

	input := booking.BookingInput{
		Name:           c.PostForm("name"),
		Phone:          c.PostForm("phone"),
		Email:          c.PostForm("email"),
		DeliveryOption: c.PostForm("deliveryOption"),
		Address:        c.PostForm("address"),
		PreferredDate:  c.PostForm("preferredDate"),
		GeneralNotes:   c.PostForm("generalNotes"),
	}

	if raw := c.PostForm("orderItems"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.OrderItems); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       msgInvalidForm,
				"fieldErrors": gin.H{"orderItems": []string{"Order items could not be read."}},
			})
			return
		}
	}

	for _, fh := range form.File["photos"] {
		file, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidForm})
			return
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidForm})
			return
		}
		input.Photos = append(input.Photos, models.PhotoFile{
			Filename: fh.Filename,
			Content:  content,
		})
	}

	result, err := h.Service.Submit(c.Request.Context(), input)
	if err != nil {
		var validationErr *booking.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       msgInvalidForm,
				"fieldErrors": validationErr.Fields,
			})
			return
		}
		h.Logger.Error("booking submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   msgUnexpectedError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orderId": result.OrderID,
	})
}

// TrackOrderHandler returns the booking for a customer-entered order code.
func (h *BookingHandler) TrackOrderHandler(c *gin.Context) {
	doc, err := h.Service.TrackOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrEmptyOrderID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid Order ID."})
		case errors.Is(err, booking.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No order found with that ID."})
		default:
			h.Logger.Error("order tracking failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching your order."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": doc})
}
