package handlers

import (
	"errors"
	"net/http"

	"shreeji/services/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	Service contact.ContactService
	Logger  *zap.Logger
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(svc contact.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Service: svc, Logger: logger}
}

// SubmitContactHandler records a contact inquiry.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var input contact.InquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidForm})
		return
	}

	if err := h.Service.Submit(c.Request.Context(), input); err != nil {
		var validationErr *contact.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       msgInvalidForm,
				"fieldErrors": validationErr.Fields,
			})
			return
		}
		h.Logger.Error("contact submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
