package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"shreeji/models"
	"shreeji/services/visualize"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VisualizeHandler exposes the "visualize in gallery" preview endpoint.
type VisualizeHandler struct {
	Service visualize.VisualizeService
	Logger  *zap.Logger
}

// NewVisualizeHandler creates a new VisualizeHandler instance.
func NewVisualizeHandler(svc visualize.VisualizeService, logger *zap.Logger) *VisualizeHandler {
	return &VisualizeHandler{Service: svc, Logger: logger}
}

// VisualizeInGalleryHandler renders the uploaded photo in the requested
// gallery style and returns the generated image as a data URI.
func (h *VisualizeHandler) VisualizeInGalleryHandler(c *gin.Context) {
	style := models.GalleryStyle(c.PostForm("style"))
	if !models.ValidGalleryStyle(style) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Style must be one of album, acrylic or wallframe."})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo not provided."})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo could not be read."})
		return
	}
	defer file.Close()
	photo, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo could not be read."})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	result, err := h.Service.Visualize(c.Request.Context(), models.VisualizeRequest{
		Photo:    photo,
		MIMEType: mimeType,
		Style:    style,
		Size:     c.PostForm("size"),
	})
	if err != nil {
		switch {
		case errors.Is(err, visualize.ErrModelBusy):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "The AI is currently busy due to high demand. Please wait a moment and try again."})
		case errors.Is(err, visualize.ErrNoImage):
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI failed to generate an image. Please try again."})
		default:
			h.Logger.Error("visualization failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred during visualization."})
		}
		return
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", result.MIMEType, base64.StdEncoding.EncodeToString(result.Image))
	c.JSON(http.StatusOK, gin.H{"visualizedImage": dataURI})
}
