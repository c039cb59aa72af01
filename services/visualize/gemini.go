package visualize

import (
	"context"
	"fmt"
	"strings"

	"shreeji/models"
	"shreeji/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const visualizeModel = "models/gemini-2.5-flash-image-preview"

// GeminiVisualizeService implements VisualizeService against the Gemini
// image-preview model.
type GeminiVisualizeService struct {
	model *genai.GenerativeModel
}

// NewGeminiVisualizeService creates a Gemini-backed preview service.
func NewGeminiVisualizeService(ctx context.Context, apiKey string) (*GeminiVisualizeService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiVisualizeService{model: client.GenerativeModel(visualizeModel)}, nil
}

// Visualize sends the photo and prompt to the model and returns the generated
// preview image.
func (s *GeminiVisualizeService) Visualize(ctx context.Context, req models.VisualizeRequest) (*models.VisualizeResult, error) {
	if !models.ValidGalleryStyle(req.Style) {
		return nil, fmt.Errorf("unsupported gallery style %q", req.Style)
	}

	prompt := buildPrompt(req.Style, req.Size)
	resp, err := s.model.GenerateContent(ctx,
		genai.ImageData(imageFormat(req.MIMEType), req.Photo),
		genai.Text(prompt),
	)
	if err != nil {
		if isRateLimited(err) {
			utils.GetLogger().Warn("visualization rate limited", zap.Error(err))
			return nil, ErrModelBusy
		}
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	result := extractImage(resp)
	if result == nil {
		utils.GetLogger().Error("visualization returned no image", zap.String("style", string(req.Style)))
		return nil, ErrNoImage
	}
	return result, nil
}

// extractImage returns the first image part of the response, if any.
func extractImage(resp *genai.GenerateContentResponse) *models.VisualizeResult {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			return &models.VisualizeResult{
				Image:    blob.Data,
				MIMEType: blob.MIMEType,
			}
		}
	}
	return nil
}

// isRateLimited classifies quota and rate-limit rejections by their known
// message markers, so they can be surfaced with a distinct user message.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "too many requests") ||
		strings.Contains(msg, "resource has been exhausted") ||
		strings.Contains(msg, "resource exhausted")
}

// imageFormat converts a MIME type like "image/jpeg" to the bare format
// string the genai SDK expects.
func imageFormat(mimeType string) string {
	if format, ok := strings.CutPrefix(mimeType, "image/"); ok {
		return format
	}
	return "jpeg"
}
