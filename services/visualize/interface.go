package visualize

import (
	"context"
	"errors"

	"shreeji/models"
)

// ErrModelBusy is returned when the image model rejects the request due to
// rate limiting or quota exhaustion. Callers surface it with a friendlier
// "busy, try again" message than other failures.
var ErrModelBusy = errors.New("the AI is currently busy due to high demand")

// ErrNoImage is returned when the model call succeeds but yields no image.
var ErrNoImage = errors.New("the AI failed to generate an image")

// VisualizeService renders an uploaded photo as a realistic product preview
// (album page, acrylic print or wall frame).
type VisualizeService interface {
	Visualize(ctx context.Context, req models.VisualizeRequest) (*models.VisualizeResult, error)
}
