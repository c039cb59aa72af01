package booking

import (
	"context"
	"fmt"

	"shreeji/models"
	"shreeji/utils"

	"go.uber.org/zap"
)

// Submit runs the booking pipeline: validate, generate the order code, upload
// photos, persist the document with status Pending.
//
// Photos are uploaded one at a time in their submitted order, so photoURLs
// keeps the customer's selection order. Zero-size files are skipped silently.
// If upload or persistence fails after validation passed, already-uploaded
// photos are left in the bucket; orphaned files are an accepted cost for this
// domain and no compensating delete is attempted.
func (s *DefaultBookingService) Submit(ctx context.Context, input BookingInput) (*SubmitResult, error) {
	logger := utils.GetLogger()

	validated, fieldErrs := DecodeBookingInput(input)
	if validated == nil {
		logger.Debug("booking submission failed validation", zap.Int("fields", len(fieldErrs)))
		return nil, NewValidationError(fieldErrs)
	}

	orderID := GenerateOrderID()

	photoURLs := []string{}
	for _, photo := range input.Photos {
		if photo.Size() == 0 {
			continue
		}
		url, err := s.Storage.UploadPhoto(ctx, orderID, photo.Filename, photo.Content)
		if err != nil {
			logger.Error("booking photo upload failed",
				zap.String("orderId", orderID),
				zap.String("filename", photo.Filename),
				zap.Error(err))
			return nil, fmt.Errorf("failed to upload photo %q: %w", photo.Filename, err)
		}
		photoURLs = append(photoURLs, url)
	}

	doc := models.NewBookingDocument(*validated, orderID, photoURLs)
	if _, err := s.Repo.Create(ctx, doc); err != nil {
		logger.Error("booking persistence failed", zap.String("orderId", orderID), zap.Error(err))
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking submitted",
		zap.String("orderId", orderID),
		zap.Int("items", len(validated.OrderItems)),
		zap.Int("photos", len(photoURLs)))

	return &SubmitResult{OrderID: orderID}, nil
}
