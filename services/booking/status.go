package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "shreeji/database/repository/booking"
	"shreeji/models"
	"shreeji/utils"

	"go.uber.org/zap"
)

// UpdateStatus sets only the status field of an existing booking. The status
// lifecycle is deliberately permissive: any of the four values may be set
// regardless of the current one, so the shop can correct mistakes freely.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	// Fetch first so the tracker cache entry for this order code can be
	// dropped after the write.
	doc, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}

	if err := s.Repo.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to update status of booking %s: %w", bookingID, err)
	}

	s.invalidateTrackCache(ctx, doc.OrderID)

	utils.GetLogger().Info("booking status updated",
		zap.String("bookingId", bookingID),
		zap.String("orderId", doc.OrderID),
		zap.String("status", string(status)))
	return nil
}

// ListBookings returns all bookings, newest first, for the admin dashboard.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.BookingDocument, error) {
	docs, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return docs, nil
}
