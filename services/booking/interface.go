package booking

import (
	"context"

	bookingRepo "shreeji/database/repository/booking"
	"shreeji/models"
	"shreeji/services/storage"

	"github.com/go-redis/redis/v8"
)

// BookingService covers the order lifecycle: submission, status updates and
// customer-facing tracking.
type BookingService interface {
	// Submit validates the raw input, uploads its photos and persists a new
	// booking document with status Pending. On validation failure the
	// returned error is a *ValidationError carrying field-level messages.
	Submit(ctx context.Context, input BookingInput) (*SubmitResult, error)
	// UpdateStatus sets only the status of an existing booking. Any of the
	// four statuses may be set regardless of the current one.
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
	// TrackOrder returns the booking for a customer-entered order code.
	TrackOrder(ctx context.Context, orderID string) (*models.BookingDocument, error)
	// ListBookings returns all bookings, newest first (admin dashboard).
	ListBookings(ctx context.Context) ([]models.BookingDocument, error)
}

// SubmitResult is returned on successful booking submission.
type SubmitResult struct {
	OrderID string `json:"orderId"`
}

// DefaultBookingService is the default implementation.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Storage storage.StorageService
	// Cache is optional; when set, tracker lookups are cached per order code.
	Cache *redis.Client
}
