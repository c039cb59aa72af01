package bookingRepo

import (
	"context"
	"errors"

	"shreeji/database"
	"shreeji/models"
	"shreeji/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a booking lookup by ID matches nothing.
var ErrNotFound = errors.New("booking not found")

// BookingRepository persists booking documents in the "bookings" collection.
type BookingRepository interface {
	// Create inserts a new booking document, assigning its ID and CreatedAt,
	// and returns the assigned ID.
	Create(ctx context.Context, doc models.BookingDocument) (string, error)
	// GetByID returns the booking with the given document ID, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.BookingDocument, error)
	// GetByOrderID returns the single booking whose orderId equals orderID
	// (exact, case-sensitive match), or (nil, nil) when none matches.
	GetByOrderID(ctx context.Context, orderID string) (*models.BookingDocument, error)
	// GetAll returns all bookings ordered by creation time, newest first.
	GetAll(ctx context.Context) ([]models.BookingDocument, error)
	// UpdateStatus sets only the status field of the booking with the given
	// document ID. Returns ErrNotFound when no document matches.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure booking indexes", zap.Error(err))
	}
	return repo
}
