package bookingRepo

import (
	"context"
	"errors"
	"time"

	"shreeji/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, doc models.BookingDocument) (string, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.CreatedAt = time.Now().UTC()

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return doc.ID, nil
}

// GetByID returns a booking document by its repository-assigned ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingDocument, error) {
	var doc models.BookingDocument
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByOrderID returns the single booking matching the given order code.
func (r *mongoBookingRepo) GetByOrderID(ctx context.Context, orderID string) (*models.BookingDocument, error) {
	var doc models.BookingDocument
	err := r.coll.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetAll returns all bookings, newest first. Used by the admin dashboard.
func (r *mongoBookingRepo) GetAll(ctx context.Context) ([]models.BookingDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.BookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UpdateStatus performs a partial update of the status field only.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
