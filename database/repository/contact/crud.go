package contactRepo

import (
	"context"
	"time"

	"shreeji/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new contact inquiry and returns its ID.
func (r *mongoContactRepo) Create(ctx context.Context, inquiry models.ContactInquiry) (string, error) {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	inquiry.CreatedAt = time.Now().UTC()

	_, err := r.coll.InsertOne(ctx, inquiry)
	if err != nil {
		return "", err
	}
	return inquiry.ID, nil
}

// GetAll returns all contact inquiries, newest first.
func (r *mongoContactRepo) GetAll(ctx context.Context) ([]models.ContactInquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []models.ContactInquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}
