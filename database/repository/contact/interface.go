package contactRepo

import (
	"context"

	"shreeji/database"
	"shreeji/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository persists contact inquiries in the "messages" collection.
type ContactRepository interface {
	// Create inserts a new inquiry, assigning its ID and CreatedAt, and
	// returns the assigned ID.
	Create(ctx context.Context, inquiry models.ContactInquiry) (string, error)
	// GetAll returns all inquiries ordered by creation time, newest first.
	GetAll(ctx context.Context) ([]models.ContactInquiry, error)
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a ContactRepository backed by MongoDB.
func NewMongoContactRepo() ContactRepository {
	return &mongoContactRepo{
		coll: database.DB().Collection("messages"),
	}
}
