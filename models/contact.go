package models

import "time"

// ContactInquiry is a message submitted through the contact form.
type ContactInquiry struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"` // Server-assigned
}
