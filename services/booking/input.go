package booking

import (
	"encoding/json"

	"shreeji/models"
)

// OrderItemInput is one raw order line as submitted by the booking form.
// Quantity is a json.Number so both numeric strings and numbers decode.
type OrderItemInput struct {
	Service    string      `json:"service"`
	Size       string      `json:"size"`
	Variant    string      `json:"variant"`
	FrameColor string      `json:"frameColor"`
	Quantity   json.Number `json:"quantity"`
	ItemNotes  string      `json:"itemNotes"`
}

// BookingInput is the raw, untrusted booking submission. String fields arrive
// as-is from the form; PreferredDate is the raw date string; Photos carries
// the uploaded files in selection order.
type BookingInput struct {
	Name           string
	Phone          string
	Email          string
	OrderItems     []OrderItemInput
	DeliveryOption string
	Address        string
	PreferredDate  string
	GeneralNotes   string
	Photos         []models.PhotoFile
}
