package models

import "time"

// ServiceType identifies one of the print services offered by the shop.
type ServiceType string

const (
	ServicePhotoPrinting   ServiceType = "Photo Printing"
	ServiceAlbumPrinting   ServiceType = "Album Printing"
	ServiceAcrylicPrinting ServiceType = "Acrylic Printing"
)

// ValidService reports whether s is one of the offered print services.
func ValidService(s ServiceType) bool {
	switch s {
	case ServicePhotoPrinting, ServiceAlbumPrinting, ServiceAcrylicPrinting:
		return true
	}
	return false
}

// BookingStatus labels the fulfillment progress of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusPrinting  BookingStatus = "Printing"
	StatusReady     BookingStatus = "Ready"
	StatusDelivered BookingStatus = "Delivered"
)

// AllStatuses lists the selectable statuses in dashboard order.
var AllStatuses = []BookingStatus{StatusPending, StatusPrinting, StatusReady, StatusDelivered}

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusPrinting, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// DeliveryOption is how the customer receives the finished prints.
type DeliveryOption string

const (
	DeliveryPickup   DeliveryOption = "Pickup"
	DeliveryDelivery DeliveryOption = "Delivery"
)

// OrderItem is one service line within a booking.
type OrderItem struct {
	Service    ServiceType `bson:"service" json:"service"`                           // One of the three print services
	Size       string      `bson:"size" json:"size"`                                 // e.g. "12x9", "4R"
	Variant    string      `bson:"variant" json:"variant"`                           // e.g. thickness, finish, album style
	FrameColor string      `bson:"frameColor,omitempty" json:"frameColor,omitempty"` // Required for Acrylic Printing only
	Quantity   int         `bson:"quantity" json:"quantity"`                         // Always >= 1
	ItemNotes  string      `bson:"itemNotes,omitempty" json:"itemNotes,omitempty"`   // e.g. "Use photos img_001 to img_050"
}

// Booking is a validated order request, prior to persistence.
type Booking struct {
	Name           string         `bson:"name" json:"name"`
	Phone          string         `bson:"phone" json:"phone"`
	Email          string         `bson:"email,omitempty" json:"email,omitempty"`
	OrderItems     []OrderItem    `bson:"orderItems" json:"orderItems"`
	DeliveryOption DeliveryOption `bson:"deliveryOption" json:"deliveryOption"`
	Address        string         `bson:"address,omitempty" json:"address,omitempty"`
	PreferredDate  time.Time      `bson:"preferredDate" json:"preferredDate"`
	GeneralNotes   string         `bson:"generalNotes,omitempty" json:"generalNotes,omitempty"`
}

// BookingDocument is the persisted booking record.
type BookingDocument struct {
	ID             string         `bson:"id" json:"id"`           // Repository-assigned identifier (UUID)
	OrderID        string         `bson:"orderId" json:"orderId"` // Human-readable order code, immutable
	Name           string         `bson:"name" json:"name"`
	Phone          string         `bson:"phone" json:"phone"`
	Email          string         `bson:"email,omitempty" json:"email,omitempty"`
	OrderItems     []OrderItem    `bson:"orderItems" json:"orderItems"`
	DeliveryOption DeliveryOption `bson:"deliveryOption" json:"deliveryOption"`
	Address        string         `bson:"address,omitempty" json:"address,omitempty"`
	PreferredDate  time.Time      `bson:"preferredDate" json:"preferredDate"`
	GeneralNotes   string         `bson:"generalNotes,omitempty" json:"generalNotes,omitempty"`
	PhotoURLs      []string       `bson:"photoURLs" json:"photoURLs"` // One URL per uploaded photo, in upload order
	Status         BookingStatus  `bson:"status" json:"status"`       // Initial value is always StatusPending
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"` // Server-assigned, immutable
}

// NewBookingDocument builds the persisted record for a validated booking.
// The repository assigns ID and CreatedAt on insert.
func NewBookingDocument(b Booking, orderID string, photoURLs []string) BookingDocument {
	if photoURLs == nil {
		photoURLs = []string{}
	}
	return BookingDocument{
		OrderID:        orderID,
		Name:           b.Name,
		Phone:          b.Phone,
		Email:          b.Email,
		OrderItems:     b.OrderItems,
		DeliveryOption: b.DeliveryOption,
		Address:        b.Address,
		PreferredDate:  b.PreferredDate,
		GeneralNotes:   b.GeneralNotes,
		PhotoURLs:      photoURLs,
		Status:         StatusPending,
	}
}

// PhotoFile is an uploaded photo attachment in its submitted order.
type PhotoFile struct {
	Filename string
	Content  []byte
}

// Size returns the byte length of the file content.
func (p PhotoFile) Size() int {
	return len(p.Content)
}

// FieldErrors maps a field path (e.g. "address", "orderItems.0.frameColor")
// to the human-readable messages reported for it.
type FieldErrors map[string][]string

// Add appends a message for the given field path.
func (fe FieldErrors) Add(path, message string) {
	fe[path] = append(fe[path], message)
}

// Empty reports whether no field errors were recorded.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}
