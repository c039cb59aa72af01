package booking

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"shreeji/models"
)

// Form-level validation messages, matching the booking form's copy.
const (
	msgNameTooShort    = "Name must be at least 2 characters."
	msgInvalidPhone    = "Please enter a valid phone number."
	msgInvalidEmail    = "Please enter a valid email."
	msgNoOrderItems    = "Please add at least one item to your order."
	msgInvalidService  = "Please select a valid service."
	msgSizeRequired    = "Size is required."
	msgVariantRequired = "Variant is required."
	msgInvalidQuantity = "Quantity must be at least 1."
	msgFrameColor      = "Frame color is required for Acrylic Printing."
	msgAddressRequired = "Address is required for delivery."
	msgInvalidOption   = "Please select a delivery option."
	msgInvalidDate     = "Please select a valid date."
)

// DecodeBookingInput validates a raw submission into a well-formed Booking.
// On failure it returns nil and a non-empty map of field path to messages;
// it never partially succeeds.
func DecodeBookingInput(input BookingInput) (*models.Booking, models.FieldErrors) {
	fieldErrs := models.FieldErrors{}

	name := strings.TrimSpace(input.Name)
	if len(name) < 2 {
		fieldErrs.Add("name", msgNameTooShort)
	}

	phone := strings.TrimSpace(input.Phone)
	if len(phone) < 10 {
		fieldErrs.Add("phone", msgInvalidPhone)
	}

	// Empty string is treated as absent.
	email := strings.TrimSpace(input.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			fieldErrs.Add("email", msgInvalidEmail)
		}
	}

	var items []models.OrderItem
	if len(input.OrderItems) == 0 {
		fieldErrs.Add("orderItems", msgNoOrderItems)
	} else {
		items = make([]models.OrderItem, 0, len(input.OrderItems))
		for i, raw := range input.OrderItems {
			items = append(items, decodeOrderItem(i, raw, fieldErrs))
		}
	}

	deliveryOption := models.DeliveryOption(input.DeliveryOption)
	switch deliveryOption {
	case models.DeliveryPickup, models.DeliveryDelivery:
	default:
		fieldErrs.Add("deliveryOption", msgInvalidOption)
	}

	// Address is required only when the order is delivered.
	address := strings.TrimSpace(input.Address)
	if deliveryOption == models.DeliveryDelivery && address == "" {
		fieldErrs.Add("address", msgAddressRequired)
	}

	preferredDate, err := parseDate(input.PreferredDate)
	if err != nil {
		fieldErrs.Add("preferredDate", msgInvalidDate)
	}

	if !fieldErrs.Empty() {
		return nil, fieldErrs
	}

	return &models.Booking{
		Name:           name,
		Phone:          phone,
		Email:          email,
		OrderItems:     items,
		DeliveryOption: deliveryOption,
		Address:        address,
		PreferredDate:  preferredDate,
		GeneralNotes:   strings.TrimSpace(input.GeneralNotes),
	}, nil
}

func decodeOrderItem(index int, raw OrderItemInput, fieldErrs models.FieldErrors) models.OrderItem {
	itemPath := func(field string) string {
		return fmt.Sprintf("orderItems.%d.%s", index, field)
	}

	service := models.ServiceType(raw.Service)
	if !models.ValidService(service) {
		fieldErrs.Add(itemPath("service"), msgInvalidService)
	}
	if strings.TrimSpace(raw.Size) == "" {
		fieldErrs.Add(itemPath("size"), msgSizeRequired)
	}
	if strings.TrimSpace(raw.Variant) == "" {
		fieldErrs.Add(itemPath("variant"), msgVariantRequired)
	}

	quantity := coerceQuantity(raw.Quantity.String())
	if quantity < 1 {
		fieldErrs.Add(itemPath("quantity"), msgInvalidQuantity)
	}

	// Frame color only matters for acrylic prints.
	frameColor := strings.TrimSpace(raw.FrameColor)
	if service == models.ServiceAcrylicPrinting && frameColor == "" {
		fieldErrs.Add(itemPath("frameColor"), msgFrameColor)
	}

	return models.OrderItem{
		Service:    service,
		Size:       strings.TrimSpace(raw.Size),
		Variant:    strings.TrimSpace(raw.Variant),
		FrameColor: frameColor,
		Quantity:   quantity,
		ItemNotes:  strings.TrimSpace(raw.ItemNotes),
	}
}

// coerceQuantity converts a numeric string to an int; anything non-numeric
// maps to 0 and fails the minimum check upstream.
func coerceQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseDate accepts the form's ISO date string, with or without a time part.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
