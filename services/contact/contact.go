package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	contactRepo "shreeji/database/repository/contact"
	"shreeji/models"
	"shreeji/utils"

	"go.uber.org/zap"
)

const (
	msgNameTooShort    = "Name must be at least 2 characters."
	msgInvalidPhone    = "Please enter a valid phone number."
	msgInvalidEmail    = "Please enter a valid email."
	msgMessageTooShort = "Message must be at least 10 characters."
)

// InquiryInput is the raw contact form submission.
type InquiryInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ValidationError reports field-level failures from the contact form.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid contact input (%d fields)", len(e.Fields))
}

// ContactService validates and records contact inquiries.
type ContactService interface {
	Submit(ctx context.Context, input InquiryInput) error
	ListMessages(ctx context.Context) ([]models.ContactInquiry, error)
}

// DefaultContactService is the default implementation.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}

// Submit validates the inquiry and persists it with a server timestamp.
func (s *DefaultContactService) Submit(ctx context.Context, input InquiryInput) error {
	fieldErrs := models.FieldErrors{}

	name := strings.TrimSpace(input.Name)
	if len(name) < 2 {
		fieldErrs.Add("name", msgNameTooShort)
	}
	phone := strings.TrimSpace(input.Phone)
	if len(phone) < 10 {
		fieldErrs.Add("phone", msgInvalidPhone)
	}
	email := strings.TrimSpace(input.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			fieldErrs.Add("email", msgInvalidEmail)
		}
	}
	message := strings.TrimSpace(input.Message)
	if len(message) < 10 {
		fieldErrs.Add("message", msgMessageTooShort)
	}

	if !fieldErrs.Empty() {
		return &ValidationError{Fields: fieldErrs}
	}

	inquiry := models.ContactInquiry{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Message: message,
	}
	if _, err := s.Repo.Create(ctx, inquiry); err != nil {
		utils.GetLogger().Error("contact inquiry persistence failed", zap.Error(err))
		return fmt.Errorf("failed to persist contact inquiry: %w", err)
	}

	utils.GetLogger().Info("contact inquiry received", zap.String("name", name))
	return nil
}

// ListMessages returns all inquiries, newest first, for the admin dashboard.
func (s *DefaultContactService) ListMessages(ctx context.Context) ([]models.ContactInquiry, error) {
	inquiries, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact inquiries: %w", err)
	}
	return inquiries, nil
}
