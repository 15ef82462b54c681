package service

import (
	"context"

	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/pkg/apperror"
	"github.com/laundrypro/laundry-api/pkg/email"
)

// ContactService relays contact form submissions to the shop's inbox
type ContactService struct {
	emailService *email.EmailService
	settingsRepo repository.SettingsRepository
}

// NewContactService creates a new contact service
func NewContactService(emailService *email.EmailService, settingsRepo repository.SettingsRepository) *ContactService {
	return &ContactService{emailService: emailService, settingsRepo: settingsRepo}
}

// SendMessage relays a contact form submission. The destination is the shop's
// contact email, falling back to the admin account email.
func (s *ContactService) SendMessage(ctx context.Context, msg *email.ContactMessage) error {
	if !s.emailService.IsConfigured() {
		return apperror.NewBadRequestError("Contact form is not available")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		return apperror.NewNotFoundError("Settings")
	}

	toEmail := settings.Email
	if settings.ContactEmail != nil && *settings.ContactEmail != "" {
		toEmail = *settings.ContactEmail
	}

	return s.emailService.SendContactMessage(toEmail, msg)
}
