package service

import (
	"context"

	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// SettingsService manages the admin account and the shop's public details
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the settings row
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.AdminSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Settings")
	}
	return settings, nil
}

// PaymentInfo is the public subset of settings shown at checkout
type PaymentInfo struct {
	BankAccount  *string `json:"bank_account,omitempty"`
	QRISImage    *string `json:"qris_image,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Address      *string `json:"address,omitempty"`
}

// GetPaymentInfo returns the public payment and contact details
func (s *SettingsService) GetPaymentInfo(ctx context.Context) (*PaymentInfo, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &PaymentInfo{}, nil
	}

	return &PaymentInfo{
		BankAccount:  settings.BankAccount,
		QRISImage:    settings.QRISImage,
		Phone:        settings.Phone,
		ContactEmail: settings.ContactEmail,
		Address:      settings.Address,
	}, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	Email        *string
	Password     *string
	BankAccount  *string
	QRISImage    *string
	Logo         *string
	Phone        *string
	ContactEmail *string
	Address      *string
}

// UpdateSettings applies a partial update to the settings row. A new password
// is hashed before storage.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.AdminSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Settings")
	}

	if input.Email != nil && *input.Email != "" {
		settings.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		if len(*input.Password) < 8 {
			return nil, apperror.NewBadRequestError("Password must be at least 8 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		settings.Password = string(hashed)
	}
	if input.BankAccount != nil {
		settings.BankAccount = input.BankAccount
	}
	if input.QRISImage != nil {
		settings.QRISImage = input.QRISImage
	}
	if input.Logo != nil {
		settings.Logo = input.Logo
	}
	if input.Phone != nil {
		settings.Phone = input.Phone
	}
	if input.ContactEmail != nil {
		settings.ContactEmail = input.ContactEmail
	}
	if input.Address != nil {
		settings.Address = input.Address
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
