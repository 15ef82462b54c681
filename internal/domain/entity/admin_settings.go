package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSettings is the single-row settings entity holding the operator account
// and the shop's public payment/contact details. The row is created at seed
// time and accessed through the settings repository; there is never more than
// one.
type AdminSettings struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	BankAccount  *string   `gorm:"size:255" json:"bank_account,omitempty"`
	QRISImage    *string   `gorm:"size:255" json:"qris_image,omitempty"`
	Logo         *string   `gorm:"size:255" json:"logo,omitempty"`
	Phone        *string   `gorm:"size:50" json:"phone,omitempty"`
	ContactEmail *string   `gorm:"size:255" json:"contact_email,omitempty"`
	Address      *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the settings row
func (a *AdminSettings) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AdminSettings model
func (AdminSettings) TableName() string {
	return "admin_settings"
}
