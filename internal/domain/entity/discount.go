package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Discount represents a promotional percentage discount, optionally redeemable
// through a promo code. A discount is currently valid iff it is active and the
// reference time falls within [StartDate, EndDate].
type Discount struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title           string          `gorm:"size:255;not null" json:"title"`
	Description     *string         `gorm:"type:text" json:"description,omitempty"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"discount_percent"`
	PromoCode       *string         `gorm:"size:50;uniqueIndex" json:"promo_code,omitempty"` // stored uppercase
	StartDate       time.Time       `gorm:"not null" json:"start_date"`
	EndDate         time.Time       `gorm:"not null" json:"end_date"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
	Image           *string         `gorm:"size:255" json:"image,omitempty"`
	BannerImage     *string         `gorm:"size:255" json:"banner_image,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new discount
func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Discount model
func (Discount) TableName() string {
	return "discounts"
}

// IsValidAt reports whether the discount can be applied at the given time
func (d *Discount) IsValidAt(t time.Time) bool {
	return d.IsActive && !t.Before(d.StartDate) && !t.After(d.EndDate)
}
