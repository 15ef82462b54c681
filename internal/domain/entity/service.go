package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service represents a laundry service offering (e.g. regular wash, dry clean)
type Service struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ServiceName    string          `gorm:"size:255;not null" json:"service_name"`
	Description    *string         `gorm:"type:text" json:"description,omitempty"`
	BasePricePerKg decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"base_price_per_kg"`
	EstimatedTime  *string         `gorm:"size:100" json:"estimated_time,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Relationships
	Prices []Price `gorm:"foreignKey:ServiceID" json:"prices,omitempty"`
	Orders []Order `gorm:"foreignKey:ServiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// Price represents a per-kilogram rate for a service, effective from a given date.
// The current price for a service is the row with the latest effective date not in
// the future; callers without one fall back to the service's base price.
type Price struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"service_id"`
	PricePerKg    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price_per_kg"`
	EffectiveDate time.Time       `gorm:"not null;index" json:"effective_date"`
	Notes         *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new price
func (p *Price) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Price model
func (Price) TableName() string {
	return "prices"
}
