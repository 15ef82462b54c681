package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment represents the payment record for an order. The amount mirrors the
// order's total cost at creation time; a payment never outlives its order.
type Payment struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	Amount        decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status        enum.PaymentStatus `gorm:"default:0" json:"status"`
	PaymentDate   *time.Time         `json:"payment_date,omitempty"`
	PaymentProof  *string            `gorm:"size:255" json:"payment_proof,omitempty"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
