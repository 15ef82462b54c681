package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a laundry order placed by a customer for one service
type Order struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"customer_id"`
	ServiceID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"service_id"`
	Weight        decimal.Decimal  `gorm:"type:numeric(8,2);not null" json:"weight"`
	TotalCost     decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"total_cost"`
	InvoiceNumber string           `gorm:"size:100;uniqueIndex;not null" json:"invoice_number"`
	Status        enum.OrderStatus `gorm:"default:0" json:"status"`
	OrderDate     time.Time        `gorm:"not null;index" json:"order_date"`
	PickupDate    *time.Time       `json:"pickup_date,omitempty"`
	DeliveryDate  *time.Time       `json:"delivery_date,omitempty"`
	Notes         *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Service  *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Payments []Payment `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
