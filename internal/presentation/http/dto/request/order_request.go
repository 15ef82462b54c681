package request

import "github.com/google/uuid"

// CreateOrderRequest represents a public order submission
type CreateOrderRequest struct {
	CustomerName  string    `json:"customer_name" binding:"required,min=2,max=255"`
	Email         string    `json:"email" binding:"required,email"`
	Phone         string    `json:"phone" binding:"required,min=6,max=50"`
	Address       string    `json:"address" binding:"required"`
	ServiceID     uuid.UUID `json:"service_id" binding:"required"`
	Weight        float64   `json:"weight" binding:"required,gt=0"`
	PromoCode     string    `json:"promo_code"`
	PaymentMethod string    `json:"payment_method" binding:"required"`
	PickupDate    *string   `json:"pickup_date"` // YYYY-MM-DD
	Notes         *string   `json:"notes"`
}

// UpdateOrderRequest represents an admin order update
type UpdateOrderRequest struct {
	Status       *string `json:"status"`
	PickupDate   *string `json:"pickup_date"`   // YYYY-MM-DD
	DeliveryDate *string `json:"delivery_date"` // YYYY-MM-DD
	Notes        *string `json:"notes"`
}

// UpdateOrderStatusRequest represents an order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
