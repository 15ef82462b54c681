package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
)

// DiscountRepository defines the interface for discount data operations
type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error)
	// GetValidByPromoCode returns the discount matching the (uppercase) promo
	// code that is active and whose validity window contains asOf, or nil
	GetValidByPromoCode(ctx context.Context, code string, asOf time.Time) (*entity.Discount, error)
	// List returns all discounts, newest first
	List(ctx context.Context) ([]entity.Discount, error)
	// ListValid returns discounts valid at asOf
	ListValid(ctx context.Context, asOf time.Time) ([]entity.Discount, error)
	Update(ctx context.Context, discount *entity.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
}
