package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
)

// ServiceRepository defines the interface for laundry service data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	// List returns all services with their price history, newest first
	List(ctx context.Context) ([]entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	// Delete removes a service and its price rows
	Delete(ctx context.Context, id uuid.UUID) error
	// CountOrders returns how many orders reference the service
	CountOrders(ctx context.Context, id uuid.UUID) (int64, error)
}

// PriceRepository defines the interface for price data operations
type PriceRepository interface {
	Create(ctx context.Context, price *entity.Price) error
	// GetCurrent returns the price row with the latest effective date not after
	// asOf, or nil when the service has no effective price yet
	GetCurrent(ctx context.Context, serviceID uuid.UUID, asOf time.Time) (*entity.Price, error)
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]entity.Price, error)
}
