package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/laundrypro/laundry-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetWithDetails returns the order with customer, service (and its current
	// price history) and payments preloaded
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// FindByInvoiceOrPhone locates an order by exact invoice number or by the
	// owning customer's phone number (used by public tracking)
	FindByInvoiceOrPhone(ctx context.Context, number string) (*entity.Order, error)
	// ListByCustomerPhone returns a customer's orders, newest first
	ListByCustomerPhone(ctx context.Context, phone string) ([]entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListRecent returns the most recently placed orders
	ListRecent(ctx context.Context, limit int) ([]entity.Order, error)
	// ListBetween returns orders (with details) whose order date falls in the
	// given window; zero bounds are open-ended
	ListBetween(ctx context.Context, from, to *time.Time) ([]entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
