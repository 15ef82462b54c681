package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
)

// RetentionFilter is the concrete predicate a purge request resolves to.
// Before and From/To are mutually exclusive at the request layer; when both a
// date predicate and a status are present they combine with AND.
type RetentionFilter struct {
	Before        *time.Time // reference date strictly before this instant
	From          *time.Time // inclusive lower bound
	To            *time.Time // inclusive upper bound
	OrderStatus   *enum.OrderStatus
	PaymentStatus *enum.PaymentStatus
}

// IsZero reports whether no filter criteria were supplied
func (f *RetentionFilter) IsZero() bool {
	return f.Before == nil && f.From == nil && f.To == nil &&
		f.OrderStatus == nil && f.PaymentStatus == nil
}

// RetentionRepository defines the data operations of the bulk-deletion engine.
// All delete methods return the number of rows actually removed.
type RetentionRepository interface {
	// Transaction runs fn against a transactional copy of the repository;
	// rolling back on error. The cascades run inside one transaction so a
	// partial failure leaves nothing half-deleted.
	Transaction(ctx context.Context, fn func(RetentionRepository) error) error

	// FindOrderIDs resolves the orders matched by the filter (reference date
	// is the order date)
	FindOrderIDs(ctx context.Context, filter *RetentionFilter) ([]uuid.UUID, error)
	DeletePaymentsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (int64, error)
	DeleteOrdersByIDs(ctx context.Context, orderIDs []uuid.UUID) (int64, error)

	// DeletePayments removes payments matched by the filter (reference date is
	// the payment's creation date)
	DeletePayments(ctx context.Context, filter *RetentionFilter) (int64, error)

	// DeleteCustomersWithoutOrders removes customers matched by the filter
	// (reference date is the customer's creation date) that have no orders.
	// Customers with orders are excluded, never errors.
	DeleteCustomersWithoutOrders(ctx context.Context, filter *RetentionFilter) (int64, error)

	// Unfiltered whole-table deletes used by the full reset
	DeleteAllPayments(ctx context.Context) (int64, error)
	DeleteAllOrders(ctx context.Context) (int64, error)
	DeleteAllPrices(ctx context.Context) (int64, error)
	DeleteAllServices(ctx context.Context) (int64, error)
	DeleteAllCustomers(ctx context.Context) (int64, error)

	// Preview counts
	CountOrders(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context) (int64, error)
	CountOrdersBefore(ctx context.Context, t time.Time) (int64, error)
	CountOrdersByStatus(ctx context.Context, status enum.OrderStatus) (int64, error)
	CountPaymentsByStatus(ctx context.Context, status enum.PaymentStatus) (int64, error)
}
