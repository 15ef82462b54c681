package service

import (
	"context"
	"time"

	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/pkg/apperror"
)

// Purgeable data types accepted by the retention engine
const (
	PurgeTypeOrders    = "orders"
	PurgeTypeCustomers = "customers"
	PurgeTypePayments  = "payments"
	PurgeTypeAll       = "all"
)

// RetentionService is the bulk-deletion engine behind data management
type RetentionService struct {
	retentionRepo repository.RetentionRepository
}

// NewRetentionService creates a new retention service
func NewRetentionService(retentionRepo repository.RetentionRepository) *RetentionService {
	return &RetentionService{retentionRepo: retentionRepo}
}

// PurgeInput describes one purge request. OlderThanDays and DateFrom/DateTo
// are alternative date predicates; Status is matched against the order status
// for orders and the payment status for payments.
type PurgeInput struct {
	DataType      string
	OlderThanDays *int
	Status        *string
	DateFrom      *time.Time
	DateTo        *time.Time
}

// PurgeFilters echoes the predicates a filtered purge ran with
type PurgeFilters struct {
	OlderThan *int    `json:"olderThan,omitempty"`
	Status    *string `json:"status,omitempty"`
	DateFrom  *string `json:"dateFrom,omitempty"`
	DateTo    *string `json:"dateTo,omitempty"`
}

// PurgeDetail is one per-table count from a full reset, in deletion order
type PurgeDetail struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// PurgeResult reports what a purge actually removed
type PurgeResult struct {
	DataType     string        `json:"dataType"`
	DeletedCount int64         `json:"deletedCount"`
	Filters      *PurgeFilters `json:"filters,omitempty"`
	Details      []PurgeDetail `json:"details,omitempty"`
}

func echoFilters(input *PurgeInput) *PurgeFilters {
	filters := &PurgeFilters{OlderThan: input.OlderThanDays, Status: input.Status}
	if input.DateFrom != nil {
		from := input.DateFrom.Format("2006-01-02")
		filters.DateFrom = &from
	}
	if input.DateTo != nil {
		to := input.DateTo.Format("2006-01-02")
		filters.DateTo = &to
	}
	return filters
}

// PreviewResult is the read-only snapshot shown before a purge
type PreviewResult struct {
	TotalOrders        int64 `json:"totalOrders"`
	TotalCustomers     int64 `json:"totalCustomers"`
	TotalPayments      int64 `json:"totalPayments"`
	OrdersOlderThan30  int64 `json:"ordersOlderThan30Days"`
	OrdersOlderThan90  int64 `json:"ordersOlderThan90Days"`
	OrdersOlderThan365 int64 `json:"ordersOlderThan365Days"`
	CompletedOrders    int64 `json:"completedOrders"`
	DeliveredOrders    int64 `json:"deliveredOrders"`
	PaidPayments       int64 `json:"paidPayments"`
}

// purgeStep is one stage of the full reset. The slice order is the dependency
// order; children are removed before the rows they reference.
type purgeStep struct {
	name   string
	delete func(context.Context, repository.RetentionRepository) (int64, error)
}

var fullResetSteps = []purgeStep{
	{"payments", func(ctx context.Context, r repository.RetentionRepository) (int64, error) {
		return r.DeleteAllPayments(ctx)
	}},
	{"orders", func(ctx context.Context, r repository.RetentionRepository) (int64, error) {
		return r.DeleteAllOrders(ctx)
	}},
	{"prices", func(ctx context.Context, r repository.RetentionRepository) (int64, error) {
		return r.DeleteAllPrices(ctx)
	}},
	{"services", func(ctx context.Context, r repository.RetentionRepository) (int64, error) {
		return r.DeleteAllServices(ctx)
	}},
	{"customers", func(ctx context.Context, r repository.RetentionRepository) (int64, error) {
		return r.DeleteAllCustomers(ctx)
	}},
}

// Purge executes a bulk deletion. Orders and payments refuse to run without
// at least one filter; the full reset ignores filters and wipes every table
// in dependency order. Each variant runs inside a single transaction.
func (s *RetentionService) Purge(ctx context.Context, input *PurgeInput) (*PurgeResult, error) {
	switch input.DataType {
	case PurgeTypeOrders:
		return s.purgeOrders(ctx, input)
	case PurgeTypeCustomers:
		return s.purgeCustomers(ctx, input)
	case PurgeTypePayments:
		return s.purgePayments(ctx, input)
	case PurgeTypeAll:
		return s.purgeAll(ctx)
	default:
		return nil, apperror.NewBadRequestError("Invalid data type. Use: orders, customers, payments, or all")
	}
}

func (s *RetentionService) purgeOrders(ctx context.Context, input *PurgeInput) (*PurgeResult, error) {
	filter, err := buildOrderFilter(input)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() {
		return nil, apperror.ErrMissingFilter
	}

	var deleted int64
	err = s.retentionRepo.Transaction(ctx, func(tx repository.RetentionRepository) error {
		ids, err := tx.FindOrderIDs(ctx, filter)
		if err != nil {
			return err
		}
		if _, err := tx.DeletePaymentsByOrderIDs(ctx, ids); err != nil {
			return err
		}
		deleted, err = tx.DeleteOrdersByIDs(ctx, ids)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &PurgeResult{DataType: PurgeTypeOrders, DeletedCount: deleted, Filters: echoFilters(input)}, nil
}

func (s *RetentionService) purgeCustomers(ctx context.Context, input *PurgeInput) (*PurgeResult, error) {
	filter := buildDateFilter(input)

	var deleted int64
	err := s.retentionRepo.Transaction(ctx, func(tx repository.RetentionRepository) error {
		var err error
		deleted, err = tx.DeleteCustomersWithoutOrders(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &PurgeResult{DataType: PurgeTypeCustomers, DeletedCount: deleted, Filters: echoFilters(input)}, nil
}

func (s *RetentionService) purgePayments(ctx context.Context, input *PurgeInput) (*PurgeResult, error) {
	filter := buildDateFilter(input)
	if input.Status != nil {
		status, err := enum.ParsePaymentStatus(*input.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid payment status")
		}
		filter.PaymentStatus = &status
	}
	if filter.IsZero() {
		return nil, apperror.ErrMissingFilter
	}

	var deleted int64
	err := s.retentionRepo.Transaction(ctx, func(tx repository.RetentionRepository) error {
		var err error
		deleted, err = tx.DeletePayments(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &PurgeResult{DataType: PurgeTypePayments, DeletedCount: deleted, Filters: echoFilters(input)}, nil
}

func (s *RetentionService) purgeAll(ctx context.Context) (*PurgeResult, error) {
	details := make([]PurgeDetail, 0, len(fullResetSteps))
	var total int64

	err := s.retentionRepo.Transaction(ctx, func(tx repository.RetentionRepository) error {
		for _, step := range fullResetSteps {
			count, err := step.delete(ctx, tx)
			if err != nil {
				return err
			}
			details = append(details, PurgeDetail{Type: step.name, Count: count})
			total += count
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PurgeResult{DataType: PurgeTypeAll, DeletedCount: total, Details: details}, nil
}

// Preview returns the counts an operator sees before committing to a purge
func (s *RetentionService) Preview(ctx context.Context) (*PreviewResult, error) {
	result := &PreviewResult{}
	now := time.Now()

	counts := []struct {
		dest  *int64
		fetch func() (int64, error)
	}{
		{&result.TotalOrders, func() (int64, error) { return s.retentionRepo.CountOrders(ctx) }},
		{&result.TotalCustomers, func() (int64, error) { return s.retentionRepo.CountCustomers(ctx) }},
		{&result.TotalPayments, func() (int64, error) { return s.retentionRepo.CountPayments(ctx) }},
		{&result.OrdersOlderThan30, func() (int64, error) {
			return s.retentionRepo.CountOrdersBefore(ctx, now.AddDate(0, 0, -30))
		}},
		{&result.OrdersOlderThan90, func() (int64, error) {
			return s.retentionRepo.CountOrdersBefore(ctx, now.AddDate(0, 0, -90))
		}},
		{&result.OrdersOlderThan365, func() (int64, error) {
			return s.retentionRepo.CountOrdersBefore(ctx, now.AddDate(0, 0, -365))
		}},
		{&result.CompletedOrders, func() (int64, error) {
			return s.retentionRepo.CountOrdersByStatus(ctx, enum.OrderStatusCompleted)
		}},
		{&result.DeliveredOrders, func() (int64, error) {
			return s.retentionRepo.CountOrdersByStatus(ctx, enum.OrderStatusDelivered)
		}},
		{&result.PaidPayments, func() (int64, error) {
			return s.retentionRepo.CountPaymentsByStatus(ctx, enum.PaymentStatusPaid)
		}},
	}

	for _, c := range counts {
		value, err := c.fetch()
		if err != nil {
			return nil, err
		}
		*c.dest = value
	}

	return result, nil
}

// buildDateFilter converts the request's date parameters into a filter
func buildDateFilter(input *PurgeInput) *repository.RetentionFilter {
	filter := &repository.RetentionFilter{}
	if input.OlderThanDays != nil && *input.OlderThanDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -*input.OlderThanDays)
		filter.Before = &cutoff
	}
	filter.From = input.DateFrom
	filter.To = input.DateTo
	return filter
}

func buildOrderFilter(input *PurgeInput) (*repository.RetentionFilter, error) {
	filter := buildDateFilter(input)
	if input.Status != nil {
		status, err := enum.ParseOrderStatus(*input.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid order status")
		}
		filter.OrderStatus = &status
	}
	return filter, nil
}
