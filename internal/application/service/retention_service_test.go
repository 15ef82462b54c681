package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// retentionRepoStub records the sequence of delete calls so the cascade order
// can be asserted
type retentionRepoStub struct {
	calls []string

	orderIDs       []uuid.UUID
	lastFilter     *repository.RetentionFilter
	tableCounts    map[string]int64
	inTx           bool
	txBegun        int
	failDeletes    bool
	customersCount int64
}

var errStubFailure = apperror.NewAppError(500, "stub failure")

func newRetentionRepoStub() *retentionRepoStub {
	return &retentionRepoStub{tableCounts: make(map[string]int64)}
}

func (s *retentionRepoStub) Transaction(ctx context.Context, fn func(repository.RetentionRepository) error) error {
	s.txBegun++
	s.inTx = true
	defer func() { s.inTx = false }()
	return fn(s)
}

func (s *retentionRepoStub) record(name string) {
	s.calls = append(s.calls, name)
}

func (s *retentionRepoStub) FindOrderIDs(ctx context.Context, filter *repository.RetentionFilter) ([]uuid.UUID, error) {
	s.lastFilter = filter
	s.record("find_orders")
	return s.orderIDs, nil
}

func (s *retentionRepoStub) DeletePaymentsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (int64, error) {
	s.record("delete_payments_of_orders")
	if s.failDeletes {
		return 0, errStubFailure
	}
	return int64(len(orderIDs)), nil
}

func (s *retentionRepoStub) DeleteOrdersByIDs(ctx context.Context, orderIDs []uuid.UUID) (int64, error) {
	s.record("delete_orders_by_ids")
	return int64(len(orderIDs)), nil
}

func (s *retentionRepoStub) DeletePayments(ctx context.Context, filter *repository.RetentionFilter) (int64, error) {
	s.lastFilter = filter
	s.record("delete_payments")
	return s.tableCounts["payments"], nil
}

func (s *retentionRepoStub) DeleteCustomersWithoutOrders(ctx context.Context, filter *repository.RetentionFilter) (int64, error) {
	s.lastFilter = filter
	s.record("delete_customers_without_orders")
	return s.customersCount, nil
}

func (s *retentionRepoStub) takeAll(name string) int64 {
	count := s.tableCounts[name]
	s.tableCounts[name] = 0
	return count
}

func (s *retentionRepoStub) DeleteAllPayments(ctx context.Context) (int64, error) {
	s.record("all_payments")
	return s.takeAll("payments"), nil
}

func (s *retentionRepoStub) DeleteAllOrders(ctx context.Context) (int64, error) {
	s.record("all_orders")
	return s.takeAll("orders"), nil
}

func (s *retentionRepoStub) DeleteAllPrices(ctx context.Context) (int64, error) {
	s.record("all_prices")
	return s.takeAll("prices"), nil
}

func (s *retentionRepoStub) DeleteAllServices(ctx context.Context) (int64, error) {
	s.record("all_services")
	return s.takeAll("services"), nil
}

func (s *retentionRepoStub) DeleteAllCustomers(ctx context.Context) (int64, error) {
	s.record("all_customers")
	return s.takeAll("customers"), nil
}

func (s *retentionRepoStub) CountOrders(ctx context.Context) (int64, error) {
	return s.tableCounts["orders"], nil
}

func (s *retentionRepoStub) CountCustomers(ctx context.Context) (int64, error) {
	return s.tableCounts["customers"], nil
}

func (s *retentionRepoStub) CountPayments(ctx context.Context) (int64, error) {
	return s.tableCounts["payments"], nil
}

func (s *retentionRepoStub) CountOrdersBefore(ctx context.Context, t time.Time) (int64, error) {
	return s.tableCounts["orders_before"], nil
}

func (s *retentionRepoStub) CountOrdersByStatus(ctx context.Context, status enum.OrderStatus) (int64, error) {
	return s.tableCounts["orders_"+status.String()], nil
}

func (s *retentionRepoStub) CountPaymentsByStatus(ctx context.Context, status enum.PaymentStatus) (int64, error) {
	return s.tableCounts["payments_"+status.String()], nil
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestPurgeOrders_RequiresFilter(t *testing.T) {
	svc := NewRetentionService(newRetentionRepoStub())

	_, err := svc.Purge(context.Background(), &PurgeInput{DataType: PurgeTypeOrders})
	assert.ErrorIs(t, err, apperror.ErrMissingFilter)
}

func TestPurgePayments_RequiresFilter(t *testing.T) {
	svc := NewRetentionService(newRetentionRepoStub())

	_, err := svc.Purge(context.Background(), &PurgeInput{DataType: PurgeTypePayments})
	assert.ErrorIs(t, err, apperror.ErrMissingFilter)
}

func TestPurgeOrders_DeletesPaymentsBeforeOrders(t *testing.T) {
	repo := newRetentionRepoStub()
	repo.orderIDs = []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	svc := NewRetentionService(repo)

	result, err := svc.Purge(context.Background(), &PurgeInput{
		DataType:      PurgeTypeOrders,
		OlderThanDays: intPtr(90),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"find_orders", "delete_payments_of_orders", "delete_orders_by_ids"}, repo.calls)
	assert.Equal(t, int64(3), result.DeletedCount)
	assert.Equal(t, PurgeTypeOrders, result.DataType)
	assert.Equal(t, 1, repo.txBegun)

	require.NotNil(t, result.Filters)
	require.NotNil(t, result.Filters.OlderThan)
	assert.Equal(t, 90, *result.Filters.OlderThan)
	assert.Nil(t, result.Filters.Status)
}

func TestPurgeOrders_StatusAndDateCombine(t *testing.T) {
	repo := newRetentionRepoStub()
	svc := NewRetentionService(repo)

	_, err := svc.Purge(context.Background(), &PurgeInput{
		DataType:      PurgeTypeOrders,
		OlderThanDays: intPtr(30),
		Status:        strPtr("Canceled"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter)
	assert.NotNil(t, repo.lastFilter.Before)
	require.NotNil(t, repo.lastFilter.OrderStatus)
	assert.Equal(t, enum.OrderStatusCanceled, *repo.lastFilter.OrderStatus)
}

func TestPurgeOrders_RejectsUnknownStatus(t *testing.T) {
	svc := NewRetentionService(newRetentionRepoStub())

	_, err := svc.Purge(context.Background(), &PurgeInput{
		DataType: PurgeTypeOrders,
		Status:   strPtr("Vanished"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestPurgeCustomers_RunsWithoutFilter(t *testing.T) {
	repo := newRetentionRepoStub()
	repo.customersCount = 4
	svc := NewRetentionService(repo)

	result, err := svc.Purge(context.Background(), &PurgeInput{DataType: PurgeTypeCustomers})
	require.NoError(t, err)

	assert.Equal(t, []string{"delete_customers_without_orders"}, repo.calls)
	assert.Equal(t, int64(4), result.DeletedCount)
}

func TestPurgeAll_CascadeOrderAndCounts(t *testing.T) {
	repo := newRetentionRepoStub()
	repo.tableCounts = map[string]int64{
		"payments":  10,
		"orders":    8,
		"prices":    5,
		"services":  3,
		"customers": 6,
	}
	svc := NewRetentionService(repo)

	result, err := svc.Purge(context.Background(), &PurgeInput{DataType: PurgeTypeAll})
	require.NoError(t, err)

	assert.Equal(t, []string{"all_payments", "all_orders", "all_prices", "all_services", "all_customers"}, repo.calls)
	assert.Equal(t, int64(32), result.DeletedCount)
	assert.Equal(t, []PurgeDetail{
		{Type: "payments", Count: 10},
		{Type: "orders", Count: 8},
		{Type: "prices", Count: 5},
		{Type: "services", Count: 3},
		{Type: "customers", Count: 6},
	}, result.Details)
}

func TestPurgeAll_SecondRunReportsZeros(t *testing.T) {
	repo := newRetentionRepoStub()
	repo.tableCounts = map[string]int64{"payments": 2, "orders": 1}
	svc := NewRetentionService(repo)

	_, err := svc.Purge(context.Background(), &PurgeInput{DataType: PurgeTypeAll})
	require.NoError(t, err)

	result, err := svc.Purge(context.Background(), &PurgeInput{DataType: PurgeTypeAll})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)
	for _, detail := range result.Details {
		assert.Equal(t, int64(0), detail.Count, "table %s", detail.Type)
	}
}

func TestPurge_RejectsUnknownType(t *testing.T) {
	svc := NewRetentionService(newRetentionRepoStub())

	_, err := svc.Purge(context.Background(), &PurgeInput{DataType: "invoices"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestPurgeOrders_FailureInsideTransactionPropagates(t *testing.T) {
	repo := newRetentionRepoStub()
	repo.orderIDs = []uuid.UUID{uuid.New()}
	repo.failDeletes = true
	svc := NewRetentionService(repo)

	_, err := svc.Purge(context.Background(), &PurgeInput{
		DataType:      PurgeTypeOrders,
		OlderThanDays: intPtr(30),
	})
	assert.ErrorIs(t, err, errStubFailure)
	assert.NotContains(t, repo.calls, "delete_orders_by_ids")
}

func TestPreview_ReturnsCounts(t *testing.T) {
	repo := newRetentionRepoStub()
	repo.tableCounts = map[string]int64{
		"orders":           20,
		"customers":        7,
		"payments":         20,
		"orders_before":    12,
		"orders_Completed": 9,
		"orders_Delivered": 4,
		"payments_Paid":    15,
	}
	svc := NewRetentionService(repo)

	preview, err := svc.Preview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(20), preview.TotalOrders)
	assert.Equal(t, int64(7), preview.TotalCustomers)
	assert.Equal(t, int64(20), preview.TotalPayments)
	assert.Equal(t, int64(9), preview.CompletedOrders)
	assert.Equal(t, int64(4), preview.DeliveredOrders)
	assert.Equal(t, int64(15), preview.PaidPayments)
}

func TestPurgePayments_StatusFilter(t *testing.T) {
	repo := newRetentionRepoStub()
	repo.tableCounts["payments"] = 5
	svc := NewRetentionService(repo)

	result, err := svc.Purge(context.Background(), &PurgeInput{
		DataType: PurgeTypePayments,
		Status:   strPtr("Unpaid"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter)
	require.NotNil(t, repo.lastFilter.PaymentStatus)
	assert.Equal(t, enum.PaymentStatusUnpaid, *repo.lastFilter.PaymentStatus)
	assert.Equal(t, int64(5), result.DeletedCount)
}
