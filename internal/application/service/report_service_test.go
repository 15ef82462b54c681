package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
)

func reportOrder(daysAgo int, status enum.OrderStatus, serviceName string, payments ...entity.Payment) entity.Order {
	return entity.Order{
		Status:    status,
		OrderDate: time.Now().AddDate(0, 0, -daysAgo),
		Service:   &entity.Service{ServiceName: serviceName},
		Payments:  payments,
	}
}

func paidPayment(amount int64, method enum.PaymentMethod) entity.Payment {
	return entity.Payment{
		Amount:        decimal.NewFromInt(amount),
		Status:        enum.PaymentStatusPaid,
		PaymentMethod: method,
	}
}

func unpaidPayment(amount int64) entity.Payment {
	return entity.Payment{
		Amount: decimal.NewFromInt(amount),
		Status: enum.PaymentStatusUnpaid,
	}
}

func TestReportService_BuildReport_CountsPaidRevenueOnly(t *testing.T) {
	orderRepo := &orderRepoStub{orders: []entity.Order{
		reportOrder(1, enum.OrderStatusCompleted, "Cuci Kering", paidPayment(24000, enum.PaymentMethodCash)),
		reportOrder(2, enum.OrderStatusPending, "Cuci Kering", unpaidPayment(16000)),
		reportOrder(3, enum.OrderStatusDelivered, "Cuci Setrika", paidPayment(30000, enum.PaymentMethodQRIS)),
	}}
	svc := NewReportService(orderRepo)

	report, err := svc.BuildReport(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalOrders)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(54000)),
		"total revenue = %s", report.TotalRevenue)

	assert.Equal(t, int64(1), report.StatusCounts["Completed"])
	assert.Equal(t, int64(1), report.StatusCounts["Pending"])
	assert.Equal(t, int64(1), report.StatusCounts["Delivered"])

	assert.Equal(t, int64(2), report.OrdersByService["Cuci Kering"])
	assert.Equal(t, int64(1), report.OrdersByService["Cuci Setrika"])
}

func TestReportService_BuildReport_RevenueByMethod(t *testing.T) {
	orderRepo := &orderRepoStub{orders: []entity.Order{
		reportOrder(1, enum.OrderStatusCompleted, "Cuci Kering",
			paidPayment(24000, enum.PaymentMethodCash)),
		reportOrder(2, enum.OrderStatusCompleted, "Cuci Kering",
			paidPayment(10000, enum.PaymentMethodCash),
			paidPayment(5000, enum.PaymentMethodTransfer)),
	}}
	svc := NewReportService(orderRepo)

	report, err := svc.BuildReport(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, report.RevenueByMethod["Cash"].Equal(decimal.NewFromInt(34000)))
	assert.True(t, report.RevenueByMethod["Transfer"].Equal(decimal.NewFromInt(5000)))
	assert.NotContains(t, report.RevenueByMethod, "QRIS")
}

func TestReportService_BuildReport_SeriesFillGaps(t *testing.T) {
	orderRepo := &orderRepoStub{orders: []entity.Order{
		reportOrder(0, enum.OrderStatusCompleted, "Cuci Kering", paidPayment(24000, enum.PaymentMethodCash)),
		reportOrder(5, enum.OrderStatusCompleted, "Cuci Kering", paidPayment(16000, enum.PaymentMethodCash)),
	}}
	svc := NewReportService(orderRepo)

	report, err := svc.BuildReport(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, report.DailySeries, 30)
	require.Len(t, report.MonthlySeries, 12)

	now := time.Now()
	assert.Equal(t, now.AddDate(0, 0, -29).Format("2006-01-02"), report.DailySeries[0].Label)
	assert.Equal(t, now.Format("2006-01-02"), report.DailySeries[29].Label)
	assert.Equal(t, now.Format("2006-01"), report.MonthlySeries[11].Label)

	byLabel := make(map[string]SeriesPoint)
	for _, point := range report.DailySeries {
		byLabel[point.Label] = point
	}
	today := byLabel[now.Format("2006-01-02")]
	assert.Equal(t, int64(1), today.Orders)
	assert.True(t, today.Revenue.Equal(decimal.NewFromInt(24000)))

	gap := byLabel[now.AddDate(0, 0, -3).Format("2006-01-02")]
	assert.Equal(t, int64(0), gap.Orders)
	assert.True(t, gap.Revenue.IsZero())
}

func TestReportService_BuildReport_Empty(t *testing.T) {
	svc := NewReportService(&orderRepoStub{})

	report, err := svc.BuildReport(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), report.TotalOrders)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.Empty(t, report.StatusCounts)
	require.Len(t, report.DailySeries, 30)
	for _, point := range report.DailySeries {
		assert.Equal(t, int64(0), point.Orders)
	}
}
