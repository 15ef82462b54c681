package service

import (
	"context"
	"time"

	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReportService builds business reports over a date window
type ReportService struct {
	orderRepo repository.OrderRepository
}

// NewReportService creates a new report service
func NewReportService(orderRepo repository.OrderRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo}
}

// SeriesPoint is one bucket of a time series
type SeriesPoint struct {
	Label   string          `json:"label"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Report is the aggregate view returned to the admin dashboard
type Report struct {
	TotalOrders     int64                      `json:"totalOrders"`
	TotalRevenue    decimal.Decimal            `json:"totalRevenue"`
	StatusCounts    map[string]int64           `json:"statusCounts"`
	RevenueByMethod map[string]decimal.Decimal `json:"revenueByMethod"`
	OrdersByService map[string]int64           `json:"ordersByService"`
	MonthlySeries   []SeriesPoint              `json:"monthlySeries"`
	DailySeries     []SeriesPoint              `json:"dailySeries"`
}

// BuildReport aggregates orders within the window. Revenue only counts Paid
// payments; unpaid and pending amounts are excluded.
func (s *ReportService) BuildReport(ctx context.Context, from, to *time.Time) (*Report, error) {
	orders, err := s.orderRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &Report{
		TotalRevenue:    decimal.Zero,
		StatusCounts:    make(map[string]int64),
		RevenueByMethod: make(map[string]decimal.Decimal),
		OrdersByService: make(map[string]int64),
	}

	monthly := make(map[string]*SeriesPoint)
	daily := make(map[string]*SeriesPoint)

	for i := range orders {
		order := &orders[i]
		report.TotalOrders++
		report.StatusCounts[order.Status.String()]++

		if order.Service != nil {
			report.OrdersByService[order.Service.ServiceName]++
		}

		var paid decimal.Decimal
		for _, payment := range order.Payments {
			if payment.Status != enum.PaymentStatusPaid {
				continue
			}
			paid = paid.Add(payment.Amount)
			method := payment.PaymentMethod.String()
			report.RevenueByMethod[method] = report.RevenueByMethod[method].Add(payment.Amount)
		}
		report.TotalRevenue = report.TotalRevenue.Add(paid)

		monthKey := order.OrderDate.Format("2006-01")
		addToSeries(monthly, monthKey, paid)
		dayKey := order.OrderDate.Format("2006-01-02")
		addToSeries(daily, dayKey, paid)
	}

	now := time.Now()
	report.MonthlySeries = buildSeries(monthly, 12, func(i int) string {
		return now.AddDate(0, -i, 0).Format("2006-01")
	})
	report.DailySeries = buildSeries(daily, 30, func(i int) string {
		return now.AddDate(0, 0, -i).Format("2006-01-02")
	})

	return report, nil
}

func addToSeries(buckets map[string]*SeriesPoint, key string, revenue decimal.Decimal) {
	point, ok := buckets[key]
	if !ok {
		point = &SeriesPoint{Label: key, Revenue: decimal.Zero}
		buckets[key] = point
	}
	point.Orders++
	point.Revenue = point.Revenue.Add(revenue)
}

// buildSeries emits the last n buckets oldest first, filling gaps with zeros
func buildSeries(buckets map[string]*SeriesPoint, n int, labelAt func(i int) string) []SeriesPoint {
	series := make([]SeriesPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		label := labelAt(i)
		if point, ok := buckets[label]; ok {
			series = append(series, *point)
		} else {
			series = append(series, SeriesPoint{Label: label, Revenue: decimal.Zero})
		}
	}
	return series
}
