package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats holds the headline numbers for the admin dashboard
type DashboardStats struct {
	TotalOrdersToday int64           `json:"totalOrdersToday"`
	TotalCustomers   int64           `json:"totalCustomers"`
	MonthlyRevenue   decimal.Decimal `json:"monthlyRevenue"`
	CompletedOrders  int64           `json:"completedOrders"`
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// CountOrdersSince returns the number of orders placed at or after t
	CountOrdersSince(ctx context.Context, t time.Time) (int64, error)

	// CountCustomers returns the total customer count
	CountCustomers(ctx context.Context) (int64, error)

	// SumPaidRevenueSince returns the sum of Paid payment amounts with a
	// payment date at or after t
	SumPaidRevenueSince(ctx context.Context, t time.Time) (decimal.Decimal, error)

	// CountCompletedOrders returns the number of Completed orders
	CountCompletedOrders(ctx context.Context) (int64, error)
}
