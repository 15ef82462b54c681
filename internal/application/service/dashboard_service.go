package service

import (
	"context"
	"time"

	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
)

// DashboardService aggregates the admin dashboard numbers
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	orderRepo     repository.OrderRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, orderRepo repository.OrderRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo, orderRepo: orderRepo}
}

// GetStats returns today's order count, total customers, revenue collected
// this month and the completed order count
func (s *DashboardService) GetStats(ctx context.Context) (*repository.DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &repository.DashboardStats{}

	var err error
	if stats.TotalOrdersToday, err = s.analyticsRepo.CountOrdersSince(ctx, startOfDay); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.analyticsRepo.CountCustomers(ctx); err != nil {
		return nil, err
	}
	if stats.MonthlyRevenue, err = s.analyticsRepo.SumPaidRevenueSince(ctx, startOfMonth); err != nil {
		return nil, err
	}
	if stats.CompletedOrders, err = s.analyticsRepo.CountCompletedOrders(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// RecentOrders returns the latest orders for the dashboard table
func (s *DashboardService) RecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	return s.orderRepo.ListRecent(ctx, limit)
}
