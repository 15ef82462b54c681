package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
	domainRepo "github.com/laundrypro/laundry-api/internal/domain/repository"
	"gorm.io/gorm"
)

type retentionRepository struct {
	db *gorm.DB
}

// NewRetentionRepository creates a new retention repository
func NewRetentionRepository(db *gorm.DB) domainRepo.RetentionRepository {
	return &retentionRepository{db: db}
}

func (r *retentionRepository) Transaction(ctx context.Context, fn func(domainRepo.RetentionRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&retentionRepository{db: tx})
	})
}

// applyDateFilter adds the filter's date predicates against the given column
func applyDateFilter(query *gorm.DB, column string, filter *domainRepo.RetentionFilter) *gorm.DB {
	if filter.Before != nil {
		query = query.Where(column+" < ?", *filter.Before)
	}
	if filter.From != nil {
		query = query.Where(column+" >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where(column+" <= ?", *filter.To)
	}
	return query
}

func (r *retentionRepository) FindOrderIDs(ctx context.Context, filter *domainRepo.RetentionFilter) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	query = applyDateFilter(query, "order_date", filter)
	if filter.OrderStatus != nil {
		query = query.Where("status = ?", *filter.OrderStatus)
	}

	err := query.Pluck("id", &ids).Error
	return ids, err
}

func (r *retentionRepository) DeletePaymentsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Delete(&entity.Payment{})
	return result.RowsAffected, result.Error
}

func (r *retentionRepository) DeleteOrdersByIDs(ctx context.Context, orderIDs []uuid.UUID) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", orderIDs).Delete(&entity.Order{})
	return result.RowsAffected, result.Error
}

func (r *retentionRepository) DeletePayments(ctx context.Context, filter *domainRepo.RetentionFilter) (int64, error) {
	query := r.db.WithContext(ctx)
	query = applyDateFilter(query, "created_at", filter)
	if filter.PaymentStatus != nil {
		query = query.Where("status = ?", *filter.PaymentStatus)
	}

	result := query.Where("1 = 1").Delete(&entity.Payment{})
	return result.RowsAffected, result.Error
}

func (r *retentionRepository) DeleteCustomersWithoutOrders(ctx context.Context, filter *domainRepo.RetentionFilter) (int64, error) {
	query := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM orders WHERE orders.customer_id = customers.id)")
	query = applyDateFilter(query, "created_at", filter)

	result := query.Delete(&entity.Customer{})
	return result.RowsAffected, result.Error
}

func deleteAll(db *gorm.DB, model interface{}) (int64, error) {
	result := db.Where("1 = 1").Delete(model)
	return result.RowsAffected, result.Error
}

func (r *retentionRepository) DeleteAllPayments(ctx context.Context) (int64, error) {
	return deleteAll(r.db.WithContext(ctx), &entity.Payment{})
}

func (r *retentionRepository) DeleteAllOrders(ctx context.Context) (int64, error) {
	return deleteAll(r.db.WithContext(ctx), &entity.Order{})
}

func (r *retentionRepository) DeleteAllPrices(ctx context.Context) (int64, error) {
	return deleteAll(r.db.WithContext(ctx), &entity.Price{})
}

func (r *retentionRepository) DeleteAllServices(ctx context.Context) (int64, error) {
	return deleteAll(r.db.WithContext(ctx), &entity.Service{})
}

func (r *retentionRepository) DeleteAllCustomers(ctx context.Context) (int64, error) {
	return deleteAll(r.db.WithContext(ctx), &entity.Customer{})
}

func (r *retentionRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *retentionRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

func (r *retentionRepository) CountPayments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Payment{}).Count(&count).Error
	return count, err
}

func (r *retentionRepository) CountOrdersBefore(ctx context.Context, t time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("order_date < ?", t).
		Count(&count).Error
	return count, err
}

func (r *retentionRepository) CountOrdersByStatus(ctx context.Context, status enum.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *retentionRepository) CountPaymentsByStatus(ctx context.Context, status enum.PaymentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Payment{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
