package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
	domainRepo "github.com/laundrypro/laundry-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// orderSortColumns are the columns list queries may be ordered by
var orderSortColumns = map[string]struct{}{
	"order_date":     {},
	"created_at":     {},
	"invoice_number": {},
	"status":         {},
	"total_cost":     {},
	"weight":         {},
}

// orderSortClause builds the ORDER BY expression from caller input. Anything
// outside the column allowlist falls back to the default ordering.
func orderSortClause(sortBy, sortOrder string) string {
	column := "order_date"
	if _, ok := orderSortColumns[sortBy]; ok {
		column = sortBy
	}
	direction := "DESC"
	if sortOrder == "ASC" || sortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// detailPreloads attaches customer, service and payments to an order query
func detailPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Service").
		Preload("Service.Prices", func(db *gorm.DB) *gorm.DB {
			return db.Order("effective_date DESC")
		}).
		Preload("Payments")
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := detailPreloads(r.db.WithContext(ctx)).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) FindByInvoiceOrPhone(ctx context.Context, number string) (*entity.Order, error) {
	var order entity.Order
	err := detailPreloads(r.db.WithContext(ctx)).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.invoice_number = ? OR customers.phone = ?", number, number).
		Order("orders.order_date DESC").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) ListByCustomerPhone(ctx context.Context, phone string) ([]entity.Order, error) {
	var orders []entity.Order
	err := detailPreloads(r.db.WithContext(ctx)).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("customers.phone = ?", phone).
		Order("orders.order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Search != "" {
		query = query.Where("invoice_number ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StartDate != nil {
		query = query.Where("order_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("order_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Service").
		Preload("Payments").
		Order(orderSortClause(params.SortBy, params.SortOrder)).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Order("order_date DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListBetween(ctx context.Context, from, to *time.Time) ([]entity.Order, error) {
	var orders []entity.Order

	query := detailPreloads(r.db.WithContext(ctx))
	if from != nil {
		query = query.Where("order_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("order_date <= ?", *to)
	}

	err := query.Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}
