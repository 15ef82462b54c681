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

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) domainRepo.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) List(ctx context.Context) ([]entity.Service, error) {
	var services []entity.Service
	err := r.db.WithContext(ctx).
		Preload("Prices", func(db *gorm.DB) *gorm.DB {
			return db.Order("effective_date DESC")
		}).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Prices go first so the FK is never violated
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&entity.Price{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Service{}, "id = ?", id).Error
	})
}

func (r *serviceRepository) CountOrders(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("service_id = ?", id).
		Count(&count).Error
	return count, err
}

type priceRepository struct {
	db *gorm.DB
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *gorm.DB) domainRepo.PriceRepository {
	return &priceRepository{db: db}
}

func (r *priceRepository) Create(ctx context.Context, price *entity.Price) error {
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *priceRepository) GetCurrent(ctx context.Context, serviceID uuid.UUID, asOf time.Time) (*entity.Price, error) {
	var price entity.Price
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND effective_date <= ?", serviceID, asOf).
		Order("effective_date DESC").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &price, err
}

func (r *priceRepository) ListByService(ctx context.Context, serviceID uuid.UUID) ([]entity.Price, error) {
	var prices []entity.Price
	err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("effective_date DESC").
		Find(&prices).Error
	return prices, err
}
