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

type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *gorm.DB) domainRepo.DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *discountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	var discount entity.Discount
	err := r.db.WithContext(ctx).First(&discount, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &discount, err
}

func (r *discountRepository) GetValidByPromoCode(ctx context.Context, code string, asOf time.Time) (*entity.Discount, error) {
	var discount entity.Discount
	err := r.db.WithContext(ctx).
		Where("promo_code = ? AND is_active = ? AND start_date <= ? AND end_date >= ?",
			code, true, asOf, asOf).
		First(&discount).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &discount, err
}

func (r *discountRepository) List(ctx context.Context) ([]entity.Discount, error) {
	var discounts []entity.Discount
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&discounts).Error
	return discounts, err
}

func (r *discountRepository) ListValid(ctx context.Context, asOf time.Time) ([]entity.Discount, error) {
	var discounts []entity.Discount
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, asOf, asOf).
		Order("created_at DESC").
		Find(&discounts).Error
	return discounts, err
}

func (r *discountRepository) Update(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Save(discount).Error
}

func (r *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Discount{}, "id = ?", id).Error
}
