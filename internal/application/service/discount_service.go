package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// DiscountService manages promotional discounts
type DiscountService struct {
	discountRepo repository.DiscountRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(discountRepo repository.DiscountRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

// CreateDiscountInput represents the create discount input
type CreateDiscountInput struct {
	Title           string
	Description     *string
	DiscountPercent decimal.Decimal
	PromoCode       *string
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
	Image           *string
	BannerImage     *string
}

func validateDiscountPercent(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewBadRequestError("Discount percent must be between 0 and 100")
	}
	return nil
}

// CreateDiscount creates a new discount. Promo codes are stored uppercase.
func (s *DiscountService) CreateDiscount(ctx context.Context, input *CreateDiscountInput) (*entity.Discount, error) {
	if err := validateDiscountPercent(input.DiscountPercent); err != nil {
		return nil, err
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, apperror.NewBadRequestError("End date must not be before start date")
	}

	discount := &entity.Discount{
		Title:           input.Title,
		Description:     input.Description,
		DiscountPercent: input.DiscountPercent,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		IsActive:        input.IsActive,
		Image:           input.Image,
		BannerImage:     input.BannerImage,
	}
	if input.PromoCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*input.PromoCode))
		if code != "" {
			discount.PromoCode = &code
		}
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// GetDiscount retrieves a discount by ID
func (s *DiscountService) GetDiscount(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}
	return discount, nil
}

// ListDiscounts returns all discounts
func (s *DiscountService) ListDiscounts(ctx context.Context) ([]entity.Discount, error) {
	return s.discountRepo.List(ctx)
}

// ListActiveDiscounts returns discounts currently valid for display
func (s *DiscountService) ListActiveDiscounts(ctx context.Context) ([]entity.Discount, error) {
	return s.discountRepo.ListValid(ctx, time.Now())
}

// UpdateDiscountInput represents the update discount input
type UpdateDiscountInput struct {
	Title           *string
	Description     *string
	DiscountPercent *decimal.Decimal
	PromoCode       *string
	StartDate       *time.Time
	EndDate         *time.Time
	IsActive        *bool
	Image           *string
	BannerImage     *string
}

// UpdateDiscount applies a partial update to a discount
func (s *DiscountService) UpdateDiscount(ctx context.Context, id uuid.UUID, input *UpdateDiscountInput) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}

	if input.Title != nil {
		discount.Title = *input.Title
	}
	if input.Description != nil {
		discount.Description = input.Description
	}
	if input.DiscountPercent != nil {
		if err := validateDiscountPercent(*input.DiscountPercent); err != nil {
			return nil, err
		}
		discount.DiscountPercent = *input.DiscountPercent
	}
	if input.PromoCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*input.PromoCode))
		if code == "" {
			discount.PromoCode = nil
		} else {
			discount.PromoCode = &code
		}
	}
	if input.StartDate != nil {
		discount.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		discount.EndDate = *input.EndDate
	}
	if discount.EndDate.Before(discount.StartDate) {
		return nil, apperror.NewBadRequestError("End date must not be before start date")
	}
	if input.IsActive != nil {
		discount.IsActive = *input.IsActive
	}
	if input.Image != nil {
		discount.Image = input.Image
	}
	if input.BannerImage != nil {
		discount.BannerImage = input.BannerImage
	}

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// DeleteDiscount removes a discount
func (s *DiscountService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if discount == nil {
		return apperror.NewNotFoundError("Discount")
	}
	return s.discountRepo.Delete(ctx, id)
}
