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

// PricingService resolves effective prices, validates promo codes and
// computes order totals
type PricingService struct {
	serviceRepo  repository.ServiceRepository
	priceRepo    repository.PriceRepository
	discountRepo repository.DiscountRepository
}

// NewPricingService creates a new pricing service
func NewPricingService(
	serviceRepo repository.ServiceRepository,
	priceRepo repository.PriceRepository,
	discountRepo repository.DiscountRepository,
) *PricingService {
	return &PricingService{
		serviceRepo:  serviceRepo,
		priceRepo:    priceRepo,
		discountRepo: discountRepo,
	}
}

// Quote is the result of a total computation with its full breakdown
type Quote struct {
	ServiceID       uuid.UUID        `json:"service_id"`
	PricePerKg      decimal.Decimal  `json:"price_per_kg"`
	Weight          decimal.Decimal  `json:"weight"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	DiscountAmount  decimal.Decimal  `json:"discount_amount"`
	Total           decimal.Decimal  `json:"total"`
	Discount        *entity.Discount `json:"discount,omitempty"`
}

// ResolveCurrentPrice returns the price per kg in effect for a service at the
// given instant. The newest price whose effective date is not after asOf wins.
// When no price row exists, strict mode fails and lenient mode falls back to
// the service's base price.
func (s *PricingService) ResolveCurrentPrice(ctx context.Context, serviceID uuid.UUID, asOf time.Time, strict bool) (decimal.Decimal, error) {
	price, err := s.priceRepo.GetCurrent(ctx, serviceID, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	if price != nil {
		return price.PricePerKg, nil
	}

	if strict {
		return decimal.Zero, apperror.ErrNoPriceConfigured
	}

	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return decimal.Zero, err
	}
	if svc == nil {
		return decimal.Zero, apperror.NewNotFoundError("Service")
	}
	return svc.BasePricePerKg, nil
}

// ValidatePromoCode resolves a promo code to its discount. Codes are matched
// case-insensitively. Any failure shape (unknown, inactive, outside its date
// window) collapses into the same error.
func (s *PricingService) ValidatePromoCode(ctx context.Context, code string, asOf time.Time) (*entity.Discount, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, apperror.ErrInvalidPromoCode
	}

	discount, err := s.discountRepo.GetValidByPromoCode(ctx, normalized, asOf)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.ErrInvalidPromoCode
	}
	return discount, nil
}

// ComputeTotalInput carries the parameters of a total computation
type ComputeTotalInput struct {
	ServiceID uuid.UUID
	Weight    decimal.Decimal
	PromoCode string
	AsOf      time.Time
}

// ComputeOrderTotal prices an order: weight times the effective price per kg,
// minus the percentage discount of a valid promo code. An invalid promo code
// does not fail the computation; the quote simply carries no discount.
func (s *PricingService) ComputeOrderTotal(ctx context.Context, input *ComputeTotalInput) (*Quote, error) {
	if !input.Weight.IsPositive() {
		return nil, apperror.ErrInvalidWeight
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	pricePerKg, err := s.ResolveCurrentPrice(ctx, input.ServiceID, asOf, true)
	if err != nil {
		return nil, err
	}

	subtotal := input.Weight.Mul(pricePerKg)

	quote := &Quote{
		ServiceID:      input.ServiceID,
		PricePerKg:     pricePerKg,
		Weight:         input.Weight,
		Subtotal:       subtotal,
		DiscountAmount: decimal.Zero,
		Total:          subtotal,
	}

	if input.PromoCode != "" {
		discount, err := s.ValidatePromoCode(ctx, input.PromoCode, asOf)
		if err != nil {
			if err == apperror.ErrInvalidPromoCode {
				return quote, nil
			}
			return nil, err
		}

		percent := discount.DiscountPercent
		quote.Discount = discount
		quote.DiscountPercent = &percent
		quote.DiscountAmount = subtotal.Mul(percent).Div(decimal.NewFromInt(100))
		quote.Total = subtotal.Sub(quote.DiscountAmount)
	}

	return quote, nil
}
