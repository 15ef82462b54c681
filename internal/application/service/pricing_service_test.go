package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceRepoStub struct {
	services map[uuid.UUID]*entity.Service
}

func (s *serviceRepoStub) Create(ctx context.Context, svc *entity.Service) error {
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	s.services[svc.ID] = svc
	return nil
}

func (s *serviceRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return s.services[id], nil
}

func (s *serviceRepoStub) List(ctx context.Context) ([]entity.Service, error) {
	var out []entity.Service
	for _, svc := range s.services {
		out = append(out, *svc)
	}
	return out, nil
}

func (s *serviceRepoStub) Update(ctx context.Context, svc *entity.Service) error {
	s.services[svc.ID] = svc
	return nil
}

func (s *serviceRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.services, id)
	return nil
}

func (s *serviceRepoStub) CountOrders(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

type priceRepoStub struct {
	prices []entity.Price
}

func (s *priceRepoStub) Create(ctx context.Context, price *entity.Price) error {
	if price.ID == uuid.Nil {
		price.ID = uuid.New()
	}
	s.prices = append(s.prices, *price)
	return nil
}

func (s *priceRepoStub) GetCurrent(ctx context.Context, serviceID uuid.UUID, asOf time.Time) (*entity.Price, error) {
	var best *entity.Price
	for i := range s.prices {
		p := &s.prices[i]
		if p.ServiceID != serviceID || p.EffectiveDate.After(asOf) {
			continue
		}
		if best == nil || p.EffectiveDate.After(best.EffectiveDate) {
			best = p
		}
	}
	return best, nil
}

func (s *priceRepoStub) ListByService(ctx context.Context, serviceID uuid.UUID) ([]entity.Price, error) {
	var out []entity.Price
	for _, p := range s.prices {
		if p.ServiceID == serviceID {
			out = append(out, p)
		}
	}
	return out, nil
}

type discountRepoStub struct {
	discounts []entity.Discount
}

func (s *discountRepoStub) Create(ctx context.Context, d *entity.Discount) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	s.discounts = append(s.discounts, *d)
	return nil
}

func (s *discountRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	for i := range s.discounts {
		if s.discounts[i].ID == id {
			return &s.discounts[i], nil
		}
	}
	return nil, nil
}

func (s *discountRepoStub) GetValidByPromoCode(ctx context.Context, code string, asOf time.Time) (*entity.Discount, error) {
	for i := range s.discounts {
		d := &s.discounts[i]
		if d.PromoCode != nil && *d.PromoCode == code && d.IsValidAt(asOf) {
			return d, nil
		}
	}
	return nil, nil
}

func (s *discountRepoStub) List(ctx context.Context) ([]entity.Discount, error) {
	return s.discounts, nil
}

func (s *discountRepoStub) ListValid(ctx context.Context, asOf time.Time) ([]entity.Discount, error) {
	var out []entity.Discount
	for _, d := range s.discounts {
		if d.IsValidAt(asOf) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *discountRepoStub) Update(ctx context.Context, d *entity.Discount) error {
	for i := range s.discounts {
		if s.discounts[i].ID == d.ID {
			s.discounts[i] = *d
		}
	}
	return nil
}

func (s *discountRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range s.discounts {
		if s.discounts[i].ID == id {
			s.discounts = append(s.discounts[:i], s.discounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func newPricingFixture() (*PricingService, *serviceRepoStub, *priceRepoStub, *discountRepoStub) {
	serviceRepo := &serviceRepoStub{services: make(map[uuid.UUID]*entity.Service)}
	priceRepo := &priceRepoStub{}
	discountRepo := &discountRepoStub{}
	return NewPricingService(serviceRepo, priceRepo, discountRepo), serviceRepo, priceRepo, discountRepo
}

func seedService(t *testing.T, serviceRepo *serviceRepoStub, priceRepo *priceRepoStub, pricePerKg float64, effectiveDate time.Time) uuid.UUID {
	t.Helper()

	svc := &entity.Service{
		ServiceName:    "Cuci Regular",
		BasePricePerKg: decimal.NewFromFloat(pricePerKg),
	}
	require.NoError(t, serviceRepo.Create(context.Background(), svc))
	require.NoError(t, priceRepo.Create(context.Background(), &entity.Price{
		ServiceID:     svc.ID,
		PricePerKg:    decimal.NewFromFloat(pricePerKg),
		EffectiveDate: effectiveDate,
	}))
	return svc.ID
}

func seedPromo(t *testing.T, discountRepo *discountRepoStub, code string, percent float64, from, to time.Time, active bool) {
	t.Helper()

	require.NoError(t, discountRepo.Create(context.Background(), &entity.Discount{
		Title:           "Promo " + code,
		DiscountPercent: decimal.NewFromFloat(percent),
		PromoCode:       &code,
		StartDate:       from,
		EndDate:         to,
		IsActive:        active,
	}))
}

func TestResolveCurrentPrice_LatestEffectiveWins(t *testing.T) {
	svc, serviceRepo, priceRepo, _ := newPricingFixture()
	now := time.Now()

	serviceID := seedService(t, serviceRepo, priceRepo, 8000, now.AddDate(0, 0, -30))
	require.NoError(t, priceRepo.Create(context.Background(), &entity.Price{
		ServiceID:     serviceID,
		PricePerKg:    decimal.NewFromInt(9000),
		EffectiveDate: now.AddDate(0, 0, -7),
	}))
	// Future price must not apply yet
	require.NoError(t, priceRepo.Create(context.Background(), &entity.Price{
		ServiceID:     serviceID,
		PricePerKg:    decimal.NewFromInt(12000),
		EffectiveDate: now.AddDate(0, 0, 7),
	}))

	price, err := svc.ResolveCurrentPrice(context.Background(), serviceID, now, true)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(9000)), "got %s", price)
}

func TestResolveCurrentPrice_StrictFailsWithoutPrice(t *testing.T) {
	svc, serviceRepo, _, _ := newPricingFixture()

	bare := &entity.Service{ServiceName: "Dry Clean", BasePricePerKg: decimal.NewFromInt(25000)}
	require.NoError(t, serviceRepo.Create(context.Background(), bare))

	_, err := svc.ResolveCurrentPrice(context.Background(), bare.ID, time.Now(), true)
	assert.ErrorIs(t, err, apperror.ErrNoPriceConfigured)
}

func TestResolveCurrentPrice_LenientFallsBackToBasePrice(t *testing.T) {
	svc, serviceRepo, _, _ := newPricingFixture()

	bare := &entity.Service{ServiceName: "Dry Clean", BasePricePerKg: decimal.NewFromInt(25000)}
	require.NoError(t, serviceRepo.Create(context.Background(), bare))

	price, err := svc.ResolveCurrentPrice(context.Background(), bare.ID, time.Now(), false)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(25000)), "got %s", price)
}

func TestValidatePromoCode_NormalizesCase(t *testing.T) {
	svc, _, _, discountRepo := newPricingFixture()
	now := time.Now()
	seedPromo(t, discountRepo, "HARIINI", 20, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1), true)

	discount, err := svc.ValidatePromoCode(context.Background(), "  hariini ", now)
	require.NoError(t, err)
	assert.Equal(t, "HARIINI", *discount.PromoCode)
}

func TestValidatePromoCode_FailureShapesCollapse(t *testing.T) {
	svc, _, _, discountRepo := newPricingFixture()
	now := time.Now()

	seedPromo(t, discountRepo, "EXPIRED", 10, now.AddDate(0, 0, -10), now.AddDate(0, 0, -1), true)
	seedPromo(t, discountRepo, "NOTYET", 10, now.AddDate(0, 0, 1), now.AddDate(0, 0, 10), true)
	seedPromo(t, discountRepo, "DISABLED", 10, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1), false)

	for _, code := range []string{"UNKNOWN", "EXPIRED", "NOTYET", "DISABLED", ""} {
		_, err := svc.ValidatePromoCode(context.Background(), code, now)
		assert.ErrorIs(t, err, apperror.ErrInvalidPromoCode, "code %q", code)
	}
}

func TestComputeOrderTotal_WeightTimesPrice(t *testing.T) {
	svc, serviceRepo, priceRepo, _ := newPricingFixture()
	now := time.Now()
	serviceID := seedService(t, serviceRepo, priceRepo, 8000, now.AddDate(0, 0, -1))

	quote, err := svc.ComputeOrderTotal(context.Background(), &ComputeTotalInput{
		ServiceID: serviceID,
		Weight:    decimal.NewFromInt(3),
		AsOf:      now,
	})
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(24000)), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(24000)), "total %s", quote.Total)
	assert.True(t, quote.DiscountAmount.IsZero())
	assert.Nil(t, quote.Discount)
}

func TestComputeOrderTotal_AppliesPercentDiscount(t *testing.T) {
	svc, serviceRepo, priceRepo, discountRepo := newPricingFixture()
	now := time.Now()
	serviceID := seedService(t, serviceRepo, priceRepo, 8000, now.AddDate(0, 0, -1))
	seedPromo(t, discountRepo, "HARIINI", 20, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1), true)

	quote, err := svc.ComputeOrderTotal(context.Background(), &ComputeTotalInput{
		ServiceID: serviceID,
		Weight:    decimal.NewFromInt(3),
		PromoCode: "HARIINI",
		AsOf:      now,
	})
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(24000)), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.DiscountAmount.Equal(decimal.NewFromInt(4800)), "discount %s", quote.DiscountAmount)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(19200)), "total %s", quote.Total)
	require.NotNil(t, quote.Discount)
}

func TestComputeOrderTotal_InvalidPromoIsNonBlocking(t *testing.T) {
	svc, serviceRepo, priceRepo, _ := newPricingFixture()
	now := time.Now()
	serviceID := seedService(t, serviceRepo, priceRepo, 8000, now.AddDate(0, 0, -1))

	quote, err := svc.ComputeOrderTotal(context.Background(), &ComputeTotalInput{
		ServiceID: serviceID,
		Weight:    decimal.NewFromInt(3),
		PromoCode: "NOSUCHCODE",
		AsOf:      now,
	})
	require.NoError(t, err)

	assert.True(t, quote.Total.Equal(decimal.NewFromInt(24000)), "total %s", quote.Total)
	assert.Nil(t, quote.Discount)
	assert.True(t, quote.DiscountAmount.IsZero())
}

func TestComputeOrderTotal_RejectsNonPositiveWeight(t *testing.T) {
	svc, serviceRepo, priceRepo, _ := newPricingFixture()
	now := time.Now()
	serviceID := seedService(t, serviceRepo, priceRepo, 8000, now.AddDate(0, 0, -1))

	for _, weight := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-2)} {
		_, err := svc.ComputeOrderTotal(context.Background(), &ComputeTotalInput{
			ServiceID: serviceID,
			Weight:    weight,
			AsOf:      now,
		})
		assert.ErrorIs(t, err, apperror.ErrInvalidWeight, "weight %s", weight)
	}
}

func TestComputeOrderTotal_FractionalWeight(t *testing.T) {
	svc, serviceRepo, priceRepo, _ := newPricingFixture()
	now := time.Now()
	serviceID := seedService(t, serviceRepo, priceRepo, 8000, now.AddDate(0, 0, -1))

	quote, err := svc.ComputeOrderTotal(context.Background(), &ComputeTotalInput{
		ServiceID: serviceID,
		Weight:    decimal.RequireFromString("2.5"),
		AsOf:      now,
	})
	require.NoError(t, err)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(20000)), "total %s", quote.Total)
}
