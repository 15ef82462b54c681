package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// CatalogService manages laundry services and their price history
type CatalogService struct {
	serviceRepo repository.ServiceRepository
	priceRepo   repository.PriceRepository
	pricing     *PricingService
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository, priceRepo repository.PriceRepository, pricing *PricingService) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo, priceRepo: priceRepo, pricing: pricing}
}

// CreateServiceInput represents the create service input
type CreateServiceInput struct {
	ServiceName   string
	Description   *string
	PricePerKg    decimal.Decimal
	EstimatedTime *string
}

// CreateService creates a laundry service with its initial price row
func (s *CatalogService) CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error) {
	if !input.PricePerKg.IsPositive() {
		return nil, apperror.NewBadRequestError("Price per kg must be greater than zero")
	}

	svc := &entity.Service{
		ServiceName:    input.ServiceName,
		Description:    input.Description,
		BasePricePerKg: input.PricePerKg,
		EstimatedTime:  input.EstimatedTime,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	price := &entity.Price{
		ServiceID:     svc.ID,
		PricePerKg:    input.PricePerKg,
		EffectiveDate: time.Now(),
	}
	if err := s.priceRepo.Create(ctx, price); err != nil {
		return nil, err
	}

	svc.Prices = []entity.Price{*price}
	return svc, nil
}

// GetService retrieves a service by ID
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

// ListServices returns all services with their price history
func (s *CatalogService) ListServices(ctx context.Context) ([]entity.Service, error) {
	return s.serviceRepo.List(ctx)
}

// ServiceListing is the public catalog view of a service. Only the price in
// effect right now is exposed, never the full schedule.
type ServiceListing struct {
	ID            uuid.UUID       `json:"id"`
	ServiceName   string          `json:"service_name"`
	Description   *string         `json:"description,omitempty"`
	EstimatedTime *string         `json:"estimated_time,omitempty"`
	PricePerKg    decimal.Decimal `json:"price_per_kg"`
}

// ListPublicServices returns the catalog with each service's effective price,
// falling back to the base price when no price row is in effect yet
func (s *CatalogService) ListPublicServices(ctx context.Context) ([]ServiceListing, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	listings := make([]ServiceListing, 0, len(services))
	for i := range services {
		svc := &services[i]
		price, err := s.pricing.ResolveCurrentPrice(ctx, svc.ID, now, false)
		if err != nil {
			return nil, err
		}
		listings = append(listings, ServiceListing{
			ID:            svc.ID,
			ServiceName:   svc.ServiceName,
			Description:   svc.Description,
			EstimatedTime: svc.EstimatedTime,
			PricePerKg:    price,
		})
	}
	return listings, nil
}

// UpdateServiceInput represents the update service input
type UpdateServiceInput struct {
	ServiceName   *string
	Description   *string
	EstimatedTime *string
}

// UpdateService applies a partial update to a service. Prices are managed
// through SetPrice, not here.
func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, input *UpdateServiceInput) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	if input.ServiceName != nil {
		svc.ServiceName = *input.ServiceName
	}
	if input.Description != nil {
		svc.Description = input.Description
	}
	if input.EstimatedTime != nil {
		svc.EstimatedTime = input.EstimatedTime
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a service and its prices. Services referenced by
// orders cannot be deleted.
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return apperror.NewNotFoundError("Service")
	}

	count, err := s.serviceRepo.CountOrders(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.ErrServiceHasOrders
	}

	return s.serviceRepo.Delete(ctx, id)
}

// SetPriceInput represents the set price input
type SetPriceInput struct {
	ServiceID     uuid.UUID
	PricePerKg    decimal.Decimal
	EffectiveDate *time.Time
	Notes         *string
}

// SetPrice appends a new price row to a service's history. The new price
// takes effect at its effective date; earlier orders keep their totals.
func (s *CatalogService) SetPrice(ctx context.Context, input *SetPriceInput) (*entity.Price, error) {
	if !input.PricePerKg.IsPositive() {
		return nil, apperror.NewBadRequestError("Price per kg must be greater than zero")
	}

	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	effectiveDate := time.Now()
	if input.EffectiveDate != nil {
		effectiveDate = *input.EffectiveDate
	}

	price := &entity.Price{
		ServiceID:     input.ServiceID,
		PricePerKg:    input.PricePerKg,
		EffectiveDate: effectiveDate,
		Notes:         input.Notes,
	}
	if err := s.priceRepo.Create(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// ListPrices returns a service's price history, newest first
func (s *CatalogService) ListPrices(ctx context.Context, serviceID uuid.UUID) ([]entity.Price, error) {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return s.priceRepo.ListByService(ctx, serviceID)
}
