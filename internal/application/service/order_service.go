package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/pkg/apperror"
	"github.com/laundrypro/laundry-api/pkg/pagination"
	"github.com/laundrypro/laundry-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// OrderService handles order intake and lifecycle
type OrderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	serviceRepo  repository.ServiceRepository
	paymentRepo  repository.PaymentRepository
	pricing      *PricingService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRepository,
	paymentRepo repository.PaymentRepository,
	pricing *PricingService,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		paymentRepo:  paymentRepo,
		pricing:      pricing,
	}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	ServiceID     uuid.UUID
	Weight        decimal.Decimal
	PromoCode     string
	PaymentMethod enum.PaymentMethod
	PickupDate    *time.Time
	Notes         *string
}

// AppliedDiscount describes the discount an order was created with
type AppliedDiscount struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
}

// CreateOrderResult is the created order together with its price breakdown
type CreateOrderResult struct {
	Order           *entity.Order    `json:"order"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	DiscountAmount  decimal.Decimal  `json:"discount_amount"`
	Total           decimal.Decimal  `json:"total"`
	AppliedDiscount *AppliedDiscount `json:"applied_discount,omitempty"`
}

// CreateOrder places a new order. The customer is found by email or created,
// the total is computed server side from the effective price and promo code,
// and an unpaid payment record is opened alongside the order.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderResult, error) {
	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	now := time.Now()
	quote, err := s.pricing.ComputeOrderTotal(ctx, &ComputeTotalInput{
		ServiceID: input.ServiceID,
		Weight:    input.Weight,
		PromoCode: input.PromoCode,
		AsOf:      now,
	})
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		customer = &entity.Customer{
			Name:    input.CustomerName,
			Email:   input.Email,
			Phone:   input.Phone,
			Address: input.Address,
		}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			return nil, err
		}
	}

	order := &entity.Order{
		CustomerID:    customer.ID,
		ServiceID:     svc.ID,
		Weight:        input.Weight,
		TotalCost:     quote.Total,
		InvoiceNumber: utils.GenerateInvoiceNumber(),
		Status:        enum.OrderStatusPending,
		OrderDate:     now,
		PickupDate:    input.PickupDate,
		Notes:         input.Notes,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		OrderID:       order.ID,
		PaymentMethod: input.PaymentMethod,
		Amount:        quote.Total,
		Status:        enum.PaymentStatusUnpaid,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	order.Customer = customer
	order.Service = svc
	order.Payments = []entity.Payment{*payment}

	result := &CreateOrderResult{
		Order:          order,
		Subtotal:       quote.Subtotal,
		DiscountAmount: quote.DiscountAmount,
		Total:          quote.Total,
	}
	if quote.Discount != nil {
		result.AppliedDiscount = &AppliedDiscount{
			ID:              quote.Discount.ID,
			Title:           quote.Discount.Title,
			DiscountPercent: quote.Discount.DiscountPercent,
			DiscountAmount:  quote.DiscountAmount,
		}
	}
	return result, nil
}

// GetOrder retrieves an order with its customer, service and payments
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// TrackOrder finds an order by invoice number or customer phone number
func (s *OrderService) TrackOrder(ctx context.Context, number string) (*entity.Order, error) {
	if number == "" {
		return nil, apperror.NewBadRequestError("Invoice number or phone number is required")
	}

	order, err := s.orderRepo.FindByInvoiceOrPhone(ctx, number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// OrderHistory returns all orders placed under a phone number, newest first
func (s *OrderService) OrderHistory(ctx context.Context, phone string) ([]entity.Order, error) {
	if phone == "" {
		return nil, apperror.NewBadRequestError("Phone number is required")
	}
	return s.orderRepo.ListByCustomerPhone(ctx, phone)
}

// ListOrders lists orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateOrderInput represents the update order input
type UpdateOrderInput struct {
	Status       *enum.OrderStatus
	PickupDate   *time.Time
	DeliveryDate *time.Time
	Notes        *string
}

// UpdateOrder applies a partial update to an order
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid order status")
		}
		order.Status = *input.Status
	}
	if input.PickupDate != nil {
		order.PickupDate = input.PickupDate
	}
	if input.DeliveryDate != nil {
		order.DeliveryDate = input.DeliveryDate
	}
	if input.Notes != nil {
		order.Notes = input.Notes
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetWithDetails(ctx, id)
}

// UpdateOrderStatus moves an order to a new status
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid order status")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	order.Status = status
	now := time.Now()
	switch status {
	case enum.OrderStatusInProcess:
		if order.PickupDate == nil {
			order.PickupDate = &now
		}
	case enum.OrderStatusCompleted:
		if order.DeliveryDate == nil {
			order.DeliveryDate = &now
		}
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetWithDetails(ctx, id)
}
