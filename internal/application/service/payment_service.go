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
)

// PaymentService handles payment confirmation and proof uploads
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPayments lists payments with filtering and pagination
func (s *PaymentService) ListPayments(ctx context.Context, params *repository.PaymentFilterParams) (*pagination.PaginatedResult[entity.Payment], error) {
	payments, total, err := s.paymentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(payments, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdatePaymentInput represents the update payment input
type UpdatePaymentInput struct {
	Status *enum.PaymentStatus
	Method *enum.PaymentMethod
	Notes  *string
}

// UpdatePayment applies a partial update to a payment. Moving to Paid stamps
// the payment date; moving away from Paid clears it.
func (s *PaymentService) UpdatePayment(ctx context.Context, id uuid.UUID, input *UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment status")
		}
		payment.Status = *input.Status
		if *input.Status == enum.PaymentStatusPaid {
			now := time.Now()
			payment.PaymentDate = &now
		} else {
			payment.PaymentDate = nil
		}
	}
	if input.Method != nil {
		if !input.Method.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment method")
		}
		payment.PaymentMethod = *input.Method
	}
	if input.Notes != nil {
		payment.Notes = input.Notes
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// AttachProof stores the path of an uploaded payment proof against an order's
// payment and moves it to pending confirmation for admin review
func (s *PaymentService) AttachProof(ctx context.Context, orderID uuid.UUID, proofPath string) (*entity.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	payment, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	payment.PaymentProof = &proofPath
	if payment.Status == enum.PaymentStatusUnpaid {
		payment.Status = enum.PaymentStatusPendingConfirmation
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}
