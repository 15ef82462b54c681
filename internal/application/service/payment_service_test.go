package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/laundrypro/laundry-api/pkg/apperror"
)

type paymentFixture struct {
	svc         *PaymentService
	orderRepo   *orderRepoStub
	paymentRepo *paymentRepoStub
	orderID     uuid.UUID
	paymentID   uuid.UUID
}

func newPaymentFixture(t *testing.T, status enum.PaymentStatus) *paymentFixture {
	t.Helper()

	orderRepo := &orderRepoStub{}
	paymentRepo := &paymentRepoStub{}

	order := &entity.Order{
		InvoiceNumber: "INV-TEST0001",
		Status:        enum.OrderStatusPending,
		Weight:        decimal.NewFromInt(3),
		TotalCost:     decimal.NewFromInt(24000),
		OrderDate:     time.Now(),
	}
	require.NoError(t, orderRepo.Create(context.Background(), order))

	payment := &entity.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalCost,
		Status:        status,
		PaymentMethod: enum.PaymentMethodCash,
	}
	require.NoError(t, paymentRepo.Create(context.Background(), payment))

	return &paymentFixture{
		svc:         NewPaymentService(paymentRepo, orderRepo),
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		orderID:     order.ID,
		paymentID:   payment.ID,
	}
}

func TestPaymentService_UpdatePayment_MarkPaidStampsDate(t *testing.T) {
	f := newPaymentFixture(t, enum.PaymentStatusUnpaid)

	status := enum.PaymentStatusPaid
	updated, err := f.svc.UpdatePayment(context.Background(), f.paymentID, &UpdatePaymentInput{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPaid, updated.Status)
	require.NotNil(t, updated.PaymentDate)
	assert.WithinDuration(t, time.Now(), *updated.PaymentDate, time.Minute)

	stored, err := f.paymentRepo.GetByID(context.Background(), f.paymentID)
	require.NoError(t, err)
	assert.NotNil(t, stored.PaymentDate)
}

func TestPaymentService_UpdatePayment_LeavingPaidClearsDate(t *testing.T) {
	f := newPaymentFixture(t, enum.PaymentStatusPaid)

	paidAt := time.Now().AddDate(0, 0, -1)
	f.paymentRepo.payments[0].PaymentDate = &paidAt

	status := enum.PaymentStatusUnpaid
	updated, err := f.svc.UpdatePayment(context.Background(), f.paymentID, &UpdatePaymentInput{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusUnpaid, updated.Status)
	assert.Nil(t, updated.PaymentDate)
}

func TestPaymentService_UpdatePayment_ChangesMethodAndNotes(t *testing.T) {
	f := newPaymentFixture(t, enum.PaymentStatusUnpaid)

	method := enum.PaymentMethodQRIS
	notes := "paid via QRIS at pickup"
	updated, err := f.svc.UpdatePayment(context.Background(), f.paymentID, &UpdatePaymentInput{Method: &method, Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentMethodQRIS, updated.PaymentMethod)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
	assert.Equal(t, enum.PaymentStatusUnpaid, updated.Status)
}

func TestPaymentService_UpdatePayment_NotFound(t *testing.T) {
	f := newPaymentFixture(t, enum.PaymentStatusUnpaid)

	status := enum.PaymentStatusPaid
	_, err := f.svc.UpdatePayment(context.Background(), uuid.New(), &UpdatePaymentInput{Status: &status})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestPaymentService_AttachProof_MovesUnpaidToPendingConfirmation(t *testing.T) {
	f := newPaymentFixture(t, enum.PaymentStatusUnpaid)

	updated, err := f.svc.AttachProof(context.Background(), f.orderID, "uploads/proof-abc.jpg")
	require.NoError(t, err)

	require.NotNil(t, updated.PaymentProof)
	assert.Equal(t, "uploads/proof-abc.jpg", *updated.PaymentProof)
	assert.Equal(t, enum.PaymentStatusPendingConfirmation, updated.Status)
}

func TestPaymentService_AttachProof_KeepsPaidStatus(t *testing.T) {
	f := newPaymentFixture(t, enum.PaymentStatusPaid)

	updated, err := f.svc.AttachProof(context.Background(), f.orderID, "uploads/proof-late.jpg")
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPaid, updated.Status)
	require.NotNil(t, updated.PaymentProof)
}

func TestPaymentService_AttachProof_UnknownOrder(t *testing.T) {
	f := newPaymentFixture(t, enum.PaymentStatusUnpaid)

	_, err := f.svc.AttachProof(context.Background(), uuid.New(), "uploads/proof.jpg")
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}
