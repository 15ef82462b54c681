package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/internal/domain/enum"
	"github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/pkg/apperror"
	"github.com/laundrypro/laundry-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerRepoStub struct {
	customers []entity.Customer
}

func (s *customerRepoStub) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.customers = append(s.customers, *c)
	return nil
}

func (s *customerRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return &s.customers[i], nil
		}
	}
	return nil, nil
}

func (s *customerRepoStub) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	for i := range s.customers {
		if s.customers[i].Email == email {
			return &s.customers[i], nil
		}
	}
	return nil, nil
}

func (s *customerRepoStub) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return s.customers, int64(len(s.customers)), nil
}

func (s *customerRepoStub) Update(ctx context.Context, c *entity.Customer) error { return nil }
func (s *customerRepoStub) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (s *customerRepoStub) CountOrders(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

type orderRepoStub struct {
	orders []entity.Order
}

func (s *orderRepoStub) Create(ctx context.Context, o *entity.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	s.orders = append(s.orders, *o)
	return nil
}

func (s *orderRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i], nil
		}
	}
	return nil, nil
}

func (s *orderRepoStub) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.GetByID(ctx, id)
}

func (s *orderRepoStub) FindByInvoiceOrPhone(ctx context.Context, number string) (*entity.Order, error) {
	for i := range s.orders {
		if s.orders[i].InvoiceNumber == number {
			return &s.orders[i], nil
		}
	}
	return nil, nil
}

func (s *orderRepoStub) ListByCustomerPhone(ctx context.Context, phone string) ([]entity.Order, error) {
	return nil, nil
}

func (s *orderRepoStub) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orders, int64(len(s.orders)), nil
}

func (s *orderRepoStub) ListRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	return s.orders, nil
}

func (s *orderRepoStub) ListBetween(ctx context.Context, from, to *time.Time) ([]entity.Order, error) {
	return s.orders, nil
}

func (s *orderRepoStub) Update(ctx context.Context, o *entity.Order) error {
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = *o
		}
	}
	return nil
}

type paymentRepoStub struct {
	payments []entity.Payment
}

func (s *paymentRepoStub) Create(ctx context.Context, p *entity.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.payments = append(s.payments, *p)
	return nil
}

func (s *paymentRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	for i := range s.payments {
		if s.payments[i].ID == id {
			return &s.payments[i], nil
		}
	}
	return nil, nil
}

func (s *paymentRepoStub) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	for i := range s.payments {
		if s.payments[i].OrderID == orderID {
			return &s.payments[i], nil
		}
	}
	return nil, nil
}

func (s *paymentRepoStub) List(ctx context.Context, params *repository.PaymentFilterParams) ([]entity.Payment, int64, error) {
	return s.payments, int64(len(s.payments)), nil
}

func (s *paymentRepoStub) Update(ctx context.Context, p *entity.Payment) error {
	for i := range s.payments {
		if s.payments[i].ID == p.ID {
			s.payments[i] = *p
		}
	}
	return nil
}

type orderFixture struct {
	svc          *OrderService
	serviceRepo  *serviceRepoStub
	priceRepo    *priceRepoStub
	discountRepo *discountRepoStub
	customerRepo *customerRepoStub
	orderRepo    *orderRepoStub
	paymentRepo  *paymentRepoStub
	serviceID    uuid.UUID
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	pricing, serviceRepo, priceRepo, discountRepo := newPricingFixture()
	customerRepo := &customerRepoStub{}
	orderRepo := &orderRepoStub{}
	paymentRepo := &paymentRepoStub{}

	serviceID := seedService(t, serviceRepo, priceRepo, 8000, time.Now().AddDate(0, 0, -1))

	return &orderFixture{
		svc:          NewOrderService(orderRepo, customerRepo, serviceRepo, paymentRepo, pricing),
		serviceRepo:  serviceRepo,
		priceRepo:    priceRepo,
		discountRepo: discountRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		serviceID:    serviceID,
	}
}

func baseOrderInput(serviceID uuid.UUID) *CreateOrderInput {
	return &CreateOrderInput{
		CustomerName:  "Budi Santoso",
		Email:         "budi@example.com",
		Phone:         "081234567890",
		Address:       "Jl. Melati No. 10, Bandung",
		ServiceID:     serviceID,
		Weight:        decimal.NewFromInt(3),
		PaymentMethod: enum.PaymentMethodCash,
	}
}

func TestCreateOrder_CreatesCustomerOrderAndPayment(t *testing.T) {
	f := newOrderFixture(t)

	result, err := f.svc.CreateOrder(context.Background(), baseOrderInput(f.serviceID))
	require.NoError(t, err)

	order := result.Order
	assert.True(t, order.TotalCost.Equal(decimal.NewFromInt(24000)), "total %s", order.TotalCost)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.InvoiceNumber, "INV-"), "invoice %s", order.InvoiceNumber)
	assert.Len(t, order.InvoiceNumber, 12)

	assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(24000)))
	assert.True(t, result.DiscountAmount.IsZero())
	assert.Nil(t, result.AppliedDiscount)

	require.Len(t, f.customerRepo.customers, 1)
	assert.Equal(t, "budi@example.com", f.customerRepo.customers[0].Email)
	assert.Equal(t, "Jl. Melati No. 10, Bandung", f.customerRepo.customers[0].Address)

	require.Len(t, f.paymentRepo.payments, 1)
	payment := f.paymentRepo.payments[0]
	assert.Equal(t, order.ID, payment.OrderID)
	assert.Equal(t, enum.PaymentStatusUnpaid, payment.Status)
	assert.True(t, payment.Amount.Equal(order.TotalCost))
}

func TestCreateOrder_ReusesExistingCustomerByEmail(t *testing.T) {
	f := newOrderFixture(t)

	first, err := f.svc.CreateOrder(context.Background(), baseOrderInput(f.serviceID))
	require.NoError(t, err)

	input := baseOrderInput(f.serviceID)
	input.CustomerName = "B. Santoso"
	second, err := f.svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Order.CustomerID, second.Order.CustomerID)
	assert.Len(t, f.customerRepo.customers, 1)
	// Existing identity is kept; the name does not get overwritten
	assert.Equal(t, "Budi Santoso", f.customerRepo.customers[0].Name)
}

func TestCreateOrder_AppliesPromoCode(t *testing.T) {
	f := newOrderFixture(t)
	now := time.Now()
	seedPromo(t, f.discountRepo, "HARIINI", 20, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1), true)

	input := baseOrderInput(f.serviceID)
	input.PromoCode = "hariini"
	result, err := f.svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, result.Order.TotalCost.Equal(decimal.NewFromInt(19200)), "total %s", result.Order.TotalCost)
	require.NotNil(t, result.AppliedDiscount)
	assert.Equal(t, "Promo HARIINI", result.AppliedDiscount.Title)
	assert.True(t, result.AppliedDiscount.DiscountPercent.Equal(decimal.NewFromInt(20)))
	assert.True(t, result.AppliedDiscount.DiscountAmount.Equal(decimal.NewFromInt(4800)))
}

func TestCreateOrder_InvalidPromoStillSucceeds(t *testing.T) {
	f := newOrderFixture(t)

	input := baseOrderInput(f.serviceID)
	input.PromoCode = "DOESNOTEXIST"
	result, err := f.svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, result.Order.TotalCost.Equal(decimal.NewFromInt(24000)), "total %s", result.Order.TotalCost)
	assert.Nil(t, result.AppliedDiscount)
}

func TestCreateOrder_UnknownServiceFails(t *testing.T) {
	f := newOrderFixture(t)

	input := baseOrderInput(uuid.New())
	_, err := f.svc.CreateOrder(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	assert.Empty(t, f.orderRepo.orders)
	assert.Empty(t, f.customerRepo.customers)
}

func TestCreateOrder_NoEffectivePriceFails(t *testing.T) {
	f := newOrderFixture(t)

	// A service with no price rows yet
	bare := &entity.Service{ServiceName: "Dry Clean", BasePricePerKg: decimal.NewFromInt(25000)}
	require.NoError(t, f.serviceRepo.Create(context.Background(), bare))

	input := baseOrderInput(bare.ID)
	_, err := f.svc.CreateOrder(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrNoPriceConfigured)
	assert.Empty(t, f.orderRepo.orders)
}

func TestTrackOrder_RequiresNumber(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.TrackOrder(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestTrackOrder_ByInvoiceNumber(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.CreateOrder(context.Background(), baseOrderInput(f.serviceID))
	require.NoError(t, err)

	found, err := f.svc.TrackOrder(context.Background(), created.Order.InvoiceNumber)
	require.NoError(t, err)
	assert.Equal(t, created.Order.ID, found.ID)

	_, err = f.svc.TrackOrder(context.Background(), "INV-MISSING1")
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateOrderStatus_RejectsInvalidStatus(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.CreateOrder(context.Background(), baseOrderInput(f.serviceID))
	require.NoError(t, err)

	_, err = f.svc.UpdateOrderStatus(context.Background(), created.Order.ID, enum.OrderStatus(42))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateOrderStatus_Moves(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.CreateOrder(context.Background(), baseOrderInput(f.serviceID))
	require.NoError(t, err)

	updated, err := f.svc.UpdateOrderStatus(context.Background(), created.Order.ID, enum.OrderStatusInProcess)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusInProcess, updated.Status)
	require.NotNil(t, updated.PickupDate)
	assert.Nil(t, updated.DeliveryDate)

	updated, err = f.svc.UpdateOrderStatus(context.Background(), created.Order.ID, enum.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCompleted, updated.Status)
	require.NotNil(t, updated.DeliveryDate)
}
