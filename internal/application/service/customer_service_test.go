package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laundrypro/laundry-api/internal/domain/entity"
	"github.com/laundrypro/laundry-api/pkg/apperror"
)

func seedCustomer(t *testing.T, repo *customerRepoStub) *entity.Customer {
	t.Helper()

	customer := &entity.Customer{
		Name:    "Budi Santoso",
		Email:   "budi@example.com",
		Phone:   "081234567890",
		Address: "Jl. Melati No. 10, Bandung",
	}
	require.NoError(t, repo.Create(context.Background(), customer))
	return customer
}

func TestUpdateCustomer_PartialFields(t *testing.T) {
	repo := &customerRepoStub{}
	svc := NewCustomerService(repo)
	customer := seedCustomer(t, repo)

	address := "Jl. Kenanga No. 3, Bandung"
	updated, err := svc.UpdateCustomer(context.Background(), customer.ID, &UpdateCustomerInput{
		Address: &address,
	})
	require.NoError(t, err)

	assert.Equal(t, address, updated.Address)
	// Untouched fields stay as they were
	assert.Equal(t, "Budi Santoso", updated.Name)
	assert.Equal(t, "081234567890", updated.Phone)
	assert.Equal(t, address, repo.customers[0].Address)
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	svc := NewCustomerService(&customerRepoStub{})

	name := "Siti"
	_, err := svc.UpdateCustomer(context.Background(), uuid.New(), &UpdateCustomerInput{Name: &name})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
