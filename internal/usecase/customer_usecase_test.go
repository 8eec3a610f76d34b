package usecase

import (
	"context"
	"testing"

	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	repo := newFakeCustomerRepo()
	pool := newFakePool()
	uc := NewCustomerUC(repo, pool, noopLogger{})

	phone := "+1234567890"
	res, err := uc.CreateCustomer(context.Background(), &CreateCustomerReq{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, "Customer created successfully", res.Message)
	assert.Equal(t, "Alice", res.Customer.Name)
	assert.NotZero(t, res.Customer.ID)
	assert.True(t, pool.tx.committed)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	repo := newFakeCustomerRepo()
	pool := newFakePool()
	uc := NewCustomerUC(repo, pool, noopLogger{})

	_, err := uc.CreateCustomer(context.Background(), &CreateCustomerReq{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	_, err = uc.CreateCustomer(context.Background(), &CreateCustomerReq{
		Name:  "Another Alice",
		Email: "alice@example.com",
	})

	require.ErrorIs(t, err, e.ErrDuplicateEmail)
}

func TestCreateCustomerValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateCustomerReq
		wantErr error
	}{
		{
			name:    "empty name",
			req:     CreateCustomerReq{Name: "  ", Email: "a@example.com"},
			wantErr: e.ErrCustomerNameRequired,
		},
		{
			name:    "missing at sign",
			req:     CreateCustomerReq{Name: "Bob", Email: "not-an-email"},
			wantErr: e.ErrInvalidEmail,
		},
		{
			name:    "empty email",
			req:     CreateCustomerReq{Name: "Bob", Email: ""},
			wantErr: e.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCustomerUC(newFakeCustomerRepo(), newFakePool(), noopLogger{})

			_, err := uc.CreateCustomer(context.Background(), &tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBulkCreateCustomersPartialSuccess(t *testing.T) {
	repo := newFakeCustomerRepo()
	pool := newFakePool()
	uc := NewCustomerUC(repo, pool, noopLogger{})

	_, err := uc.CreateCustomer(context.Background(), &CreateCustomerReq{
		Name:  "Existing",
		Email: "taken@example.com",
	})
	require.NoError(t, err)

	res, err := uc.BulkCreateCustomers(context.Background(), &BulkCreateCustomersReq{
		Customers: []CreateCustomerReq{
			{Name: "One", Email: "one@example.com"},
			{Name: "Two", Email: "two@example.com"},
			{Name: "Dup", Email: "taken@example.com"},
			{Name: "Bad", Email: "broken"},
		},
	})

	require.NoError(t, err)
	assert.Len(t, res.Created, 2)
	assert.Len(t, res.Errors, 2)
	assert.Equal(t, "Created 2 of 4 customers", res.Message)
	assert.Contains(t, res.Errors[0], "taken@example.com")
}

func TestBulkCreateCustomersAllValid(t *testing.T) {
	uc := NewCustomerUC(newFakeCustomerRepo(), newFakePool(), noopLogger{})

	res, err := uc.BulkCreateCustomers(context.Background(), &BulkCreateCustomersReq{
		Customers: []CreateCustomerReq{
			{Name: "One", Email: "one@example.com"},
			{Name: "Two", Email: "two@example.com"},
		},
	})

	require.NoError(t, err)
	assert.Len(t, res.Created, 2)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "All customers created successfully", res.Message)
}

func TestBulkCreateCustomersIntraBatchDuplicate(t *testing.T) {
	uc := NewCustomerUC(newFakeCustomerRepo(), newFakePool(), noopLogger{})

	res, err := uc.BulkCreateCustomers(context.Background(), &BulkCreateCustomersReq{
		Customers: []CreateCustomerReq{
			{Name: "First", Email: "same@example.com"},
			{Name: "Second", Email: "same@example.com"},
		},
	})

	require.NoError(t, err)
	assert.Len(t, res.Created, 1)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "same@example.com")
}

func TestBulkCreateCustomersEmpty(t *testing.T) {
	uc := NewCustomerUC(newFakeCustomerRepo(), newFakePool(), noopLogger{})

	_, err := uc.BulkCreateCustomers(context.Background(), &BulkCreateCustomersReq{})

	assert.ErrorIs(t, err, e.ErrNoCustomers)
}
