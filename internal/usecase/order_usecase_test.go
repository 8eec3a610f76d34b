package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (*OrderUseCase, *fakeCustomerRepo, *fakeOrderRepo, *fakeOutboxRepo, *fakePool) {
	t.Helper()

	customerRepo := newFakeCustomerRepo()
	productRepo := newFakeProductRepo(
		domain.Product{ID: 1, Name: "Laptop", Price: 99999, Stock: 5},
		domain.Product{ID: 2, Name: "Mouse", Price: 2500, Stock: 10},
	)
	orderRepo := &fakeOrderRepo{}
	outboxRepo := &fakeOutboxRepo{}
	pool := newFakePool()

	uc := NewOrderUC(customerRepo, productRepo, orderRepo, outboxRepo, pool, noopLogger{})

	return uc, customerRepo, orderRepo, outboxRepo, pool
}

func TestCreateOrder(t *testing.T) {
	uc, customerRepo, orderRepo, outboxRepo, pool := newOrderFixture(t)

	customer, err := customerRepo.Create(context.Background(), domain.NewCustomer("Alice", "alice@example.com", nil))
	require.NoError(t, err)

	orderDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order, err := uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerID: customer.ID,
		ProductIDs: []int64{1, 2},
		OrderDate:  &orderDate,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(102499), order.TotalAmount)
	assert.Equal(t, "Alice", order.Customer.Name)
	assert.Len(t, order.Products, 2)
	assert.Equal(t, orderDate, order.OrderDate)
	assert.True(t, pool.tx.committed)

	require.NotNil(t, orderRepo.created)
	assert.Equal(t, []int64{1, 2}, orderRepo.productIDs)

	require.Len(t, outboxRepo.events, 1)
	event := outboxRepo.events[0]
	assert.Equal(t, OrderCreated, event.EventType)
	assert.Equal(t, Pending, event.Status)

	var payload OrderCreatedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, order.ID, payload.OrderID)
	assert.Equal(t, int64(102499), payload.TotalAmount)
	assert.Equal(t, []int64{1, 2}, payload.ProductIDs)
}

func TestCreateOrderTotalSurvivesPriceChange(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	productRepo := newFakeProductRepo(
		domain.Product{ID: 1, Name: "Laptop", Price: 99999, Stock: 5},
	)
	orderRepo := &fakeOrderRepo{}
	uc := NewOrderUC(customerRepo, productRepo, orderRepo, &fakeOutboxRepo{}, newFakePool(), noopLogger{})

	customer, err := customerRepo.Create(context.Background(), domain.NewCustomer("Carol", "carol@example.com", nil))
	require.NoError(t, err)

	order, err := uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerID: customer.ID,
		ProductIDs: []int64{1},
	})
	require.NoError(t, err)

	laptop := productRepo.products[1]
	laptop.Price = 129999
	productRepo.products[1] = laptop

	assert.Equal(t, int64(99999), order.TotalAmount)
	require.NotNil(t, orderRepo.created)
	assert.Equal(t, int64(99999), orderRepo.created.TotalAmount)
}

func TestCreateOrderDeduplicatesProducts(t *testing.T) {
	uc, customerRepo, orderRepo, _, _ := newOrderFixture(t)

	customer, err := customerRepo.Create(context.Background(), domain.NewCustomer("Bob", "bob@example.com", nil))
	require.NoError(t, err)

	order, err := uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerID: customer.ID,
		ProductIDs: []int64{1, 1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(102499), order.TotalAmount)
	assert.Equal(t, []int64{1, 2}, orderRepo.productIDs)
}

func TestCreateOrderDefaultsOrderDate(t *testing.T) {
	uc, customerRepo, _, _, _ := newOrderFixture(t)

	customer, err := customerRepo.Create(context.Background(), domain.NewCustomer("Bob", "bob@example.com", nil))
	require.NoError(t, err)

	before := time.Now()
	order, err := uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerID: customer.ID,
		ProductIDs: []int64{1},
	})

	require.NoError(t, err)
	assert.False(t, order.OrderDate.Before(before))
}

func TestCreateOrderInvalidCustomer(t *testing.T) {
	uc, _, _, outboxRepo, pool := newOrderFixture(t)

	_, err := uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerID: 42,
		ProductIDs: []int64{1},
	})

	require.ErrorIs(t, err, e.ErrInvalidCustomerID)
	assert.Empty(t, outboxRepo.events)
	assert.False(t, pool.tx.committed)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	uc, customerRepo, orderRepo, _, pool := newOrderFixture(t)

	customer, err := customerRepo.Create(context.Background(), domain.NewCustomer("Bob", "bob@example.com", nil))
	require.NoError(t, err)

	_, err = uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerID: customer.ID,
		ProductIDs: []int64{1, 99},
	})

	require.ErrorIs(t, err, e.ErrInvalidProductIDs)
	assert.Nil(t, orderRepo.created)
	assert.False(t, pool.tx.committed)
}

func TestCreateOrderNoProducts(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture(t)

	_, err := uc.CreateOrder(context.Background(), &CreateOrderReq{CustomerID: 1})

	require.ErrorIs(t, err, e.ErrInvalidProductIDs)
}

func TestGenerateReport(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	orderRepo := &fakeOrderRepo{stats: &ReportRes{Orders: 7, Revenue: 123456}}

	_, err := customerRepo.Create(context.Background(), domain.NewCustomer("Alice", "alice@example.com", nil))
	require.NoError(t, err)
	_, err = customerRepo.Create(context.Background(), domain.NewCustomer("Bob", "bob@example.com", nil))
	require.NoError(t, err)

	uc := NewReportUC(customerRepo, orderRepo, noopLogger{})

	res, err := uc.GenerateReport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Customers)
	assert.Equal(t, int64(7), res.Orders)
	assert.Equal(t, int64(123456), res.Revenue)
}
