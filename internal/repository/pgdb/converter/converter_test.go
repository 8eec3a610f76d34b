package converter

import (
	"testing"
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestCustomerConverterRoundTrip(t *testing.T) {
	conv := NewCustomerConverterImpl()

	phone := "+1234567890"
	entity := &domain.Customer{
		ID:        7,
		Name:      "Alice",
		Email:     "alice@example.com",
		Phone:     &phone,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, entity, conv.ToEntity(conv.ToModel(entity)))
	assert.Nil(t, conv.ToModel(nil))
	assert.Nil(t, conv.ToEntity(nil))
}

func TestProductConverterRoundTrip(t *testing.T) {
	conv := NewProductConverterImpl()

	updated := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	entity := &domain.Product{
		ID:        3,
		Name:      "Laptop",
		Price:     99999,
		Stock:     5,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: &updated,
	}

	assert.Equal(t, entity, conv.ToEntity(conv.ToModel(entity)))
}

func TestOutboxEventConverterArr(t *testing.T) {
	conv := NewOutboxEventConverterImpl()

	models := []*OutboxEventModel{
		{ID: 1, EventID: "a", EventType: "order.created", OrderID: 10, Status: "pending"},
		{ID: 2, EventID: "b", EventType: "order.created", OrderID: 11, Status: "processed"},
	}

	entities := conv.ToArrEntity(models)

	assert.Len(t, entities, 2)
	assert.Equal(t, usecase.OrderCreated, entities[0].EventType)
	assert.Equal(t, usecase.Processed, entities[1].Status)
}
