package converter

import (
	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
)

// CustomerConverter преобразует сущности Customer между domain и моделью PostgreSQL.
type CustomerConverter interface {
	ToModel(entity *domain.Customer) *CustomerModel
	ToEntity(model *CustomerModel) *domain.Customer
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel) *domain.Order
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type CustomerConverterImpl struct{}

func NewCustomerConverterImpl() *CustomerConverterImpl {
	return &CustomerConverterImpl{}
}

func (c *CustomerConverterImpl) ToModel(entity *domain.Customer) *CustomerModel {
	if entity == nil {
		return nil
	}
	return &CustomerModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Email:     entity.Email,
		Phone:     entity.Phone,
		CreatedAt: entity.CreatedAt,
	}
}

func (c *CustomerConverterImpl) ToEntity(model *CustomerModel) *domain.Customer {
	if model == nil {
		return nil
	}
	return &domain.Customer{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
	}
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (p *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}
	return &ProductModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Price:     entity.Price,
		Stock:     entity.Stock,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (p *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}
	return &domain.Product{
		ID:        model.ID,
		Name:      model.Name,
		Price:     model.Price,
		Stock:     model.Stock,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

type OrderConverterImpl struct{}

func NewOrderConverterImpl() *OrderConverterImpl {
	return &OrderConverterImpl{}
}

func (o *OrderConverterImpl) ToModel(entity *domain.Order) *OrderModel {
	if entity == nil {
		return nil
	}
	return &OrderModel{
		ID:          entity.ID,
		CustomerID:  entity.CustomerID,
		OrderDate:   entity.OrderDate,
		TotalAmount: entity.TotalAmount,
		CreatedAt:   entity.CreatedAt,
	}
}

func (o *OrderConverterImpl) ToEntity(model *OrderModel) *domain.Order {
	if model == nil {
		return nil
	}
	return &domain.Order{
		ID:          model.ID,
		CustomerID:  model.CustomerID,
		OrderDate:   model.OrderDate,
		TotalAmount: model.TotalAmount,
		CreatedAt:   model.CreatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (o *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	if entity == nil {
		return nil
	}
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (o *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	if model == nil {
		return nil
	}
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (o *OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, o.ToEntity(model))
	}
	return result
}
