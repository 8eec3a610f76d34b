package usecase

import (
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
)

// CUSTOMER USECASE

// CreateCustomerReq — запрос на создание клиента.
type CreateCustomerReq struct {
	Name  string
	Email string
	Phone *string
}

// CreateCustomerRes — результат создания клиента с человекочитаемым сообщением.
type CreateCustomerRes struct {
	Customer *domain.Customer
	Message  string
}

// BulkCreateCustomersReq — запрос на массовое создание клиентов.
type BulkCreateCustomersReq struct {
	Customers []CreateCustomerReq
}

// BulkCreateCustomersRes — созданные клиенты и ошибки по каждому непрошедшему элементу.
type BulkCreateCustomersRes struct {
	Created []*domain.Customer
	Errors  []string
	Message string
}

// CustomerInfo — DTO с информацией о клиенте для внешнего использования.
type CustomerInfo struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}

// CustomerFilter — предикаты выборки клиентов. nil-поля не участвуют в фильтрации.
type CustomerFilter struct {
	NameContains  *string
	EmailContains *string
	CreatedAtGte  *time.Time
	CreatedAtLte  *time.Time
}

// PRODUCT USECASE

// CreateProductReq — запрос на создание продукта.
// Price передаётся десятичной строкой и парсится в usecase.
type CreateProductReq struct {
	Name  string
	Price string
	Stock int32
}

// GetProductsReq — запрос информации о продуктах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных продуктов.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []int64
}

// ProductInfo — DTO с информацией о продукте для внешнего использования.
type ProductInfo struct {
	ID    int64
	Name  string
	Price int64 // в центах
	Stock int32
}

// ProductFilter — предикаты выборки продуктов. Ценовые границы в центах.
type ProductFilter struct {
	NameContains *string
	PriceGte     *int64
	PriceLte     *int64
	StockGte     *int32
	StockLte     *int32
}

// RestockRes — продукты, пополненные мутацией updateLowStockProducts.
type RestockRes struct {
	Products []domain.Product
	Message  string
}

// ORDER USECASE

// CreateOrderReq — запрос на создание заказа.
// OrderDate по умолчанию — время создания.
type CreateOrderReq struct {
	CustomerID int64
	ProductIDs []int64
	OrderDate  *time.Time
}

// OrderInfo — заказ вместе с клиентом и продуктами.
type OrderInfo struct {
	ID          int64
	Customer    CustomerInfo
	Products    []ProductInfo
	OrderDate   time.Time
	TotalAmount int64 // в центах
}

// OrderFilter — предикаты выборки заказов. Денежные границы в центах.
type OrderFilter struct {
	CustomerEmail  *string
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	TotalAmountGte *int64
	TotalAmountLte *int64
}

// REPORT USECASE

// ReportRes — агрегаты еженедельного отчета. Revenue в центах.
type ReportRes struct {
	Customers int64
	Orders    int64
	Revenue   int64
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const OrderCreated OutboxEventType = "order.created"

// OutboxEvent — транзакционное событие для публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderCreatedPayload — JSON-тело события order.created.
type OrderCreatedPayload struct {
	OrderID     int64   `json:"order_id"`
	CustomerID  int64   `json:"customer_id"`
	ProductIDs  []int64 `json:"product_ids"`
	TotalAmount int64   `json:"total_amount"`
	OrderDate   string  `json:"order_date"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// MAPPERS

func NewCreateCustomerReq(name, email string, phone *string) *CreateCustomerReq {
	return &CreateCustomerReq{
		Name:  name,
		Email: email,
		Phone: phone,
	}
}

func NewCustomerInfo(c *domain.Customer) CustomerInfo {
	return CustomerInfo{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func NewProductInfo(p *domain.Product) ProductInfo {
	return ProductInfo{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewGetProductsRes(products []ProductInfo, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         products,
		NotFoundProducts: notFoundProducts,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
