package usecase

import (
	"context"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, filter *CustomerFilter) ([]domain.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, filter *ProductFilter) ([]domain.Product, error)
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
	RestockBelow(ctx context.Context, threshold, increment int32) ([]domain.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order, productIDs []int64) (*domain.Order, error)
	List(ctx context.Context, filter *OrderFilter) ([]OrderInfo, error)
	Stats(ctx context.Context) (*ReportRes, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
