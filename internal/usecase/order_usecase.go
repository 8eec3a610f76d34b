package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase реализует бизнес-логику создания и выборки заказов.
type OrderUseCase struct {
	customerRepo CustomerRepository
	productRepo  ProductRepository
	orderRepo    OrderRepository
	outboxRepo   OutboxRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewOrderUC(
	customerRepo CustomerRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		outboxRepo:   outboxRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// CreateOrder создает заказ атомарно: строку заказа, связи с продуктами и
// outbox-событие в одной транзакции. TotalAmount фиксируется как сумма цен
// продуктов на момент создания. Если хотя бы один из запрошенных продуктов
// не найден, заказ не создается.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*OrderInfo, error) {
	const op = "OrderUseCase.CreateOrder"

	var err error
	if len(req.ProductIDs) == 0 {
		return nil, e.Wrap(op, e.ErrInvalidProductIDs)
	}
	productIDs := dedupIDs(req.ProductIDs)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	customer, err := o.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = e.ErrInvalidCustomerID
		}
		return nil, e.Wrap(op, err)
	}

	products, err := o.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if missing := missingIDs(productIDs, products); len(missing) > 0 {
		err = e.Wrap(fmt.Sprintf("unknown products %v", missing), e.ErrInvalidProductIDs)
		return nil, err
	}

	var total int64
	for i := range products {
		total += products[i].Price
	}

	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	order, err := o.orderRepo.Create(ctx, domain.NewOrder(customer.ID, orderDate, total), productIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.writeOutboxEvent(ctx, order, productIDs); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	productInfos := make([]ProductInfo, 0, len(products))
	for i := range products {
		productInfos = append(productInfos, NewProductInfo(&products[i]))
	}

	return &OrderInfo{
		ID:          order.ID,
		Customer:    NewCustomerInfo(customer),
		Products:    productInfos,
		OrderDate:   order.OrderDate,
		TotalAmount: order.TotalAmount,
	}, nil
}

// ListOrders возвращает заказы по фильтру вместе с клиентом и продуктами.
func (o *OrderUseCase) ListOrders(ctx context.Context, filter *OrderFilter) ([]OrderInfo, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// writeOutboxEvent кладет событие order.created в outbox внутри текущей транзакции.
func (o *OrderUseCase) writeOutboxEvent(ctx context.Context, order *domain.Order, productIDs []int64) error {
	payload, err := json.Marshal(OrderCreatedPayload{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		ProductIDs:  productIDs,
		TotalAmount: order.TotalAmount,
		OrderDate:   order.OrderDate.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderCreated, order.ID, payload))
	return err
}

// dedupIDs убирает повторы, сохраняя порядок первого вхождения.
func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// missingIDs возвращает идентификаторы, которых нет среди найденных продуктов.
func missingIDs(requested []int64, found []domain.Product) []int64 {
	foundSet := make(map[int64]struct{}, len(found))
	for i := range found {
		foundSet[found[i].ID] = struct{}{}
	}

	var missing []int64
	for _, id := range requested {
		if _, ok := foundSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
