package usecase

import (
	"context"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/jackc/pgx/v5"
)

// noopLogger глушит вывод в тестах.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...any)        {}
func (noopLogger) Infof(string, ...any)         {}
func (noopLogger) Warnf(string, ...any)         {}
func (noopLogger) Errorf(error, string, ...any) {}

// fakeTx подменяет pgx.Tx: фиксирует только факт commit/rollback.
type fakeTx struct {
	pgx.Tx

	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true

	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true

	return nil
}

// fakePool отдает один и тот же fakeTx на каждую транзакцию.
type fakePool struct {
	tx *fakeTx
}

func newFakePool() *fakePool {
	return &fakePool{tx: &fakeTx{}}
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) {
	return p.tx, nil
}

func (p *fakePool) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return p.tx, nil
}

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
	byID      map[int64]*domain.Customer
	nextID    int64

	createErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: make(map[string]*domain.Customer),
		byID:      make(map[int64]*domain.Customer),
		nextID:    1,
	}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *customer
	created.ID = f.nextID
	f.nextID++

	f.customers[created.Email] = &created
	f.byID[created.ID] = &created

	return &created, nil
}

func (f *fakeCustomerRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.customers[email]

	return ok, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	return c, nil
}

func (f *fakeCustomerRepo) List(_ context.Context, _ *CustomerFilter) ([]domain.Customer, error) {
	result := make([]domain.Customer, 0, len(f.byID))
	for _, c := range f.byID {
		result = append(result, *c)
	}

	return result, nil
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeProductRepo struct {
	products map[int64]domain.Product
	restockd []domain.Product

	restockErr error
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[int64]domain.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}

	return f
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	created := *product
	created.ID = int64(len(f.products) + 1)
	f.products[created.ID] = created

	return &created, nil
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.Product, error) {
	var result []domain.Product

	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			result = append(result, p)
		}
	}

	return result, nil
}

func (f *fakeProductRepo) List(_ context.Context, _ *ProductFilter) ([]domain.Product, error) {
	result := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		result = append(result, p)
	}

	return result, nil
}

func (f *fakeProductRepo) GetProductsInfo(_ context.Context, ids []int64) ([]ProductInfo, error) {
	var result []ProductInfo

	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			result = append(result, NewProductInfo(&p))
		}
	}

	return result, nil
}

func (f *fakeProductRepo) RestockBelow(_ context.Context, threshold, increment int32) ([]domain.Product, error) {
	if f.restockErr != nil {
		return nil, f.restockErr
	}

	var updated []domain.Product

	for id, p := range f.products {
		if p.Stock < threshold {
			p.Stock += increment
			f.products[id] = p
			updated = append(updated, p)
		}
	}

	f.restockd = updated

	return updated, nil
}

type fakeOrderRepo struct {
	created    *domain.Order
	productIDs []int64
	nextID     int64

	stats *ReportRes
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order, productIDs []int64) (*domain.Order, error) {
	created := *order
	f.nextID++
	created.ID = f.nextID

	f.created = &created
	f.productIDs = productIDs

	return &created, nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ *OrderFilter) ([]OrderInfo, error) {
	return nil, nil
}

func (f *fakeOrderRepo) Stats(_ context.Context) (*ReportRes, error) {
	return f.stats, nil
}

type fakeOutboxRepo struct {
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.events = append(f.events, event)

	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, _ int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(_ context.Context, _ int64) error {
	return nil
}

type fakeCacheRepo struct {
	store   map[int64]ProductInfo
	deleted []int64

	getErr error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{store: make(map[int64]ProductInfo)}
}

func (f *fakeCacheRepo) GetProducts(_ context.Context, ids []int64) (map[int64]ProductInfo, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	result := make(map[int64]ProductInfo)

	for _, id := range ids {
		if p, ok := f.store[id]; ok {
			result[id] = p
		}
	}

	return result, nil
}

func (f *fakeCacheRepo) SetProducts(_ context.Context, products []ProductInfo) error {
	for _, p := range products {
		f.store[p.ID] = p
	}

	return nil
}

func (f *fakeCacheRepo) DeleteProducts(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(f.store, id)
		f.deleted = append(f.deleted, id)
	}

	return nil
}
