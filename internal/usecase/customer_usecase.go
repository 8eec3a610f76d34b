package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// CustomerUseCase реализует бизнес-логику управления клиентами.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewCustomerUC(
	customerRepo CustomerRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// CreateCustomer создает клиента с уникальным email.
// До начала транзакции ни одна строка не вставляется.
func (c *CustomerUseCase) CreateCustomer(ctx context.Context, req *CreateCustomerReq) (*CreateCustomerRes, error) {
	const op = "CustomerUseCase.CreateCustomer"

	var err error
	if err = validateCustomer(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	exists, err := c.customerRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if exists {
		err = e.ErrDuplicateEmail
		return nil, err
	}

	customer, err := c.customerRepo.Create(ctx, domain.NewCustomer(req.Name, req.Email, req.Phone))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CreateCustomerRes{
		Customer: customer,
		Message:  "Customer created successfully",
	}, nil
}

// BulkCreateCustomers создает клиентов пачкой внутри одной транзакции.
// Ошибка отдельного элемента попадает в Errors и не прерывает обработку остальных.
func (c *CustomerUseCase) BulkCreateCustomers(ctx context.Context, req *BulkCreateCustomersReq) (*BulkCreateCustomersRes, error) {
	const op = "CustomerUseCase.BulkCreateCustomers"

	var err error
	if len(req.Customers) == 0 {
		return nil, e.Wrap(op, e.ErrNoCustomers)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	var (
		created []*domain.Customer
		errs    []string
		seen    = make(map[string]struct{}, len(req.Customers))
	)

	for _, item := range req.Customers {
		// Валидация и проверка дубликата до INSERT, чтобы неудачный элемент
		// не абортировал транзакцию целиком.
		if vErr := validateCustomer(&item); vErr != nil {
			errs = append(errs, fmt.Sprintf("customer %s: %v", item.Name, vErr))
			continue
		}

		if _, dup := seen[item.Email]; dup {
			errs = append(errs, fmt.Sprintf("Email %s already exists", item.Email))
			continue
		}

		exists, exErr := c.customerRepo.EmailExists(ctx, item.Email)
		if exErr != nil {
			err = e.Wrap(op, exErr)
			return nil, err
		}
		if exists {
			errs = append(errs, fmt.Sprintf("Email %s already exists", item.Email))
			continue
		}

		customer, crErr := c.customerRepo.Create(ctx, domain.NewCustomer(item.Name, item.Email, item.Phone))
		if crErr != nil {
			err = e.Wrap(op, crErr)
			return nil, err
		}

		seen[item.Email] = struct{}{}
		created = append(created, customer)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	message := "All customers created successfully"
	if len(errs) > 0 {
		message = fmt.Sprintf("Created %d of %d customers", len(created), len(req.Customers))
	}

	return &BulkCreateCustomersRes{
		Created: created,
		Errors:  errs,
		Message: message,
	}, nil
}

// ListCustomers возвращает клиентов по фильтру.
func (c *CustomerUseCase) ListCustomers(ctx context.Context, filter *CustomerFilter) ([]CustomerInfo, error) {
	const op = "CustomerUseCase.ListCustomers"

	customers, err := c.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]CustomerInfo, 0, len(customers))
	for i := range customers {
		result = append(result, NewCustomerInfo(&customers[i]))
	}

	return result, nil
}

// validateCustomer проверяет корректность входных данных клиента.
func validateCustomer(req *CreateCustomerReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrCustomerNameRequired
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return e.ErrInvalidEmail
	}

	return nil
}
