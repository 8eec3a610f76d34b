package pgdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/repository/pgdb/converter"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CustomerRepo реализует репозиторий клиентов поверх PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{pool: pool, conv: conv}
}

// Create вставляет клиента внутри текущей транзакции.
func (c *CustomerRepo) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO customers (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, phone, created_at;
	`

	var model converter.CustomerModel
	if err := tx.QueryRow(ctx, query, customer.Name, customer.Email, customer.Phone).
		Scan(&model.ID, &model.Name, &model.Email, &model.Phone, &model.CreatedAt); err != nil {
		// Конкурентная вставка проходит мимо EmailExists, ловим её по ограничению.
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrDuplicateEmail)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// EmailExists проверяет наличие клиента с таким email внутри текущей транзакции.
func (c *CustomerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1);`
	if err := tx.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

// GetByID возвращает клиента по идентификатору внутри текущей транзакции.
// Отсутствующий клиент отдаётся как pgx.ErrNoRows.
func (c *CustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT id, name, email, phone, created_at FROM customers WHERE id = $1;`

	var model converter.CustomerModel
	if err := tx.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Email, &model.Phone, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// List возвращает клиентов по фильтру.
func (c *CustomerRepo) List(ctx context.Context, filter *usecase.CustomerFilter) ([]domain.Customer, error) {
	query := `SELECT id, name, email, phone, created_at FROM customers`

	var (
		conds []string
		args  []any
	)
	if filter != nil {
		if filter.NameContains != nil {
			args = append(args, "%"+*filter.NameContains+"%")
			conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
		}
		if filter.EmailContains != nil {
			args = append(args, "%"+*filter.EmailContains+"%")
			conds = append(conds, fmt.Sprintf("email ILIKE $%d", len(args)))
		}
		if filter.CreatedAtGte != nil {
			args = append(args, *filter.CreatedAtGte)
			conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
		}
		if filter.CreatedAtLte != nil {
			args = append(args, *filter.CreatedAtLte)
			conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id;"

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Customer, 0)
	for rows.Next() {
		var model converter.CustomerModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Email, &model.Phone, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Count возвращает общее количество клиентов.
func (c *CustomerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
