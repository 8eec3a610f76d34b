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

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет продукт внутри текущей транзакции.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, price, stock)
		VALUES ($1, $2, $3)
		RETURNING id, name, price, stock, created_at, updated_at;
	`

	var model converter.ProductModel
	if err := tx.QueryRow(ctx, query, product.Name, product.Price, product.Stock).
		Scan(&model.ID, &model.Name, &model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetByIDs возвращает продукты по идентификаторам внутри текущей транзакции.
// Отсутствующие идентификаторы просто не попадают в результат.
func (p *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM products
		WHERE id = ANY($1)
		ORDER BY id;
	`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0, len(ids))
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// List возвращает продукты по фильтру.
func (p *ProductRepo) List(ctx context.Context, filter *usecase.ProductFilter) ([]domain.Product, error) {
	query := `SELECT id, name, price, stock, created_at, updated_at FROM products`

	var (
		conds []string
		args  []any
	)
	if filter != nil {
		if filter.NameContains != nil {
			args = append(args, "%"+*filter.NameContains+"%")
			conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
		}
		if filter.PriceGte != nil {
			args = append(args, *filter.PriceGte)
			conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
		}
		if filter.PriceLte != nil {
			args = append(args, *filter.PriceLte)
			conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
		}
		if filter.StockGte != nil {
			args = append(args, *filter.StockGte)
			conds = append(conds, fmt.Sprintf("stock >= $%d", len(args)))
		}
		if filter.StockLte != nil {
			args = append(args, *filter.StockLte)
			conds = append(conds, fmt.Sprintf("stock <= $%d", len(args)))
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id;"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetProductsInfo возвращает информацию о продуктах по их идентификаторам.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT id, name, price, stock
		FROM products
		WHERE id = ANY($1);
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0, len(ids))
	for rows.Next() {
		var info usecase.ProductInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Price, &info.Stock); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// RestockBelow одним запросом пополняет сток всех продуктов ниже порога
// и возвращает обновлённые строки.
func (p *ProductRepo) RestockBelow(ctx context.Context, threshold, increment int32) ([]domain.Product, error) {
	query := `
		UPDATE products
		SET stock = stock + $2, updated_at = NOW()
		WHERE stock < $1
		RETURNING id, name, price, stock, created_at, updated_at;
	`

	rows, err := p.pool.Query(ctx, query, threshold, increment)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
