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

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет заказ и связи с продуктами внутри текущей транзакции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order, productIDs []int64) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (customer_id, order_date, total_amount)
		VALUES ($1, $2, $3)
		RETURNING id, customer_id, order_date, total_amount, created_at;
	`

	var model converter.OrderModel
	if err := tx.QueryRow(ctx, query, order.CustomerID, order.OrderDate, order.TotalAmount).
		Scan(&model.ID, &model.CustomerID, &model.OrderDate, &model.TotalAmount, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	assocQuery := `INSERT INTO order_products (order_id, product_id) SELECT $1, unnest($2::bigint[]);`
	if _, err := tx.Exec(ctx, assocQuery, model.ID, productIDs); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

// List возвращает заказы по фильтру вместе с клиентом и продуктами.
func (o *OrderRepo) List(ctx context.Context, filter *usecase.OrderFilter) ([]usecase.OrderInfo, error) {
	query := `
		SELECT o.id, o.order_date, o.total_amount,
		       c.id, c.name, c.email, c.phone, c.created_at
		FROM orders o
		JOIN customers c ON o.customer_id = c.id`

	var (
		conds []string
		args  []any
	)
	if filter != nil {
		if filter.CustomerEmail != nil {
			args = append(args, *filter.CustomerEmail)
			conds = append(conds, fmt.Sprintf("c.email = $%d", len(args)))
		}
		if filter.OrderDateGte != nil {
			args = append(args, *filter.OrderDateGte)
			conds = append(conds, fmt.Sprintf("o.order_date >= $%d", len(args)))
		}
		if filter.OrderDateLte != nil {
			args = append(args, *filter.OrderDateLte)
			conds = append(conds, fmt.Sprintf("o.order_date <= $%d", len(args)))
		}
		if filter.TotalAmountGte != nil {
			args = append(args, *filter.TotalAmountGte)
			conds = append(conds, fmt.Sprintf("o.total_amount >= $%d", len(args)))
		}
		if filter.TotalAmountLte != nil {
			args = append(args, *filter.TotalAmountLte)
			conds = append(conds, fmt.Sprintf("o.total_amount <= $%d", len(args)))
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY o.id;"

	rows, err := o.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]usecase.OrderInfo, 0)
	orderIDs := make([]int64, 0)
	for rows.Next() {
		var info usecase.OrderInfo
		if err := rows.Scan(
			&info.ID, &info.OrderDate, &info.TotalAmount,
			&info.Customer.ID, &info.Customer.Name, &info.Customer.Email,
			&info.Customer.Phone, &info.Customer.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		orders = append(orders, info)
		orderIDs = append(orderIDs, info.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	productsByOrder, err := o.loadOrderProducts(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Products = productsByOrder[orders[i].ID]
	}

	return orders, nil
}

// Stats возвращает количество заказов и суммарную выручку.
func (o *OrderRepo) Stats(ctx context.Context) (*usecase.ReportRes, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(total_amount), 0) FROM orders;`

	var stats usecase.ReportRes
	if err := o.pool.QueryRow(ctx, query).Scan(&stats.Orders, &stats.Revenue); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &stats, nil
}

// loadOrderProducts возвращает продукты заказов, сгруппированные по order_id.
func (o *OrderRepo) loadOrderProducts(ctx context.Context, orderIDs []int64) (map[int64][]usecase.ProductInfo, error) {
	query := `
		SELECT op.order_id, p.id, p.name, p.price, p.stock
		FROM order_products op
		JOIN products p ON op.product_id = p.id
		WHERE op.order_id = ANY($1)
		ORDER BY op.order_id, p.id;
	`

	rows, err := o.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64][]usecase.ProductInfo, len(orderIDs))
	for rows.Next() {
		var (
			orderID int64
			info    usecase.ProductInfo
		)
		if err := rows.Scan(&orderID, &info.ID, &info.Name, &info.Price, &info.Stock); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result[orderID] = append(result[orderID], info)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
