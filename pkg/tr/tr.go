package tr

import (
	"context"

	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/jackc/pgx/v5"
)

// TxFromCtx извлекает pgx.Tx, положенную в контекст usecase-слоем
// при открытии транзакции. Репозитории customers/products/orders
// пишут только через неё.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value("tx")
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
