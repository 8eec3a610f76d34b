package pgdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/repository/pgdb/converter"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errRow struct {
	err error
}

func (r errRow) Scan(dest ...any) error { return r.err }

// errQueryRowTx отдает заданную ошибку на любой QueryRow.
type errQueryRowTx struct {
	pgx.Tx
	err error
}

func (t errQueryRowTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return errRow{err: t.err}
}

func txCtx(tx pgx.Tx) context.Context {
	return context.WithValue(context.Background(), "tx", tx)
}

func TestCreateCustomerUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"}
	repo := NewCustomerRepo(nil, converter.NewCustomerConverterImpl())

	_, err := repo.Create(txCtx(errQueryRowTx{err: pgErr}),
		domain.NewCustomer("Alice", "alice@example.com", nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrDuplicateEmail)
}

func TestCreateCustomerOtherErrorNotMasked(t *testing.T) {
	dbErr := fmt.Errorf("connection reset")
	repo := NewCustomerRepo(nil, converter.NewCustomerConverterImpl())

	_, err := repo.Create(txCtx(errQueryRowTx{err: dbErr}),
		domain.NewCustomer("Bob", "bob@example.com", nil))

	require.Error(t, err)
	assert.NotErrorIs(t, err, e.ErrDuplicateEmail)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPostgresDuplicate(t *testing.T) {
	assert.True(t, postgresDuplicate(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, postgresDuplicate(&pgconn.PgError{Code: "23503"}))
	assert.False(t, postgresDuplicate(fmt.Errorf("plain")))
}
