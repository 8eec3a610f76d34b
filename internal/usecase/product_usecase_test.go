package usecase

import (
	"context"
	"testing"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "999.99", want: 99999},
		{in: "0.01", want: 1},
		{in: "600", want: 60000},
		{in: "10.5", want: 1050},
		{in: "0", want: 0},
		{in: "", wantErr: e.ErrInvalidPrice},
		{in: "abc", wantErr: e.ErrInvalidPrice},
		{in: "12.345", wantErr: e.ErrPricePrecision},
		{in: "2000000000", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriceToCents(tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "999.99", FormatCents(99999))
	assert.Equal(t, "600.00", FormatCents(60000))
	assert.Equal(t, "0.01", FormatCents(1))
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	pool := newFakePool()
	uc := NewProductUC(repo, pool, newFakeCacheRepo(), noopLogger{})

	info, err := uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:  "Laptop",
		Price: "999.99",
		Stock: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(99999), info.Price)
	assert.Equal(t, int32(5), info.Stock)
	assert.True(t, pool.tx.committed)
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateProductReq
		wantErr error
	}{
		{
			name:    "empty name",
			req:     CreateProductReq{Name: "", Price: "10.00"},
			wantErr: e.ErrProductNameRequired,
		},
		{
			name:    "bad price",
			req:     CreateProductReq{Name: "X", Price: "ten dollars"},
			wantErr: e.ErrInvalidPrice,
		},
		{
			name:    "zero price",
			req:     CreateProductReq{Name: "X", Price: "0"},
			wantErr: e.ErrPriceMustBePositive,
		},
		{
			name:    "negative price",
			req:     CreateProductReq{Name: "X", Price: "-5.00"},
			wantErr: e.ErrPriceMustBePositive,
		},
		{
			name:    "negative stock",
			req:     CreateProductReq{Name: "X", Price: "5.00", Stock: -1},
			wantErr: e.ErrNegativeStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewProductUC(newFakeProductRepo(), newFakePool(), newFakeCacheRepo(), noopLogger{})

			_, err := uc.CreateProduct(context.Background(), &tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetProductsInfoCacheHit(t *testing.T) {
	repo := newFakeProductRepo(domain.Product{ID: 1, Name: "DB only", Price: 100, Stock: 1})
	cache := newFakeCacheRepo()
	cache.store[2] = ProductInfo{ID: 2, Name: "Cached", Price: 200, Stock: 2}

	uc := NewProductUC(repo, newFakePool(), cache, noopLogger{})

	res, err := uc.GetProductsInfo(context.Background(), NewGetProductsReq([]int64{1, 2, 3}))

	require.NoError(t, err)
	require.Len(t, res.Products, 2)
	assert.Equal(t, "DB only", res.Products[0].Name)
	assert.Equal(t, "Cached", res.Products[1].Name)
	assert.Equal(t, []int64{3}, res.NotFoundProducts)
}

func TestGetProductsInfoCacheUnavailable(t *testing.T) {
	repo := newFakeProductRepo(domain.Product{ID: 1, Name: "Item", Price: 100, Stock: 1})
	cache := newFakeCacheRepo()
	cache.getErr = assert.AnError

	uc := NewProductUC(repo, newFakePool(), cache, noopLogger{})

	res, err := uc.GetProductsInfo(context.Background(), NewGetProductsReq([]int64{1}))

	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Item", res.Products[0].Name)
}

func TestGetProductsInfoEmptyIDs(t *testing.T) {
	uc := NewProductUC(newFakeProductRepo(), newFakePool(), newFakeCacheRepo(), noopLogger{})

	_, err := uc.GetProductsInfo(context.Background(), NewGetProductsReq(nil))

	assert.ErrorIs(t, err, e.ErrNoProducts)
}

func TestUpdateLowStock(t *testing.T) {
	repo := newFakeProductRepo(
		domain.Product{ID: 1, Name: "Low", Price: 100, Stock: 3},
		domain.Product{ID: 2, Name: "Full", Price: 100, Stock: 50},
	)
	cache := newFakeCacheRepo()
	cache.store[1] = ProductInfo{ID: 1, Name: "Low", Price: 100, Stock: 3}

	uc := NewProductUC(repo, newFakePool(), cache, noopLogger{})

	res, err := uc.UpdateLowStock(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, int32(13), res.Products[0].Stock)
	assert.Equal(t, "Successfully updated 1 low-stock products", res.Message)
	assert.Equal(t, []int64{1}, cache.deleted)
}

func TestUpdateLowStockNothingBelowThreshold(t *testing.T) {
	repo := newFakeProductRepo(domain.Product{ID: 1, Name: "Full", Price: 100, Stock: 50})
	uc := NewProductUC(repo, newFakePool(), newFakeCacheRepo(), noopLogger{})

	res, err := uc.UpdateLowStock(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res.Products)
	assert.Equal(t, "Successfully updated 0 low-stock products", res.Message)
}
