package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/domain"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	// LowStockThreshold — порог, ниже которого продукт считается low-stock.
	LowStockThreshold = 10
	// RestockIncrement — на сколько пополняется сток low-stock продукта.
	RestockIncrement = 10
)

// ProductUseCase реализует бизнес-логику управления продуктами.
type ProductUseCase struct {
	productRepo ProductRepository
	dbPool      transaction.Transactional
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	dbPool transaction.Transactional,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		dbPool:      dbPool,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// CreateProduct создает продукт. Цена приходит десятичной строкой; при ошибке
// парсинга или валидации ни одна строка не вставляется.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.CreateProduct"

	var err error
	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}

	price, err := ParsePriceToCents(req.Price)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if price <= 0 {
		return nil, e.Wrap(op, e.ErrPriceMustBePositive)
	}
	if req.Stock < 0 {
		return nil, e.Wrap(op, e.ErrNegativeStock)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err := p.productRepo.Create(ctx, domain.NewProduct(req.Name, price, req.Stock))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewProductInfo(product)
	return &info, nil
}

// ListProducts возвращает продукты по фильтру.
func (p *ProductUseCase) ListProducts(ctx context.Context, filter *ProductFilter) ([]ProductInfo, error) {
	const op = "ProductUseCase.ListProducts"

	products, err := p.productRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]ProductInfo, 0, len(products))
	for i := range products {
		result = append(result, NewProductInfo(&products[i]))
	}

	return result, nil
}

// GetProductsInfo возвращает информацию о продуктах по их идентификаторам.
// Сначала смотрит кэш, промахи добирает из БД и фоном докладывает в кэш.
func (p *ProductUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "ProductUseCase.GetProductsInfo"

	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoProducts)
	}

	cacheProductsMap, err := p.cacheRepo.GetProducts(ctx, req.IDs)
	var nonCacheable []int64
	if err != nil {
		nonCacheable = append(nonCacheable, req.IDs...)
		cacheProductsMap = nil
	} else {
		for _, productID := range req.IDs {
			if _, ok := cacheProductsMap[productID]; !ok {
				nonCacheable = append(nonCacheable, productID)
			}
		}
	}

	var productsInfoFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsInfoFromDB, err = p.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление продуктов в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := p.cacheRepo.SetProducts(bgCtx, productsInfoFromDB); err != nil {
				p.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[int64]ProductInfo, len(productsInfoFromDB))
	for _, info := range productsInfoFromDB {
		dbProductsMap[info.ID] = info
	}

	result := make([]ProductInfo, 0, len(req.IDs))
	notFoundProducts := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := cacheProductsMap[id]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[id]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// UpdateLowStock пополняет сток всех продуктов ниже порога.
// Каждое обновление независимо, отката при частичной ошибке не требуется.
func (p *ProductUseCase) UpdateLowStock(ctx context.Context) (*RestockRes, error) {
	const op = "ProductUseCase.UpdateLowStock"

	updated, err := p.productRepo.RestockBelow(ctx, LowStockThreshold, RestockIncrement)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(updated) > 0 {
		ids := make([]int64, 0, len(updated))
		for i := range updated {
			ids = append(ids, updated[i].ID)
		}
		if err := p.cacheRepo.DeleteProducts(ctx, ids); err != nil {
			p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
		}
	}

	return &RestockRes{
		Products: updated,
		Message:  fmt.Sprintf("Successfully updated %d low-stock products", len(updated)),
	}, nil
}

// ParsePriceToCents преобразует строку вида "599.99" или "600" в центы (int64).
// Отклоняет нечисловые строки и более двух знаков после запятой.
func ParsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Верхняя граница цены, чтобы центы гарантированно помещались в int64
	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// FormatCents рендерит центы обратно в десятичную строку с двумя знаками.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
