package converter

import "github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"

// ProductInfoRedisModel — JSON-представление продукта в кэше.
type ProductInfoRedisModel struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int32  `json:"stock"`
}

// ProductInfoConverter преобразует ProductInfo между usecase и моделью Redis.
type ProductInfoConverter interface {
	ToRedisModel(info usecase.ProductInfo) ProductInfoRedisModel
	ToArrRedisModel(infos []usecase.ProductInfo) []ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
}

type ProductInfoConverterImpl struct{}

func NewProductInfoConverterImpl() *ProductInfoConverterImpl {
	return &ProductInfoConverterImpl{}
}

func (c *ProductInfoConverterImpl) ToRedisModel(info usecase.ProductInfo) ProductInfoRedisModel {
	return ProductInfoRedisModel{
		ID:    info.ID,
		Name:  info.Name,
		Price: info.Price,
		Stock: info.Stock,
	}
}

func (c *ProductInfoConverterImpl) ToArrRedisModel(infos []usecase.ProductInfo) []ProductInfoRedisModel {
	models := make([]ProductInfoRedisModel, 0, len(infos))
	for _, info := range infos {
		models = append(models, c.ToRedisModel(info))
	}
	return models
}

func (c *ProductInfoConverterImpl) ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo {
	if model == nil {
		return nil
	}
	return &usecase.ProductInfo{
		ID:    model.ID,
		Name:  model.Name,
		Price: model.Price,
		Stock: model.Stock,
	}
}
