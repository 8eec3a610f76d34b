package graphql

import (
	"errors"
	"strconv"
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/graphql-go/graphql"
)

var userFacingErrors = []error{
	e.ErrCustomerNameRequired,
	e.ErrInvalidEmail,
	e.ErrDuplicateEmail,
	e.ErrNoCustomers,
	e.ErrProductNameRequired,
	e.ErrInvalidPrice,
	e.ErrPricePrecision,
	e.ErrPriceMustBePositive,
	e.ErrNegativeStock,
	e.ErrNoProducts,
	e.ErrInvalidCustomerID,
	e.ErrInvalidProductIDs,
}

// apiError сводит ошибку цепочки usecase к пользовательскому сообщению.
// Всё, что не является ошибкой валидации, скрывается за общей ошибкой,
// а детали уходят в лог.
func apiError(log logger.Logger, err error) error {
	for _, sentinel := range userFacingErrors {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	log.Errorf(err, "graphql: unexpected resolver error")

	return e.ErrInternalServerError
}

func stringArg(p graphql.ResolveParams, name string) (string, bool) {
	v, ok := p.Args[name].(string)

	return v, ok
}

func optionalStringArg(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}

	return nil
}

func optionalTimeArg(p graphql.ResolveParams, name string) *time.Time {
	if v, ok := p.Args[name].(time.Time); ok {
		return &v
	}

	return nil
}

func optionalIntArg(p graphql.ResolveParams, name string) *int32 {
	if v, ok := p.Args[name].(int); ok {
		n := int32(v)

		return &n
	}

	return nil
}

// optionalPriceArg переводит десятичную строку фильтра в копейки.
func optionalPriceArg(p graphql.ResolveParams, name string) (*int64, error) {
	v, ok := p.Args[name].(string)
	if !ok {
		return nil, nil
	}

	cents, err := usecase.ParsePriceToCents(v)
	if err != nil {
		return nil, err
	}

	return &cents, nil
}

func idArg(p graphql.ResolveParams, name string) (int64, error) {
	raw, ok := p.Args[name].(string)
	if !ok {
		return 0, e.ErrInvalidCustomerID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, e.ErrInvalidCustomerID
	}

	return id, nil
}

func idListArg(p graphql.ResolveParams, name string) ([]int64, error) {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil, e.ErrInvalidProductIDs
	}

	ids := make([]int64, 0, len(raw))

	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, e.ErrInvalidProductIDs
		}

		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, e.ErrInvalidProductIDs
		}

		ids = append(ids, id)
	}

	return ids, nil
}
