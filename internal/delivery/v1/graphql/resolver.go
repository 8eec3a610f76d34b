package graphql

import (
	"strconv"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/graphql-go/graphql"
)

func (r *Resolver) allCustomers(p graphql.ResolveParams) (interface{}, error) {
	filter := &usecase.CustomerFilter{
		NameContains:  optionalStringArg(p, "nameContains"),
		EmailContains: optionalStringArg(p, "emailContains"),
		CreatedAtGte:  optionalTimeArg(p, "createdAtGte"),
		CreatedAtLte:  optionalTimeArg(p, "createdAtLte"),
	}

	customers, err := r.customerUC.ListCustomers(p.Context, filter)
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	return customers, nil
}

func (r *Resolver) allProducts(p graphql.ResolveParams) (interface{}, error) {
	priceGte, err := optionalPriceArg(p, "priceGte")
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	priceLte, err := optionalPriceArg(p, "priceLte")
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	filter := &usecase.ProductFilter{
		NameContains: optionalStringArg(p, "nameContains"),
		PriceGte:     priceGte,
		PriceLte:     priceLte,
		StockGte:     optionalIntArg(p, "stockGte"),
		StockLte:     optionalIntArg(p, "stockLte"),
	}

	products, err := r.productUC.ListProducts(p.Context, filter)
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	return products, nil
}

func (r *Resolver) allOrders(p graphql.ResolveParams) (interface{}, error) {
	totalGte, err := optionalPriceArg(p, "totalAmountGte")
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	totalLte, err := optionalPriceArg(p, "totalAmountLte")
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	filter := &usecase.OrderFilter{
		CustomerEmail:  optionalStringArg(p, "customerEmail"),
		OrderDateGte:   optionalTimeArg(p, "orderDateGte"),
		OrderDateLte:   optionalTimeArg(p, "orderDateLte"),
		TotalAmountGte: totalGte,
		TotalAmountLte: totalLte,
	}

	orders, err := r.orderUC.ListOrders(p.Context, filter)
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	return orders, nil
}

func (r *Resolver) productsByIds(p graphql.ResolveParams) (interface{}, error) {
	ids, err := idListArg(p, "ids")
	if err != nil {
		return nil, err
	}

	res, err := r.productUC.GetProductsInfo(p.Context, usecase.NewGetProductsReq(ids))
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	notFound := make([]string, 0, len(res.NotFoundProducts))
	for _, id := range res.NotFoundProducts {
		notFound = append(notFound, strconv.FormatInt(id, 10))
	}

	return map[string]interface{}{
		"products": res.Products,
		"notFound": notFound,
	}, nil
}

func (r *Resolver) createCustomer(p graphql.ResolveParams) (interface{}, error) {
	name, _ := stringArg(p, "name")
	email, _ := stringArg(p, "email")

	res, err := r.customerUC.CreateCustomer(p.Context, &usecase.CreateCustomerReq{
		Name:  name,
		Email: email,
		Phone: optionalStringArg(p, "phone"),
	})
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	return map[string]interface{}{
		"customer": usecase.NewCustomerInfo(res.Customer),
		"message":  res.Message,
	}, nil
}

func (r *Resolver) bulkCreateCustomers(p graphql.ResolveParams) (interface{}, error) {
	rawInput, ok := p.Args["customers"].([]interface{})
	if !ok {
		return nil, e.ErrNoCustomers
	}

	req := &usecase.BulkCreateCustomersReq{
		Customers: make([]usecase.CreateCustomerReq, 0, len(rawInput)),
	}

	for _, raw := range rawInput {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		cr := usecase.CreateCustomerReq{}

		if v, ok := item["name"].(string); ok {
			cr.Name = v
		}

		if v, ok := item["email"].(string); ok {
			cr.Email = v
		}

		if v, ok := item["phone"].(string); ok {
			cr.Phone = &v
		}

		req.Customers = append(req.Customers, cr)
	}

	res, err := r.customerUC.BulkCreateCustomers(p.Context, req)
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	created := make([]usecase.CustomerInfo, 0, len(res.Created))
	for _, c := range res.Created {
		created = append(created, usecase.NewCustomerInfo(c))
	}

	return map[string]interface{}{
		"customersCreated": created,
		"errors":           res.Errors,
		"message":          res.Message,
	}, nil
}

func (r *Resolver) createProduct(p graphql.ResolveParams) (interface{}, error) {
	name, _ := stringArg(p, "name")
	price, _ := stringArg(p, "price")

	stock := 0
	if v, ok := p.Args["stock"].(int); ok {
		stock = v
	}

	product, err := r.productUC.CreateProduct(p.Context, &usecase.CreateProductReq{
		Name:  name,
		Price: price,
		Stock: int32(stock),
	})
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	return map[string]interface{}{"product": *product}, nil
}

func (r *Resolver) createOrder(p graphql.ResolveParams) (interface{}, error) {
	customerID, err := idArg(p, "customerId")
	if err != nil {
		return nil, err
	}

	productIDs, err := idListArg(p, "productIds")
	if err != nil {
		return nil, err
	}

	order, err := r.orderUC.CreateOrder(p.Context, &usecase.CreateOrderReq{
		CustomerID: customerID,
		ProductIDs: productIDs,
		OrderDate:  optionalTimeArg(p, "orderDate"),
	})
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	return map[string]interface{}{"order": *order}, nil
}

func (r *Resolver) updateLowStockProducts(p graphql.ResolveParams) (interface{}, error) {
	res, err := r.productUC.UpdateLowStock(p.Context)
	if err != nil {
		return nil, apiError(r.logger, err)
	}

	products := make([]usecase.ProductInfo, 0, len(res.Products))
	for i := range res.Products {
		products = append(products, usecase.NewProductInfo(&res.Products[i]))
	}

	return map[string]interface{}{
		"products": products,
		"message":  res.Message,
	}, nil
}
