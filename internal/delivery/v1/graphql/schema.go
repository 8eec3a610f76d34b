package graphql

import (
	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/graphql-go/graphql"
)

// Resolver связывает поля схемы с usecase-слоем.
type Resolver struct {
	customerUC usecase.CustomerUC
	productUC  usecase.ProductUC
	orderUC    usecase.OrderUC
	logger     logger.Logger
}

func NewResolver(
	customerUC usecase.CustomerUC,
	productUC usecase.ProductUC,
	orderUC usecase.OrderUC,
	logger logger.Logger,
) *Resolver {
	return &Resolver{
		customerUC: customerUC,
		productUC:  productUC,
		orderUC:    orderUC,
		logger:     logger,
	}
}

// NewSchema собирает схему API целиком: типы, запросы и мутации.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	customerType := newCustomerType()
	productType := newProductType()
	orderType := newOrderType(customerType, productType)
	customerInput := newCustomerInput()

	createCustomerPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateCustomerPayload",
		Fields: graphql.Fields{
			"customer": &graphql.Field{Type: customerType},
			"message":  &graphql.Field{Type: graphql.String},
		},
	})

	bulkCreateCustomersPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "BulkCreateCustomersPayload",
		Fields: graphql.Fields{
			"customersCreated": &graphql.Field{Type: graphql.NewList(customerType)},
			"errors":           &graphql.Field{Type: graphql.NewList(graphql.String)},
			"message":          &graphql.Field{Type: graphql.String},
		},
	})

	createProductPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateProductPayload",
		Fields: graphql.Fields{
			"product": &graphql.Field{Type: productType},
		},
	})

	createOrderPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateOrderPayload",
		Fields: graphql.Fields{
			"order": &graphql.Field{Type: orderType},
		},
	})

	productsByIdsPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "ProductsByIdsPayload",
		Fields: graphql.Fields{
			"products": &graphql.Field{Type: graphql.NewList(productType)},
			"notFound": &graphql.Field{Type: graphql.NewList(graphql.ID)},
		},
	})

	updateLowStockPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "UpdateLowStockProductsPayload",
		Fields: graphql.Fields{
			"products": &graphql.Field{Type: graphql.NewList(productType)},
			"message":  &graphql.Field{Type: graphql.String},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},
			"allCustomers": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(customerType)),
				Args: graphql.FieldConfigArgument{
					"nameContains":  &graphql.ArgumentConfig{Type: graphql.String},
					"emailContains": &graphql.ArgumentConfig{Type: graphql.String},
					"createdAtGte":  &graphql.ArgumentConfig{Type: graphql.DateTime},
					"createdAtLte":  &graphql.ArgumentConfig{Type: graphql.DateTime},
				},
				Resolve: r.allCustomers,
			},
			"allProducts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(productType)),
				Args: graphql.FieldConfigArgument{
					"nameContains": &graphql.ArgumentConfig{Type: graphql.String},
					"priceGte":     &graphql.ArgumentConfig{Type: graphql.String},
					"priceLte":     &graphql.ArgumentConfig{Type: graphql.String},
					"stockGte":     &graphql.ArgumentConfig{Type: graphql.Int},
					"stockLte":     &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.allProducts,
			},
			"allOrders": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(orderType)),
				Args: graphql.FieldConfigArgument{
					"customerEmail":  &graphql.ArgumentConfig{Type: graphql.String},
					"orderDateGte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
					"orderDateLte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
					"totalAmountGte": &graphql.ArgumentConfig{Type: graphql.String},
					"totalAmountLte": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.allOrders,
			},
			"productsByIds": &graphql.Field{
				Type: graphql.NewNonNull(productsByIdsPayload),
				Args: graphql.FieldConfigArgument{
					"ids": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
					},
				},
				Resolve: r.productsByIds,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: graphql.NewNonNull(createCustomerPayload),
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.createCustomer,
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: graphql.NewNonNull(bulkCreateCustomersPayload),
				Args: graphql.FieldConfigArgument{
					"customers": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerInput))),
					},
				},
				Resolve: r.bulkCreateCustomers,
			},
			"createProduct": &graphql.Field{
				Type: graphql.NewNonNull(createProductPayload),
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"price": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"stock": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: r.createProduct,
			},
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(createOrderPayload),
				Args: graphql.FieldConfigArgument{
					"customerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"productIds": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
					},
					"orderDate": &graphql.ArgumentConfig{Type: graphql.DateTime},
				},
				Resolve: r.createOrder,
			},
			"updateLowStockProducts": &graphql.Field{
				Type:    graphql.NewNonNull(updateLowStockPayload),
				Resolve: r.updateLowStockProducts,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
