package graphql

import (
	"strconv"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
	"github.com/graphql-go/graphql"
)

// Типы API объявляются явно, а не выводятся из моделей хранения:
// граница между схемой и БД остаётся видимой.

func newCustomerType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return strconv.FormatInt(p.Source.(usecase.CustomerInfo).ID, 10), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(usecase.CustomerInfo).Name, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(usecase.CustomerInfo).Email, nil
				},
			},
			"phone": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					phone := p.Source.(usecase.CustomerInfo).Phone
					if phone == nil {
						return nil, nil
					}
					return *phone, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(usecase.CustomerInfo).CreatedAt, nil
				},
			},
		},
	})
}

func newProductType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return strconv.FormatInt(p.Source.(usecase.ProductInfo).ID, 10), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(usecase.ProductInfo).Name, nil
				},
			},
			// Цена отдается десятичной строкой, например "999.99"
			"price": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return usecase.FormatCents(p.Source.(usecase.ProductInfo).Price), nil
				},
			},
			"stock": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(p.Source.(usecase.ProductInfo).Stock), nil
				},
			},
		},
	})
}

func newOrderType(customerType, productType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return strconv.FormatInt(p.Source.(usecase.OrderInfo).ID, 10), nil
				},
			},
			"customer": &graphql.Field{
				Type: graphql.NewNonNull(customerType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(usecase.OrderInfo).Customer, nil
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(productType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(usecase.OrderInfo).Products, nil
				},
			},
			"orderDate": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(usecase.OrderInfo).OrderDate, nil
				},
			},
			"totalAmount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return usecase.FormatCents(p.Source.(usecase.OrderInfo).TotalAmount), nil
				},
			},
		},
	})
}

func newCustomerInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
}
