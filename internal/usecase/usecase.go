package usecase

import "context"

type CustomerUC interface {
	CreateCustomer(ctx context.Context, req *CreateCustomerReq) (*CreateCustomerRes, error)
	BulkCreateCustomers(ctx context.Context, req *BulkCreateCustomersReq) (*BulkCreateCustomersRes, error)
	ListCustomers(ctx context.Context, filter *CustomerFilter) ([]CustomerInfo, error)
}

type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductInfo, error)
	ListProducts(ctx context.Context, filter *ProductFilter) ([]ProductInfo, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
	UpdateLowStock(ctx context.Context) (*RestockRes, error)
}

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*OrderInfo, error)
	ListOrders(ctx context.Context, filter *OrderFilter) ([]OrderInfo, error)
}

type ReportUC interface {
	GenerateReport(ctx context.Context) (*ReportRes, error)
}
