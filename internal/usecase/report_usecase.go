package usecase

import (
	"context"

	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
)

// ReportUseCase считает агрегаты CRM для еженедельного отчета.
type ReportUseCase struct {
	customerRepo CustomerRepository
	orderRepo    OrderRepository
	logger       logger.Logger
}

func NewReportUC(customerRepo CustomerRepository, orderRepo OrderRepository, logger logger.Logger) *ReportUseCase {
	return &ReportUseCase{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// GenerateReport возвращает количество клиентов, количество заказов и
// суммарную выручку по всем заказам.
func (r *ReportUseCase) GenerateReport(ctx context.Context) (*ReportRes, error) {
	const op = "ReportUseCase.GenerateReport"

	customers, err := r.customerRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	stats, err := r.orderRepo.Stats(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ReportRes{
		Customers: customers,
		Orders:    stats.Orders,
		Revenue:   stats.Revenue,
	}, nil
}
