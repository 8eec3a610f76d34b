// Package jobs содержит периодические задания CRM.
// Каждое задание пишет результат в свой append-only лог-файл
// и возвращает ошибку, если выполнить работу не удалось.
package jobs

import (
	"context"
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/infrastructure/crmapi"
)

// Job — единица периодической работы, пригодная и для cron, и для одноразового запуска.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// apiPinger проверяет отзывчивость GraphQL-эндпоинта.
type apiPinger interface {
	Hello(ctx context.Context) (string, error)
}

// restocker запускает пополнение low-stock продуктов через API.
type restocker interface {
	UpdateLowStockProducts(ctx context.Context) (*crmapi.RestockResult, error)
}

// orderFetcher возвращает недавние заказы для напоминаний.
type orderFetcher interface {
	RecentOrders(ctx context.Context, startDate time.Time) ([]crmapi.OrderReminder, error)
}
