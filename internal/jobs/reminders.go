package jobs

import (
	"context"
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logsink"
)

// RemindersLogFile — имя лог-файла напоминаний о заказах.
const RemindersLogFile = "order_reminders_log.txt"

// Reminders находит заказы за последнее окно времени
// и пишет по каждому строку-напоминание.
type Reminders struct {
	api    orderFetcher
	window time.Duration
	sink   *logsink.Sink
	logger logger.Logger
	now    func() time.Time
}

func NewReminders(api orderFetcher, window time.Duration, sink *logsink.Sink, logger logger.Logger) *Reminders {
	return &Reminders{
		api:    api,
		window: window,
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

func (r *Reminders) Name() string {
	return "reminders"
}

// Run пишет напоминание по каждому недавнему заказу; ошибка запроса
// фиксируется в логе, но самим заданием ошибкой не считается.
func (r *Reminders) Run(ctx context.Context) error {
	const op = "Reminders.Run"

	startDate := r.now().Add(-r.window)

	orders, err := r.api.RecentOrders(ctx, startDate)
	if err != nil {
		r.logger.Warnf("reminders: recent orders query failed: %v", err)

		if err := r.sink.Appendf("Error processing reminders: %v", err); err != nil {
			return e.Wrap(op, err)
		}

		return nil
	}

	if len(orders) == 0 {
		if err := r.sink.Append("No pending orders found in the last 7 days."); err != nil {
			return e.Wrap(op, err)
		}

		r.logger.Infof("Order reminders processed!")

		return nil
	}

	for _, order := range orders {
		err := r.sink.Appendf("Reminder: Order ID %s, Customer: %s", order.ID, order.CustomerEmail)
		if err != nil {
			return e.Wrap(op, err)
		}
	}

	r.logger.Infof("Order reminders processed!")

	return nil
}
