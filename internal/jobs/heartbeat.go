package jobs

import (
	"context"

	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logsink"
)

// HeartbeatLogFile — имя лог-файла heartbeat-задания.
const HeartbeatLogFile = "crm_heartbeat_log.txt"

// Heartbeat подтверждает живость CRM и дополнительно
// пробует GraphQL-эндпоинт запросом hello.
type Heartbeat struct {
	api    apiPinger
	sink   *logsink.Sink
	logger logger.Logger
}

func NewHeartbeat(api apiPinger, sink *logsink.Sink, logger logger.Logger) *Heartbeat {
	return &Heartbeat{
		api:    api,
		sink:   sink,
		logger: logger,
	}
}

func (h *Heartbeat) Name() string {
	return "heartbeat"
}

// Run пишет строку живости всегда; недоступность эндпоинта
// фиксируется в логе, но самим заданием ошибкой не считается.
func (h *Heartbeat) Run(ctx context.Context) error {
	const op = "Heartbeat.Run"

	if err := h.sink.Append("CRM is alive"); err != nil {
		return e.Wrap(op, err)
	}

	if _, err := h.api.Hello(ctx); err != nil {
		h.logger.Warnf("heartbeat: graphql endpoint check failed: %v", err)

		if err := h.sink.Appendf("GraphQL endpoint unavailable: %v", err); err != nil {
			return e.Wrap(op, err)
		}

		return nil
	}

	if err := h.sink.Append("GraphQL endpoint responsive"); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
