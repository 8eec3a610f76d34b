package jobs

import (
	"context"

	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logsink"
)

// RestockLogFile — имя лог-файла задания пополнения.
const RestockLogFile = "low_stock_updates_log.txt"

// Restock вызывает мутацию updateLowStockProducts и протоколирует
// каждый пополненный продукт.
type Restock struct {
	api    restocker
	sink   *logsink.Sink
	logger logger.Logger
}

func NewRestock(api restocker, sink *logsink.Sink, logger logger.Logger) *Restock {
	return &Restock{
		api:    api,
		sink:   sink,
		logger: logger,
	}
}

func (r *Restock) Name() string {
	return "restock"
}

func (r *Restock) Run(ctx context.Context) error {
	const op = "Restock.Run"

	res, err := r.api.UpdateLowStockProducts(ctx)
	if err != nil {
		if sinkErr := r.sink.Appendf("Restock failed: %v", err); sinkErr != nil {
			r.logger.Errorf(sinkErr, "restock: failed to write log file")
		}

		return e.Wrap(op, err)
	}

	if err := r.sink.Append(res.Message); err != nil {
		return e.Wrap(op, err)
	}

	for _, p := range res.Products {
		if err := r.sink.Appendf("Updated Product: %s, New Stock: %d", p.Name, p.Stock); err != nil {
			return e.Wrap(op, err)
		}
	}

	r.logger.Infof("restock: updated %d products", len(res.Products))

	return nil
}
