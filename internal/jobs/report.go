package jobs

import (
	"context"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logsink"
)

// ReportLogFile — имя лог-файла еженедельного отчета.
const ReportLogFile = "crm_report_log.txt"

// Report собирает еженедельные агрегаты CRM: клиенты, заказы, выручка.
// Задание ходит в БД напрямую, минуя API.
type Report struct {
	reportUC usecase.ReportUC
	sink     *logsink.Sink
	logger   logger.Logger
}

func NewReport(reportUC usecase.ReportUC, sink *logsink.Sink, logger logger.Logger) *Report {
	return &Report{
		reportUC: reportUC,
		sink:     sink,
		logger:   logger,
	}
}

func (r *Report) Name() string {
	return "report"
}

func (r *Report) Run(ctx context.Context) error {
	const op = "Report.Run"

	res, err := r.reportUC.GenerateReport(ctx)
	if err != nil {
		if sinkErr := r.sink.Appendf("Report generation failed: %v", err); sinkErr != nil {
			r.logger.Errorf(sinkErr, "report: failed to write log file")
		}

		return e.Wrap(op, err)
	}

	err = r.sink.Appendf(
		"Report: %d customers, %d orders, %s revenue",
		res.Customers, res.Orders, usecase.FormatCents(res.Revenue),
	)
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
