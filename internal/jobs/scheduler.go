package jobs

import (
	"context"

	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Scheduler запускает задания по cron-расписаниям.
// Ошибка задания логируется и не останавливает планировщик.
type Scheduler struct {
	cron   *cron.Cron
	logger logger.Logger
}

func NewScheduler(logger logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

func (s *Scheduler) Register(schedule string, job Job) error {
	const op = "Scheduler.Register"

	_, err := s.cron.AddFunc(schedule, func() {
		s.logger.Infof("job %s: started", job.Name())

		if err := job.Run(context.Background()); err != nil {
			s.logger.Errorf(err, "job %s: failed", job.Name())

			return
		}

		s.logger.Infof("job %s: finished", job.Name())
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и дожидается завершения запущенных заданий.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()

	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
