package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/garisonmike/alx-backend-graphql-crm/internal/cfg"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/infrastructure/crmapi"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/jobs"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/repository/pgdb"
	pgdbConv "github.com/garisonmike/alx-backend-graphql-crm/internal/repository/pgdb/converter"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/closer"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logsink"
)

// RunJobs запускает раннер заданий. При пустом jobName все задания
// регистрируются в cron-планировщике и процесс живет до сигнала;
// при заданном имени задание выполняется один раз, ошибка — код выхода 1.
func RunJobs(jobName string) {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	cl := closer.NewCloser(0)
	cl.Add(func(_ context.Context) error {
		db.Close()

		return nil
	})

	customerRepo := pgdb.NewCustomerRepo(db.Pool, pgdbConv.NewCustomerConverterImpl())
	orderRepo := pgdb.NewOrderRepo(db.Pool, pgdbConv.NewOrderConverterImpl())
	reportUC := usecase.NewReportUC(customerRepo, orderRepo, logger)

	api := crmapi.NewClient(cfg.Api, logger)

	heartbeat := jobs.NewHeartbeat(api, logsink.New(cfg.Jobs.LogFile(jobs.HeartbeatLogFile)), logger)
	restock := jobs.NewRestock(api, logsink.New(cfg.Jobs.LogFile(jobs.RestockLogFile)), logger)
	report := jobs.NewReport(reportUC, logsink.New(cfg.Jobs.LogFile(jobs.ReportLogFile)), logger)
	reminders := jobs.NewReminders(
		api, cfg.Jobs.ReminderWindow,
		logsink.New(cfg.Jobs.LogFile(jobs.RemindersLogFile)), logger,
	)

	if jobName != "" {
		runOnce(jobName, []jobs.Job{heartbeat, restock, report, reminders}, cl, logger)

		return
	}

	scheduler := jobs.NewScheduler(logger)
	cl.Add(scheduler.Stop)

	schedules := []struct {
		spec string
		job  jobs.Job
	}{
		{cfg.Jobs.HeartbeatSchedule, heartbeat},
		{cfg.Jobs.LowStockSchedule, restock},
		{cfg.Jobs.ReportSchedule, report},
		{cfg.Jobs.RemindersSchedule, reminders},
	}

	for _, s := range schedules {
		if err := scheduler.Register(s.spec, s.job); err != nil {
			logger.Errorf(err, "failed to register job %s", s.job.Name())
			os.Exit(1)
		}
	}

	scheduler.Start()
	logger.Infof("job scheduler started")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	<-shutdown

	logger.Infof("Received shutdown signal, stopping gracefully...")
	shutdownAll(cl, logger)
}

func runOnce(jobName string, all []jobs.Job, cl *closer.Closer, logger logger.Logger) {
	var target jobs.Job

	for _, job := range all {
		if job.Name() == jobName {
			target = job

			break
		}
	}

	if target == nil {
		logger.Warnf("unknown job %q", jobName)
		shutdownAll(cl, logger)
		os.Exit(1)
	}

	err := target.Run(context.Background())
	shutdownAll(cl, logger)

	if err != nil {
		logger.Errorf(err, "job %s failed", jobName)
		os.Exit(1)
	}

	logger.Infof("job %s finished", jobName)
}

func shutdownAll(cl *closer.Closer, logger logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := cl.Close(ctx); err != nil {
		logger.Warnf("shutdown error: %v", err)
	}
}
