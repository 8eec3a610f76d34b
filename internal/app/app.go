package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/garisonmike/alx-backend-graphql-crm/internal/cfg"
	gql "github.com/garisonmike/alx-backend-graphql-crm/internal/delivery/v1/graphql"
	v1Http "github.com/garisonmike/alx-backend-graphql-crm/internal/delivery/v1/http"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/infrastructure/kafka"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/repository/pgdb"
	pgdbConv "github.com/garisonmike/alx-backend-graphql-crm/internal/repository/pgdb/converter"
	redisRepo "github.com/garisonmike/alx-backend-graphql-crm/internal/repository/redis"
	redisConv "github.com/garisonmike/alx-backend-graphql-crm/internal/repository/redis/converter"
	"github.com/garisonmike/alx-backend-graphql-crm/internal/usecase"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/clients"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// Run поднимает GraphQL API: БД с миграциями, Redis-кеш, Kafka-продюсер
// с outbox-воркером, usecase-слой и HTTP-сервер.
func Run() {
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

	custConv := pgdbConv.NewCustomerConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	ordConv := pgdbConv.NewOrderConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	customerRepo := pgdb.NewCustomerRepo(db.Pool, custConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, ordConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	cacheRepo := redisRepo.NewCacheRepo(redisClient, infoConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	outboxWorker.Start(workerCtx)

	customerUC := usecase.NewCustomerUC(customerRepo, db.Pool, logger)
	productUC := usecase.NewProductUC(productRepo, db.Pool, cacheRepo, logger)
	orderUC := usecase.NewOrderUC(customerRepo, productRepo, orderRepo, outboxRepo, db.Pool, logger)

	resolver := gql.NewResolver(customerUC, productUC, orderUC, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	if err := router.Init(resolver); err != nil {
		logger.Errorf(err, "failed to build graphql schema")
		os.Exit(1)
	}

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	workerCancel()
	outboxWorker.Stop()
	logger.Infof("outbox worker stopped")

	if err := producer.Close(); err != nil {
		logger.Warnf("Kafka producer close error: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Client.Close(); err != nil {
			logger.Warnf("Redis close error: %v", err)
		}
	}

	if db != nil {
		db.Close()
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
