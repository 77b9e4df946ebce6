package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/finvision/corpledger/internal/adapter/http"
	"github.com/finvision/corpledger/internal/adapter/http/handler"
	postgresRepo "github.com/finvision/corpledger/internal/adapter/repository/postgres"
	redisRepo "github.com/finvision/corpledger/internal/adapter/repository/redis"
	"github.com/finvision/corpledger/internal/infrastructure/config"
	"github.com/finvision/corpledger/internal/infrastructure/logger"
	"github.com/finvision/corpledger/internal/infrastructure/metrics"
	"github.com/finvision/corpledger/internal/infrastructure/postgres"
	"github.com/finvision/corpledger/internal/infrastructure/redis"
	"github.com/finvision/corpledger/internal/usecase"
)

// store is the backend-independent view the server needs.
type store interface {
	usecase.DocumentStore
	Ping(ctx context.Context) error
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	zerolog.SetGlobalLevel(log.Logger.GetLevel())

	ctx := context.Background()

	// Connect the document store
	var (
		docStore store
		closeFn  func()
	)
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		docStore = postgresRepo.NewStore(pool)
		closeFn = pool.Close
		log.Info().Msg("connected to postgres")
	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		docStore = redisRepo.NewStore(client)
		closeFn = func() { client.Close() }
		log.Info().Msg("connected to redis")
	}
	defer closeFn()

	// Initialize use cases
	idGen := postgresRepo.NewULIDGenerator()
	ledgerUC := usecase.NewLedgerUseCase(docStore, idGen)
	closeUC := usecase.NewCloseUseCase(docStore)
	reportUC := usecase.NewReportUseCase(docStore)
	archiveUC := usecase.NewArchiveUseCase(docStore)

	// Run the close check at startup and on a timer; the label guard makes
	// redundant checks no-ops.
	if cfg.CloseOnStart {
		runClose(ctx, closeUC)
	}
	closeTicker := time.NewTicker(cfg.CloseInterval)
	defer closeTicker.Stop()
	go func() {
		for range closeTicker.C {
			runClose(ctx, closeUC)
		}
	}()

	// Initialize handlers
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	companyHandler := handler.NewCompanyHandler(ledgerUC)
	reportHandler := handler.NewReportHandler(reportUC)
	closeHandler := handler.NewCloseHandler(closeUC, archiveUC)
	healthHandler := handler.NewHealthHandler(docStore)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler:  ledgerHandler,
		CompanyHandler: companyHandler,
		ReportHandler:  reportHandler,
		CloseHandler:   closeHandler,
		HealthHandler:  healthHandler,
		Logger:         log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func runClose(ctx context.Context, closeUC *usecase.CloseUseCase) {
	start := time.Now()
	record, closed, err := closeUC.CloseIfDue(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("monthly close failed")
		return
	}
	if closed {
		metrics.ClosesPerformed.Inc()
		metrics.CloseDuration.Observe(time.Since(start).Seconds())
		log.Info().
			Str("period", record.Period).
			Str("ending_balance", record.EndingBalance.String()).
			Msg("monthly close performed")
	}
}
