package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/covergrid/insurance-service/internal/application/usecase"
	"github.com/covergrid/insurance-service/internal/domain/service"
	"github.com/covergrid/insurance-service/internal/infrastructure/config"
	"github.com/covergrid/insurance-service/internal/infrastructure/kafka"
	pgRepo "github.com/covergrid/insurance-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/covergrid/insurance-service/internal/presentation/grpc"
	"github.com/covergrid/insurance-service/internal/presentation/rest"
	pkgkafka "github.com/covergrid/insurance-service/pkg/kafka"
	"github.com/covergrid/insurance-service/pkg/observability"
	pkgpostgres "github.com/covergrid/insurance-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting insurance-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
		Port:        cfg.HTTPPort,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without them", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(context.Background()) }()
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	profileRepo := pgRepo.NewRiskProfileRepo(pool)
	policyRepo := pgRepo.NewPolicyRepo(pool)
	claimRepo := pgRepo.NewClaimRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.EventsTopic, logger)

	// Domain services.
	engine := service.NewRiskScoringEngine(service.DefaultScoringTables())
	calculator := service.NewPremiumCalculator(service.DefaultRateTable())
	analyzer := service.NewFraudAnalyzer()

	// Wire use cases.
	assessRiskUC := usecase.NewAssessRiskUseCase(profileRepo, publisher, engine)
	issuePolicyUC := usecase.NewIssuePolicyUseCase(profileRepo, policyRepo, publisher, calculator)
	cancelPolicyUC := usecase.NewCancelPolicyUseCase(policyRepo, publisher)
	getPolicyUC := usecase.NewGetPolicyUseCase(policyRepo)
	listPoliciesUC := usecase.NewListPoliciesUseCase(policyRepo)
	submitClaimUC := usecase.NewSubmitClaimUseCase(policyRepo, claimRepo, publisher, analyzer)
	reviewClaimUC := usecase.NewReviewClaimUseCase(claimRepo, publisher)
	getClaimUC := usecase.NewGetClaimUseCase(claimRepo)
	listClaimsUC := usecase.NewListClaimsUseCase(claimRepo)

	// gRPC server.
	handler := grpcPresentation.NewInsuranceServiceHandler(
		assessRiskUC, issuePolicyUC, cancelPolicyUC, getPolicyUC, listPoliciesUC,
		submitClaimUC, reviewClaimUC, getClaimUC, listClaimsUC,
		logger,
	)
	grpcServer := grpcPresentation.NewServer(handler, cfg.GRPCAddr(), logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadyCheck{
		"database": func(ctx context.Context) error { return databaseCheck(ctx, pool) },
	})
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("insurance-service stopped")
}

func databaseCheck(ctx context.Context, pool *pgxpool.Pool) error {
	return pkgpostgres.HealthCheck(ctx, pool)
}
