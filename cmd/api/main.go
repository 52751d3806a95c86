package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	activityHttp "audit-activity-service/internal/activity/adapters/http/fiber"
	activityUsecase "audit-activity-service/internal/activity/core/usecase"
	"audit-activity-service/internal/auditapi"
	auditsHttp "audit-activity-service/internal/audits/adapters/http/fiber"
	auditsUsecase "audit-activity-service/internal/audits/core/usecase"
	"audit-activity-service/internal/config"
	"audit-activity-service/internal/logger"
	"audit-activity-service/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "audit-activity-service/docs"
)

func main() {
	// Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	loc, err := cfg.Activity.Location()
	if err != nil {
		zl.Fatal("invalid timezone", zap.Error(err))
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	activityMetrics := observability.NewActivityMetrics(reg)

	// Audit API client, shared by both contexts
	client := auditapi.NewClient(cfg.AuditAPI, zl)

	// Usecases
	aggregateUC := activityUsecase.NewAggregateActivityUseCase(client, activityUsecase.Settings{
		DefaultWindowDays:  cfg.Activity.WindowDays,
		MaxWindowDays:      cfg.Activity.MaxWindowDays,
		DayQueryLimit:      cfg.Activity.DayQueryLimit,
		MaxParallelQueries: cfg.Activity.MaxParallelQueries,
		Location:           loc,
	}, zl, activityUsecase.WithObserver(activityMetrics))
	refresher := activityUsecase.NewRefresher(aggregateUC)
	listAuditsUC := auditsUsecase.NewListAuditsUseCase(client, cfg.Audits.DefaultLimit, cfg.Audits.MaxLimit)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		DisableStartupMessage: true,
	})
	app.Use(requestid.New())
	app.Use(recover.New())

	// activity endpoints
	activityHandler := activityHttp.NewActivityHandler(refresher, zl)
	app.Get("/activity", activityHandler.GetActivity)

	// audits endpoints
	auditHandler := auditsHttp.NewAuditHandler(listAuditsUC, zl)
	app.Get("/audits", auditHandler.ListAudits)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/metrics", observability.Handler(reg))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			zl.Error("fiber stopped", zap.Error(err))
		}
	}()
	zl.Info("server started",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("audit_api", cfg.AuditAPI.BaseURL),
		zap.Int("window_days", cfg.Activity.WindowDays),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		zl.Error("fiber shutdown error", zap.Error(err))
	}
	zl.Info("server exiting")
}
