package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rmc/backend/internal/application/finance"
	"github.com/rmc/backend/internal/application/identity"
	"github.com/rmc/backend/internal/application/report"
	"github.com/rmc/backend/internal/application/sales"
	"github.com/rmc/backend/internal/infrastructure/auth"
	"github.com/rmc/backend/internal/infrastructure/cache"
	"github.com/rmc/backend/internal/infrastructure/config"
	"github.com/rmc/backend/internal/infrastructure/logger"
	"github.com/rmc/backend/internal/infrastructure/persistence"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
	"github.com/rmc/backend/internal/interfaces/http/handler"
	"github.com/rmc/backend/internal/interfaces/http/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync(log) }()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("closing database", zap.Error(err))
		}
	}()

	tokens := auth.NewJWTService(cfg.JWT)
	dashboardCache := cache.New(&cfg.Redis)

	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	invoiceRepo := persistence.NewGormSalesInvoiceRepository(db.DB)
	aggregateRepo := persistence.NewGormAggregateRepository(db.DB)
	cashBookRepo := persistence.NewGormCashBookRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)

	authService := identity.NewAuthService(userRepo, tokens, log)
	invoiceService := sales.NewInvoiceService(invoiceRepo, log)
	cashBookService := finance.NewCashBookService(cashBookRepo)
	aggregateService := finance.NewAggregateService(aggregateRepo)
	dashboardService := report.NewDashboardService(dashboardRepo, dashboardCache, cfg.Dashboard.CacheTTL, log)
	reportService := report.NewReportService()

	engine := router.New(cfg, log, tokens,
		handler.NewSystemHandler(db, cfg.App.Name, log),
		handler.NewAuthHandler(authService, log),
		handler.NewCustomerHandler(customerRepo, log),
		handler.NewSalesInvoiceHandler(invoiceService, log),
		handler.NewAggregateHandler(aggregateRepo, aggregateService, log),
		handler.NewCashBookHandler(cashBookRepo, cashBookService, log),
		handler.NewDashboardHandler(dashboardService, log),
		handler.NewReportHandler(reportService, log),

		handler.NewCRUDHandler[models.SalesOrder, *models.SalesOrder](
			"Sales order", "/sales-orders", persistence.NewCRUDRepository[models.SalesOrder](db.DB), log),
		handler.NewCRUDHandler[models.PurchaseOrder, *models.PurchaseOrder](
			"Purchase order", "/purchase-orders", persistence.NewCRUDRepository[models.PurchaseOrder](db.DB), log),
		handler.NewCRUDHandler[models.Quotation, *models.Quotation](
			"Quotation", "/quotations", persistence.NewCRUDRepository[models.Quotation](db.DB), log),
		handler.NewCRUDHandler[models.DeliveryChallan, *models.DeliveryChallan](
			"Delivery challan", "/delivery-challans", persistence.NewCRUDRepository[models.DeliveryChallan](db.DB), log),
		handler.NewCRUDHandler[models.WeightBridgeReport, *models.WeightBridgeReport](
			"Weight bridge report", "/weight-bridge", persistence.NewCRUDRepository[models.WeightBridgeReport](db.DB), log),
		handler.NewCRUDHandler[models.MixDesign, *models.MixDesign](
			"Mix design", "/mix-designs", persistence.NewCRUDRepository[models.MixDesign](db.DB), log),
		handler.NewCRUDHandler[models.Recipe, *models.Recipe](
			"Recipe", "/recipes", persistence.NewCRUDRepository[models.Recipe](db.DB), log),
		handler.NewCRUDHandler[models.CubeTest, *models.CubeTest](
			"Cube test", "/cube-tests", persistence.NewCRUDRepository[models.CubeTest](db.DB), log),
		handler.NewCRUDHandler[models.BatchList, *models.BatchList](
			"Batch list", "/batch-lists", persistence.NewCRUDRepository[models.BatchList](db.DB), log),
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
