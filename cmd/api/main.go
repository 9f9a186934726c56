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

	"github.com/adventureworks/enterprise-api/internal/config"
	"github.com/adventureworks/enterprise-api/internal/handler"
	"github.com/adventureworks/enterprise-api/internal/repository/postgres"
	"github.com/adventureworks/enterprise-api/internal/router"
	"github.com/adventureworks/enterprise-api/internal/service"
	"github.com/adventureworks/enterprise-api/pkg/logger"
	"github.com/adventureworks/enterprise-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	m := metrics.New("adventureworks")
	base := postgres.NewBaseRepository(db, m)

	employeeSvc := service.NewEmployeeService(postgres.NewEmployeeRepository(base), log)
	productSvc := service.NewProductService(postgres.NewProductRepository(base), log)
	orderSvc := service.NewOrderService(postgres.NewOrderRepository(base), log)
	inventorySvc := service.NewInventoryService(postgres.NewInventoryRepository(base), log)
	reportSvc := service.NewReportService(
		postgres.NewReportRepository(base),
		time.Duration(cfg.Reports.CacheTTLSeconds)*time.Second,
		m,
		log,
	)

	engine := router.New(cfg, db, router.Handlers{
		Employee: handler.NewEmployeeHandler(employeeSvc),
		Product:  handler.NewProductHandler(productSvc, inventorySvc),
		Order:    handler.NewOrderHandler(orderSvc),
		Report:   handler.NewReportHandler(reportSvc),
	}, m, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info(fmt.Sprintf("server listening on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
	log.Info("server stopped")
}
