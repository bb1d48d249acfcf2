package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/config"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/store"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/ficmart-checkout/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"shipping_fee_per_kg", cfg.Checkout.ShippingFeePerKg,
	)

	products := store.NewProductStore()
	customers := store.NewCustomerStore()
	carts := store.NewCartStore()

	catalogService := services.NewCatalogService(products)
	customerService := services.NewCustomerService(customers)
	cartService := services.NewCartService(carts, products)
	checkoutService := services.NewCheckoutService(customers, carts, cfg.Checkout.ShippingFeePerKg, os.Stdout, logger)

	h := handlers.NewHandlers(
		catalogService,
		customerService,
		cartService,
		checkoutService,
	)

	handler := middleware.Recovery(logger)(h.Routes())
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	lowStockWorker := worker.NewLowStockWorker(
		products,
		cfg.Worker.Interval,
		cfg.Worker.LowStockThreshold,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go lowStockWorker.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
