// Package worker holds the background loops of the checkout service.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
)

// LowStockWorker periodically scans the catalog and flags products whose
// stock has fallen below the configured threshold.
type LowStockWorker struct {
	products  application.ProductStore
	interval  time.Duration
	threshold int
	logger    *slog.Logger
}

func NewLowStockWorker(
	products application.ProductStore,
	interval time.Duration,
	threshold int,
	logger *slog.Logger,
) *LowStockWorker {
	return &LowStockWorker{
		products:  products,
		interval:  interval,
		threshold: threshold,
		logger:    logger,
	}
}

func (w *LowStockWorker) Start(ctx context.Context) {
	w.logger.Info("low stock worker started", "interval", w.interval, "threshold", w.threshold)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if err := w.scanCatalog(ctx); err != nil {
		w.logger.Error("low stock scan failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("low stock worker stopping")
			return
		case <-ticker.C:
			if err := w.scanCatalog(ctx); err != nil {
				w.logger.Error("low stock scan failed", "error", err)
			}
		}
	}
}

func (w *LowStockWorker) scanCatalog(ctx context.Context) error {
	products, err := w.products.List(ctx)
	if err != nil {
		return err
	}

	var flagged int
	for _, p := range products {
		if stock := p.Stock(); stock < w.threshold {
			w.logger.Warn("product low on stock",
				"product", p.Name,
				"stock", stock,
			)
			flagged++
		}
	}

	if flagged > 0 {
		w.logger.Info("low stock scan finished",
			"scanned", len(products),
			"flagged", flagged,
		)
	}

	return nil
}
