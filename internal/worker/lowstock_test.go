package worker

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStockWorker_ScanCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("flags products below the threshold", func(t *testing.T) {
		products := store.NewProductStore()
		addProduct(t, products, "prod-1", "Milk", 2)
		addProduct(t, products, "prod-2", "Biscuits", 50)

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		w := NewLowStockWorker(products, time.Minute, 5, logger)

		require.NoError(t, w.scanCatalog(ctx))

		out := buf.String()
		assert.Contains(t, out, "product low on stock")
		assert.Contains(t, out, "Milk")
		assert.NotContains(t, out, "Biscuits")
	})

	t.Run("quiet when everything is stocked", func(t *testing.T) {
		products := store.NewProductStore()
		addProduct(t, products, "prod-1", "Milk", 50)

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		w := NewLowStockWorker(products, time.Minute, 5, logger)

		require.NoError(t, w.scanCatalog(ctx))

		assert.NotContains(t, buf.String(), "low on stock")
	})
}

func TestLowStockWorker_StopsOnCancel(t *testing.T) {
	products := store.NewProductStore()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	w := NewLowStockWorker(products, 10*time.Millisecond, 5, logger)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func addProduct(t *testing.T, s *store.ProductStore, id, name string, stock int) {
	t.Helper()
	product, err := domain.NewProduct(name, 100, stock, false, false, 0.4)
	require.NoError(t, err)
	product.ID = id
	require.NoError(t, s.Put(context.Background(), product))
}
