package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a product with an ID", func(t *testing.T) {
		catalog := services.NewCatalogService(store.NewProductStore())

		product, err := catalog.CreateProduct(ctx, services.CreateProductCommand{
			Name: "Milk", Price: 100, Stock: 10, Weight: 0.4,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, "Milk", product.Name)
	})

	t.Run("rejects invalid product data", func(t *testing.T) {
		catalog := services.NewCatalogService(store.NewProductStore())

		_, err := catalog.CreateProduct(ctx, services.CreateProductCommand{
			Name: "", Price: 100, Stock: 10,
		})

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeMissingRequiredField))
	})

	t.Run("lists products in creation order", func(t *testing.T) {
		catalog := services.NewCatalogService(store.NewProductStore())

		for _, name := range []string{"Milk", "Biscuits", "TV"} {
			_, err := catalog.CreateProduct(ctx, services.CreateProductCommand{
				Name: name, Price: 100, Stock: 10,
			})
			require.NoError(t, err)
		}

		products, err := catalog.ListProducts(ctx)

		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, "Milk", products[0].Name)
		assert.Equal(t, "Biscuits", products[1].Name)
		assert.Equal(t, "TV", products[2].Name)
	})

	t.Run("gets a product by ID", func(t *testing.T) {
		catalog := services.NewCatalogService(store.NewProductStore())

		created, err := catalog.CreateProduct(ctx, services.CreateProductCommand{
			Name: "Milk", Price: 100, Stock: 10,
		})
		require.NoError(t, err)

		fetched, err := catalog.GetProduct(ctx, created.ID)

		require.NoError(t, err)
		assert.Same(t, created, fetched)
	})
}

func TestCustomerService(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and fetches a customer", func(t *testing.T) {
		customerService := services.NewCustomerService(store.NewCustomerStore())

		created, err := customerService.CreateCustomer(ctx, services.CreateCustomerCommand{
			Name: "Ahmed", Balance: 50000,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		fetched, err := customerService.GetCustomer(ctx, created.ID)
		require.NoError(t, err)
		assert.Same(t, created, fetched)
	})

	t.Run("rejects a negative balance", func(t *testing.T) {
		customerService := services.NewCustomerService(store.NewCustomerStore())

		_, err := customerService.CreateCustomer(ctx, services.CreateCustomerCommand{
			Name: "Ahmed", Balance: -1,
		})

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNegativeValue))
	})
}
