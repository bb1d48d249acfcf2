// Command demo runs the scripted checkout scenarios against an in-process
// checkout service, printing receipts and errors to the console. It always
// exits 0; scenario failures are reported, not fatal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/config"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Keep stdout clean for receipts; only errors go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	checkout := services.NewCheckoutService(nil, nil, cfg.Checkout.ShippingFeePerKg, os.Stdout, logger)

	milk := mustProduct("Milk", 100, 10, false, false, 0.4)
	biscuits := mustProduct("Biscuits", 150, 5, false, false, 0.7)
	tv := mustProduct("TV", 20000, 3, false, false, 15.5)
	mobile := mustProduct("Mobile", 15000, 8, false, false, 0)
	scratchCard := mustProduct("Scratch Card", 50, 100, false, true, 0)

	ahmed, err := domain.NewCustomer("Ahmed", 50000)
	if err != nil {
		slog.Error("failed to create customer", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	scenarios := []func() error{
		func() error {
			cart := domain.NewCart()
			if err := cart.AddItem(milk, 2); err != nil {
				return err
			}
			if err := cart.AddItem(biscuits, 1); err != nil {
				return err
			}
			_, err := checkout.CheckoutCart(ctx, ahmed, cart)
			return err
		},
		func() error {
			cart := domain.NewCart()
			if err := cart.AddItem(scratchCard, 3); err != nil {
				return err
			}
			if err := cart.AddItem(mobile, 1); err != nil {
				return err
			}
			_, err := checkout.CheckoutCart(ctx, ahmed, cart)
			return err
		},
		func() error {
			expiredMilk := mustProduct("Expired Milk", 100, 5, true, false, 0.4)
			cart := domain.NewCart()
			if err := cart.AddItem(expiredMilk, 1); err != nil {
				return err
			}
			_, err := checkout.CheckoutCart(ctx, ahmed, cart)
			return err
		},
		func() error {
			cart := domain.NewCart()
			if err := cart.AddItem(tv, 3); err != nil {
				return err
			}
			_, err := checkout.CheckoutCart(ctx, ahmed, cart)
			return err
		},
		func() error {
			cart := domain.NewCart()
			_, err := checkout.CheckoutCart(ctx, ahmed, cart)
			return err
		},
	}

	for i, scenario := range scenarios {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("== Test Case %d ==\n", i+1)
		if err := scenario(); err != nil {
			fmt.Printf("Error: %s\n", err)
		}
	}
}

func mustProduct(name string, price float64, stock int, expired, digital bool, weight float64) *domain.Product {
	product, err := domain.NewProduct(name, price, stock, expired, digital, weight)
	if err != nil {
		slog.Error("failed to create product", "product", name, "error", err)
		os.Exit(1)
	}
	return product
}
