// Package application holds the orchestration layer: the store ports the
// services depend on and the errors they surface.
package application

import (
	"context"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

// ProductStore hands out shared product pointers; products are never copied.
type ProductStore interface {
	Put(ctx context.Context, product *domain.Product) error
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}

type CustomerStore interface {
	Put(ctx context.Context, customer *domain.Customer) error
	Get(ctx context.Context, id string) (*domain.Customer, error)
}

type CartStore interface {
	Put(ctx context.Context, cart *domain.Cart) error
	Get(ctx context.Context, id string) (*domain.Cart, error)
}
