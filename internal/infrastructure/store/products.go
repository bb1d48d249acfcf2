// Package store provides the in-memory stores backing the checkout service.
// Persistence is out of scope: entities live for the lifetime of the
// process and are handed out as shared pointers, never copied.
package store

import (
	"context"
	"sync"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

type ProductStore struct {
	mu    sync.RWMutex
	items map[string]*domain.Product
	order []string
}

var _ application.ProductStore = (*ProductStore)(nil)

func NewProductStore() *ProductStore {
	return &ProductStore{
		items: make(map[string]*domain.Product),
	}
}

func (s *ProductStore) Put(ctx context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[product.ID]; !ok {
		s.order = append(s.order, product.ID)
	}
	s.items[product.ID] = product
	return nil
}

func (s *ProductStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.items[id]
	if !ok {
		return nil, domain.NewProductNotFoundError(id)
	}
	return product, nil
}

// List returns every product in insertion order.
func (s *ProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]*domain.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.items[id])
	}
	return products, nil
}
