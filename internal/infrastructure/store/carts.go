package store

import (
	"context"
	"sync"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

type CartStore struct {
	mu    sync.RWMutex
	items map[string]*domain.Cart
}

var _ application.CartStore = (*CartStore)(nil)

func NewCartStore() *CartStore {
	return &CartStore{
		items: make(map[string]*domain.Cart),
	}
}

func (s *CartStore) Put(ctx context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[cart.ID] = cart
	return nil
}

func (s *CartStore) Get(ctx context.Context, id string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.items[id]
	if !ok {
		return nil, domain.NewCartNotFoundError(id)
	}
	return cart, nil
}
