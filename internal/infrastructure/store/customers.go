package store

import (
	"context"
	"sync"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

type CustomerStore struct {
	mu    sync.RWMutex
	items map[string]*domain.Customer
}

var _ application.CustomerStore = (*CustomerStore)(nil)

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{
		items: make(map[string]*domain.Customer),
	}
}

func (s *CustomerStore) Put(ctx context.Context, customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[customer.ID] = customer
	return nil
}

func (s *CustomerStore) Get(ctx context.Context, id string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	customer, ok := s.items[id]
	if !ok {
		return nil, domain.NewCustomerNotFoundError(id)
	}
	return customer, nil
}
