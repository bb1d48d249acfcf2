package services

import (
	"context"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/google/uuid"
)

type CustomerService struct {
	customers application.CustomerStore
}

func NewCustomerService(customers application.CustomerStore) *CustomerService {
	return &CustomerService{
		customers: customers,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, cmd CreateCustomerCommand) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(cmd.Name, cmd.Balance)
	if err != nil {
		return nil, err
	}
	customer.ID = uuid.New().String()

	if err := s.customers.Put(ctx, customer); err != nil {
		return nil, application.NewInternalError(err)
	}

	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.Get(ctx, id)
}
