package services

import (
	"context"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/google/uuid"
)

// CatalogService creates and serves products. Products are created once at
// catalog setup and never deleted; stock only moves through checkout.
type CatalogService struct {
	products application.ProductStore
}

func NewCatalogService(products application.ProductStore) *CatalogService {
	return &CatalogService{
		products: products,
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	product, err := domain.NewProduct(cmd.Name, cmd.Price, cmd.Stock, cmd.Expired, cmd.Digital, cmd.Weight)
	if err != nil {
		return nil, err
	}
	product.ID = uuid.New().String()

	if err := s.products.Put(ctx, product); err != nil {
		return nil, application.NewInternalError(err)
	}

	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}
