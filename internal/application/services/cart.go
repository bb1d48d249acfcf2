package services

import (
	"context"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/google/uuid"
)

// CartService manages carts over the stores. A cart lives for one
// transaction; a successful checkout empties it.
type CartService struct {
	carts    application.CartStore
	products application.ProductStore
}

func NewCartService(carts application.CartStore, products application.ProductStore) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

func (s *CartService) CreateCart(ctx context.Context) (*domain.Cart, error) {
	cart := domain.NewCart()
	cart.ID = uuid.New().String()

	if err := s.carts.Put(ctx, cart); err != nil {
		return nil, application.NewInternalError(err)
	}

	return cart, nil
}

// AddItem resolves the product and appends it to the cart. The stock check
// inside Cart.AddItem is a snapshot only; checkout re-validates.
func (s *CartService) AddItem(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, cmd.CartID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.Get(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(product, cmd.Quantity); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	return s.carts.Get(ctx, id)
}

func (s *CartService) ClearCart(ctx context.Context, id string) error {
	cart, err := s.carts.Get(ctx, id)
	if err != nil {
		return err
	}
	cart.Clear()
	return nil
}
