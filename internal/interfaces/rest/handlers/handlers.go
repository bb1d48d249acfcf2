// Package handlers exposes the checkout service over HTTP.
package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, cmd services.CreateProductCommand) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, cmd services.CreateCustomerCommand) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

type CartService interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, cmd services.AddItemCommand) (*domain.Cart, error)
	GetCart(ctx context.Context, id string) (*domain.Cart, error)
	ClearCart(ctx context.Context, id string) error
}

type CheckoutService interface {
	Checkout(ctx context.Context, cmd services.CheckoutCommand) (*domain.Receipt, error)
}

type Handlers struct {
	catalog   CatalogService
	customers CustomerService
	carts     CartService
	checkout  CheckoutService
	validate  *validator.Validate
}

func NewHandlers(
	catalog CatalogService,
	customers CustomerService,
	carts CartService,
	checkout CheckoutService,
) *Handlers {
	return &Handlers{
		catalog:   catalog,
		customers: customers,
		carts:     carts,
		checkout:  checkout,
		validate:  validator.New(),
	}
}

// Routes builds the HTTP router for the checkout service.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.HandleCreateProduct)
		r.Get("/", h.HandleListProducts)
		r.Get("/{id}", h.HandleGetProduct)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.HandleCreateCustomer)
		r.Get("/{id}", h.HandleGetCustomer)
	})

	r.Route("/carts", func(r chi.Router) {
		r.Post("/", h.HandleCreateCart)
		r.Get("/{id}", h.HandleGetCart)
		r.Post("/{id}/items", h.HandleAddItem)
		r.Delete("/{id}/items", h.HandleClearCart)
	})

	r.Post("/checkout", h.HandleCheckout)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
