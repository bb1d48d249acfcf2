package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

// CheckoutService validates a cart against a customer, totals it, charges
// the balance and decrements stock. Checkout is all-or-nothing: every
// validation happens before the first mutation.
type CheckoutService struct {
	customers        application.CustomerStore
	carts            application.CartStore
	shippingFeePerKg float64
	receipts         io.Writer
	logger           *slog.Logger

	// Serializes settlement. The validate-then-mutate sequence is not
	// atomic on its own and the HTTP surface runs checkouts concurrently.
	mu sync.Mutex
}

func NewCheckoutService(
	customers application.CustomerStore,
	carts application.CartStore,
	shippingFeePerKg float64,
	receipts io.Writer,
	logger *slog.Logger,
) *CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutService{
		customers:        customers,
		carts:            carts,
		shippingFeePerKg: shippingFeePerKg,
		receipts:         receipts,
		logger:           logger,
	}
}

// Checkout resolves the customer and cart by ID and settles the cart.
func (s *CheckoutService) Checkout(ctx context.Context, cmd CheckoutCommand) (*domain.Receipt, error) {
	customer, err := s.customers.Get(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, cmd.CartID)
	if err != nil {
		return nil, err
	}

	return s.CheckoutCart(ctx, customer, cart)
}

// CheckoutCart runs the checkout sequence: empty-cart check, per-item
// validation, totals, affordability, settlement, receipt, cart clear.
// On any failure the customer, the products and the cart are left exactly
// as they were.
func (s *CheckoutService) CheckoutCart(ctx context.Context, customer *domain.Customer, cart *domain.Cart) (*domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart.IsEmpty() {
		return nil, domain.NewCartEmptyError()
	}

	items := cart.Items()

	// Validation pass, in cart order. Required quantities accumulate per
	// product so that a product split across several lines cannot pass
	// item-by-item and then fail mid-settlement.
	required := make(map[*domain.Product]int)
	for _, item := range items {
		p := item.Product
		if p.Expired {
			return nil, domain.NewProductExpiredError(p.Name)
		}
		if p.Stock() < required[p]+item.Quantity {
			return nil, domain.NewOutOfStockError(p.Name)
		}
		required[p] += item.Quantity
	}

	var subtotal, shippingWeight float64
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
		if item.Product.RequiresShipping() {
			shippingWeight += item.Product.Weight * float64(item.Quantity)
		}
	}
	shipping := shippingWeight * s.shippingFeePerKg
	total := subtotal + shipping

	if customer.Balance() < total {
		return nil, domain.NewInsufficientBalanceError()
	}

	// Settlement. The entity mutators re-check their own invariants, but
	// the checks above guarantee they cannot fail here.
	if err := customer.Deduct(total); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Product.ReduceStock(item.Quantity); err != nil {
			return nil, err
		}
	}

	receipt := buildReceipt(items, subtotal, shipping, total, customer.Balance())
	if s.receipts != nil {
		fmt.Fprint(s.receipts, receipt.Render())
	}

	s.logger.Info("checkout completed",
		"customer", customer.Name,
		"items", len(items),
		"total", total,
		"remaining_balance", customer.Balance(),
	)

	cart.Clear()
	return receipt, nil
}

func buildReceipt(items []domain.CartItem, subtotal, shipping, total, remaining float64) *domain.Receipt {
	lines := make([]domain.ReceiptLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.ReceiptLine{
			Quantity:  item.Quantity,
			Product:   item.Product.Name,
			LineTotal: item.Product.Price * float64(item.Quantity),
		})
	}

	return &domain.Receipt{
		Lines:            lines,
		Subtotal:         subtotal,
		Shipping:         shipping,
		Total:            total,
		RemainingBalance: remaining,
	}
}
