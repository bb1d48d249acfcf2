package domain

import (
	"slices"
	"sync"
)

// CartItem pairs a product with a requested quantity. The product pointer
// is shared with the catalog, never copied.
type CartItem struct {
	Product  *Product
	Quantity int
}

// Cart accumulates items in insertion order. It owns its item sequence,
// guards it with its own lock, and callers only ever see copies of it.
type Cart struct {
	ID string

	mu    sync.Mutex
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem appends a line to the cart after checking the stock snapshot at
// add time. The check does not reserve stock and can go stale before
// checkout; checkout re-validates against current stock and is the
// authoritative check.
func (c *Cart) AddItem(product *Product, quantity int) error {
	if product.Stock() < quantity {
		return NewInsufficientStockError(product.Name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, CartItem{Product: product, Quantity: quantity})
	return nil
}

// Items returns a copy of the item sequence in insertion order.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}
