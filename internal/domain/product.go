// Package domain encodes the checkout entities and their invariants
package domain

import (
	"encoding/json"
	"sync"
)

// Product is a catalog entry shared by reference across carts and served
// concurrently over HTTP. Identity, price and weight are fixed at creation;
// only the stock counter changes, guarded by the entity's own lock so that
// cart snapshots and worker scans never race settlement.
type Product struct {
	ID      string
	Name    string
	Price   float64
	Expired bool
	Digital bool
	Weight  float64

	mu    sync.Mutex
	stock int
}

func NewProduct(name string, price float64, stock int, expired, digital bool, weight float64) (*Product, error) {
	if name == "" {
		return nil, NewMissingRequiredFieldError("product name")
	}
	if price < 0 {
		return nil, NewNegativeValueError("price")
	}
	if stock < 0 {
		return nil, NewNegativeValueError("stock")
	}
	if weight < 0 {
		return nil, NewNegativeValueError("weight")
	}

	return &Product{
		Name:    name,
		Price:   price,
		stock:   stock,
		Expired: expired,
		Digital: digital,
		Weight:  weight,
	}, nil
}

// Stock returns the current stock count.
func (p *Product) Stock() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stock
}

// ReduceStock decrements the stock counter. Stock never goes negative;
// asking for more than is available is an error and leaves stock untouched.
func (p *Product) ReduceStock(amount int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if amount > p.stock {
		return NewInsufficientStockError(p.Name)
	}
	p.stock -= amount
	return nil
}

// RequiresShipping reports whether the product needs physical delivery.
func (p *Product) RequiresShipping() bool {
	return !p.Digital
}

func (p *Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string  `json:"id,omitempty"`
		Name    string  `json:"name"`
		Price   float64 `json:"price"`
		Stock   int     `json:"stock"`
		Expired bool    `json:"expired"`
		Digital bool    `json:"digital"`
		Weight  float64 `json:"weight"`
	}{p.ID, p.Name, p.Price, p.Stock(), p.Expired, p.Digital, p.Weight})
}
