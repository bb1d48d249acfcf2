package domain

import (
	"encoding/json"
	"sync"
)

// Customer holds a spendable balance behind the entity's own lock; only a
// successful checkout deducts from it, but HTTP reads happen concurrently.
// The balance never goes negative.
type Customer struct {
	ID   string
	Name string

	mu      sync.Mutex
	balance float64
}

func NewCustomer(name string, balance float64) (*Customer, error) {
	if name == "" {
		return nil, NewMissingRequiredFieldError("customer name")
	}
	if balance < 0 {
		return nil, NewNegativeValueError("balance")
	}

	return &Customer{
		Name:    name,
		balance: balance,
	}, nil
}

// Balance returns the current spendable balance.
func (c *Customer) Balance() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance
}

// Deduct takes amount off the balance. Deducting beyond the balance is an
// error and leaves the balance untouched.
func (c *Customer) Deduct(amount float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.balance < amount {
		return NewInsufficientBalanceError()
	}
	c.balance -= amount
	return nil
}

func (c *Customer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string  `json:"id,omitempty"`
		Name    string  `json:"name"`
		Balance float64 `json:"balance"`
	}{c.ID, c.Name, c.Balance()})
}
