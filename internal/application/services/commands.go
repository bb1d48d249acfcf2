package services

type CreateProductCommand struct {
	Name    string
	Price   float64
	Stock   int
	Expired bool
	Digital bool
	Weight  float64
}

type CreateCustomerCommand struct {
	Name    string
	Balance float64
}

type AddItemCommand struct {
	CartID    string
	ProductID string
	Quantity  int
}

type CheckoutCommand struct {
	CustomerID string
	CartID     string
}
