package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business rule violation
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeCartEmpty            = "CART_EMPTY"
	ErrCodeProductExpired       = "PRODUCT_EXPIRED"
	ErrCodeOutOfStock           = "OUT_OF_STOCK"
	ErrCodeInsufficientStock    = "INSUFFICIENT_STOCK"
	ErrCodeInsufficientBalance  = "INSUFFICIENT_BALANCE"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeCustomerNotFound     = "CUSTOMER_NOT_FOUND"
	ErrCodeCartNotFound         = "CART_NOT_FOUND"
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeNegativeValue        = "NEGATIVE_VALUE"
)

func NewCartEmptyError() *DomainError {
	return &DomainError{
		Code:    ErrCodeCartEmpty,
		Message: "Cart is empty",
	}
}

func NewProductExpiredError(name string) *DomainError {
	return &DomainError{
		Code:    ErrCodeProductExpired,
		Message: fmt.Sprintf("%s is expired", name),
	}
}

// NewOutOfStockError is the checkout-time stock failure; NewInsufficientStockError
// is the mutation-time counterpart raised by the entities themselves.
func NewOutOfStockError(name string) *DomainError {
	return &DomainError{
		Code:    ErrCodeOutOfStock,
		Message: fmt.Sprintf("%s is out of stock", name),
	}
}

func NewInsufficientStockError(name string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInsufficientStock,
		Message: fmt.Sprintf("Not enough stock for %s", name),
	}
}

func NewInsufficientBalanceError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInsufficientBalance,
		Message: "Insufficient balance",
	}
}

func NewProductNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeProductNotFound,
		Message: fmt.Sprintf("product with ID %s not found", id),
	}
}

func NewCustomerNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCustomerNotFound,
		Message: fmt.Sprintf("customer with ID %s not found", id),
	}
}

func NewCartNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCartNotFound,
		Message: fmt.Sprintf("cart with ID %s not found", id),
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewNegativeValueError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeNegativeValue,
		Message: fmt.Sprintf("%s cannot be negative", field),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
