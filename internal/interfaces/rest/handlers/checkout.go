package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

type CheckoutRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	CartID     string `json:"cart_id" validate:"required"`
}

// HandleCheckout settles a cart against a customer and returns the receipt.
// Failures map to 404 (unknown customer/cart) or 409 (empty cart, expired
// product, out of stock, insufficient balance).
func (h *Handlers) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, &domain.DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "invalid request body",
			Err:     err,
		})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, &domain.DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		})
		return
	}

	receipt, err := h.checkout.Checkout(r.Context(), services.CheckoutCommand{
		CustomerID: req.CustomerID,
		CartID:     req.CartID,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, receipt)
}
