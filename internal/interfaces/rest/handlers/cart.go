package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/go-chi/chi/v5"
)

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CartResponse is the wire shape of a cart; the domain cart keeps its item
// sequence private.
type CartResponse struct {
	ID    string             `json:"id"`
	Items []CartItemResponse `json:"items"`
}

type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
}

func toCartResponse(cart *domain.Cart) CartResponse {
	items := cart.Items()
	resp := CartResponse{
		ID:    cart.ID,
		Items: make([]CartItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, CartItemResponse{
			ProductID: item.Product.ID,
			Product:   item.Product.Name,
			Quantity:  item.Quantity,
		})
	}
	return resp
}

func (h *Handlers) HandleCreateCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.CreateCart(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, toCartResponse(cart))
}

func (h *Handlers) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
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

	cart, err := h.carts.AddItem(r.Context(), services.AddItemCommand{
		CartID:    chi.URLParam(r, "id"),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *Handlers) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *Handlers) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.ClearCart(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, nil)
}
