package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/go-chi/chi/v5"
)

type CreateProductRequest struct {
	Name    string  `json:"name" validate:"required"`
	Price   float64 `json:"price" validate:"gte=0"`
	Stock   int     `json:"stock" validate:"gte=0"`
	Expired bool    `json:"expired"`
	Digital bool    `json:"digital"`
	Weight  float64 `json:"weight" validate:"gte=0"`
}

// HandleCreateProduct registers a new catalog entry.
func (h *Handlers) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
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

	product, err := h.catalog.CreateProduct(r.Context(), services.CreateProductCommand{
		Name:    req.Name,
		Price:   req.Price,
		Stock:   req.Stock,
		Expired: req.Expired,
		Digital: req.Digital,
		Weight:  req.Weight,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, product)
}

func (h *Handlers) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *Handlers) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}
