package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

func respondWithError(w http.ResponseWriter, err error) {
	code := "INTERNAL_ERROR"
	message := err.Error()
	status := http.StatusInternalServerError

	var domainErr *domain.DomainError
	if svcErr, ok := application.IsServiceError(err); ok {
		code = svcErr.Code
		message = svcErr.Message
		status = svcErr.HTTPStatus
	} else if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message

		switch domainErr.Code {
		case domain.ErrCodeInsufficientStock, domain.ErrCodeMissingRequiredField, domain.ErrCodeNegativeValue:
			status = http.StatusBadRequest
		case domain.ErrCodeProductNotFound, domain.ErrCodeCustomerNotFound, domain.ErrCodeCartNotFound:
			status = http.StatusNotFound
		case domain.ErrCodeCartEmpty, domain.ErrCodeProductExpired, domain.ErrCodeOutOfStock, domain.ErrCodeInsufficientBalance:
			status = http.StatusConflict
		default:
			status = http.StatusBadRequest
		}
	}

	respondWithJSON(w, status, &APIError{
		Code:    code,
		Message: message,
	})
}
