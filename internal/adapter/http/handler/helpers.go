package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finvision/corpledger/internal/adapter/http/dto"
	"github.com/finvision/corpledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrArchiveNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrEmptyCategory),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrEmptyDepartmentName),
		errors.Is(err, domain.ErrEmptyTaxRuleName),
		errors.Is(err, domain.ErrNegativeRate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCorruptDocument),
		errors.Is(err, domain.ErrUnsupportedSchema):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
