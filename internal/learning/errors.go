package learning

import (
	"errors"
	"net/http"
)

// Domain errors for learning operations.
var (
	ErrAdjustmentNotFound = errors.New("adjustment not found")
	ErrAdjustmentInactive = errors.New("adjustment is deactivated")
	ErrInvalidField       = errors.New("corrected field is required")
	ErrInvalidSource      = errors.New("unknown feedback source")
)

// MapHTTPStatus maps learning domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrAdjustmentNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrAdjustmentInactive) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidField) || errors.Is(err, ErrInvalidSource) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
