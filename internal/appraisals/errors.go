package appraisals

import (
	"errors"
	"net/http"
)

// Domain errors for appraisal operations.
var (
	ErrNotFound        = errors.New("appraisal not found")
	ErrDuplicate       = errors.New("appraisal already exists")
	ErrNoImages        = errors.New("at least one image is required")
	ErrInvalidRole     = errors.New("unrecognized image role")
	ErrInvalidImage    = errors.New("image must be a data URI with a supported type")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrPayloadTooLarge = errors.New("combined image payload exceeds the size limit")
)

// MapHTTPStatus maps appraisal domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrPayloadTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrNoImages) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidImage) ||
		errors.Is(err, ErrUnsupportedType) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
