package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"arena/internal/lifecycle"
	"arena/internal/pricing"
	"arena/internal/repository"
	"arena/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps core/service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, pricing.ErrUnknownActivity),
		errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidClientID),
		errors.Is(err, service.ErrInvalidFacilityID),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidPaymentID),
		errors.Is(err, service.ErrInvalidStartTime),
		errors.Is(err, service.ErrInvalidPaymentAmount),
		errors.Is(err, service.ErrInvalidPaymentType),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInactiveFacility):
		return http.StatusBadRequest

	// Lifecycle and business-state conflicts
	case errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, lifecycle.ErrInsufficientPayment),
		errors.Is(err, lifecycle.ErrPaymentNotConfirmed),
		errors.Is(err, lifecycle.ErrPaymentMismatch),
		errors.Is(err, service.ErrSlotUnavailable),
		errors.Is(err, service.ErrPaymentAlreadyConfirmed),
		errors.Is(err, service.ErrBookingBusy):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
