package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"arena/internal/domain"
	"arena/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	ClientID     string    `json:"client_id"`
	FacilityID   string    `json:"facility_id"`
	Activity     string    `json:"activity"`
	Duration     float64   `json:"duration"`
	Participants int       `json:"participants"`
	StartsAt     time.Time `json:"starts_at"`
}

// CancelBookingRequest is the HTTP request body for cancelling a booking.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// BookingResponse is the HTTP response for booking data.
type BookingResponse struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	FacilityID       string    `json:"facility_id"`
	Activity         string    `json:"activity"`
	Duration         string    `json:"duration"`
	Participants     int       `json:"participants"`
	TotalPrice       string    `json:"total_price"`
	DepositAmount    string    `json:"deposit_amount"`
	RemainingAmount  string    `json:"remaining_amount"`
	Currency         string    `json:"currency"`
	DepositPaid      bool      `json:"deposit_paid"`
	FinalPaymentPaid bool      `json:"final_payment_paid"`
	Status           string    `json:"status"`
	StartsAt         time.Time `json:"starts_at"`
	EndsAt           time.Time `json:"ends_at"`
	CancelReason     string    `json:"cancel_reason,omitempty"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		ClientID:         b.ClientID,
		FacilityID:       b.FacilityID,
		Activity:         string(b.Activity),
		Duration:         b.Duration.String(),
		Participants:     b.Participants,
		TotalPrice:       b.TotalPrice.String(),
		DepositAmount:    b.DepositAmount.String(),
		RemainingAmount:  b.RemainingAmount.String(),
		Currency:         b.Currency,
		DepositPaid:      b.DepositPaid,
		FinalPaymentPaid: b.FinalPaymentPaid,
		Status:           string(b.Status),
		StartsAt:         b.StartsAt,
		EndsAt:           b.EndsAt,
		CancelReason:     b.CancelReason,
	}
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		ClientID:     req.ClientID,
		FacilityID:   req.FacilityID,
		Activity:     domain.ActivityType(req.Activity),
		Duration:     decimal.NewFromFloat(req.Duration),
		Participants: req.Participants,
		StartsAt:     req.StartsAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toBookingResponse(booking))
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// GetSummary handles GET /v1/bookings/:id/summary
func (h *BookingHandler) GetSummary(c *gin.Context) {
	summary, err := h.bookingService.GetBookingSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, summary)
}

// GetAll handles GET /v1/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}

	respondJSON(c, http.StatusOK, response)
}

// CancelBooking handles POST /v1/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req) // reason is optional

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// CompleteBooking handles POST /v1/bookings/:id/complete
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	resp, err := h.bookingService.CompleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{"booking": toBookingResponse(resp.Booking)}
	if resp.Receipt != nil {
		body["receipt_id"] = resp.Receipt.ID
		body["paid_total"] = resp.Receipt.PaidTotal.String()
		body["balance"] = resp.Receipt.Balance.String()
	}

	respondJSON(c, http.StatusOK, body)
}
