package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"arena/internal/domain"
	"arena/internal/middleware"
	"arena/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPaymentRequest is the HTTP request body for recording a payment.
type RecordPaymentRequest struct {
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Method    string  `json:"method"`
}

// ConfirmPaymentRequest is the HTTP request body for confirming a payment.
type ConfirmPaymentRequest struct {
	ConfirmedBy string `json:"confirmed_by"`
}

// PaymentResponse is the HTTP response for payment data.
type PaymentResponse struct {
	ID          string     `json:"id"`
	BookingID   string     `json:"booking_id"`
	Amount      string     `json:"amount"`
	Type        string     `json:"type"`
	Method      string     `json:"method"`
	Confirmed   bool       `json:"confirmed"`
	ConfirmedBy string     `json:"confirmed_by,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:          p.ID,
		BookingID:   p.BookingID,
		Amount:      p.Amount.String(),
		Type:        string(p.Type),
		Method:      string(p.Method),
		Confirmed:   p.Confirmed,
		ConfirmedBy: p.ConfirmedBy,
		CreatedAt:   p.CreatedAt,
	}
	if !p.ConfirmedAt.IsZero() {
		t := p.ConfirmedAt
		resp.ConfirmedAt = &t
	}
	return resp
}

// RecordPayment handles POST /v1/payments
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), service.RecordPaymentRequest{
		BookingID:      req.BookingID,
		Amount:         decimal.NewFromFloat(req.Amount),
		Type:           domain.PaymentType(req.Type),
		Method:         domain.PaymentMethod(req.Method),
		IdempotencyKey: middleware.IdempotencyKeyFromContext(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toPaymentResponse(payment))
}

// ConfirmPayment handles POST /v1/payments/:id/confirm
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	_ = c.ShouldBindJSON(&req) // confirmed_by is optional

	resp, err := h.paymentService.ConfirmPayment(c.Request.Context(), service.ConfirmPaymentRequest{
		PaymentID:   c.Param("id"),
		ConfirmedBy: req.ConfirmedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"payment": toPaymentResponse(resp.Payment),
		"booking": toBookingResponse(resp.Booking),
	})
}

// GetPayment handles GET /v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPaymentResponse(payment))
}

// GetBookingPayments handles GET /v1/bookings/:id/payments
func (h *PaymentHandler) GetBookingPayments(c *gin.Context) {
	payments, err := h.paymentService.GetBookingPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, toPaymentResponse(p))
	}

	respondJSON(c, http.StatusOK, response)
}
