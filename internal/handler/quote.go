package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"arena/internal/domain"
	"arena/internal/service"
)

// QuoteHandler handles HTTP requests for price quotes.
type QuoteHandler struct {
	bookingService *service.BookingService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(bookingService *service.BookingService) *QuoteHandler {
	return &QuoteHandler{bookingService: bookingService}
}

// QuoteRequest is the HTTP request body for a price quote.
type QuoteRequest struct {
	Activity     string  `json:"activity"`
	Duration     float64 `json:"duration"`
	Participants int     `json:"participants"`
}

// QuoteResponse is the HTTP response for a price quote.
// Amounts are decimal strings.
type QuoteResponse struct {
	TotalPrice      string `json:"total_price"`
	DepositAmount   string `json:"deposit_amount"`
	RemainingAmount string `json:"remaining_amount"`
	Currency        string `json:"currency"`
}

// Quote handles POST /v1/quotes
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	quote, err := h.bookingService.Quote(
		domain.ActivityType(req.Activity),
		decimal.NewFromFloat(req.Duration),
		req.Participants,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, QuoteResponse{
		TotalPrice:      quote.TotalPrice.String(),
		DepositAmount:   quote.DepositAmount.String(),
		RemainingAmount: quote.RemainingAmount.String(),
		Currency:        quote.Currency,
	})
}
