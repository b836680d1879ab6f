package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"arena/internal/domain"
)

// ReceiptService builds price-breakdown receipts for bookings.
type ReceiptService struct {
	notificationService *NotificationService
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(notificationService *NotificationService) *ReceiptService {
	return &ReceiptService{
		notificationService: notificationService,
	}
}

// GenerateReceipt builds a receipt from the booking and its confirmed
// payments, and pushes it to the client when a notifier is wired.
func (s *ReceiptService) GenerateReceipt(ctx context.Context, booking *domain.Booking, payments []*domain.Payment) (*domain.Receipt, error) {
	if booking == nil {
		return nil, ErrInvalidBookingID
	}

	paid := decimal.Zero
	var lines []domain.ReceiptLine
	for _, p := range payments {
		if !p.Confirmed {
			continue
		}
		paid = paid.Add(p.Amount)
		lines = append(lines, domain.ReceiptLine{
			PaymentID:   p.ID,
			Amount:      p.Amount,
			Type:        p.Type,
			Method:      p.Method,
			ConfirmedAt: p.ConfirmedAt,
		})
	}

	receipt := &domain.Receipt{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		ClientID:      booking.ClientID,
		Activity:      booking.Activity,
		Duration:      booking.Duration,
		Participants:  booking.Participants,
		TotalPrice:    booking.TotalPrice,
		DepositAmount: booking.DepositAmount,
		PaidTotal:     paid,
		Balance:       booking.TotalPrice.Sub(paid),
		Currency:      booking.Currency,
		Lines:         lines,
		StartsAt:      booking.StartsAt,
		EndsAt:        booking.EndsAt,
		CreatedAt:     time.Now(),
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyReceiptReady(ctx, receipt, s.FormatReceipt(receipt))
	}

	return receipt, nil
}

// FormatReceipt renders the receipt as text for the chat-bot channel.
func (s *ReceiptService) FormatReceipt(receipt *domain.Receipt) string {
	var b strings.Builder

	b.WriteString("=====================================\n")
	b.WriteString("          BOOKING RECEIPT\n")
	b.WriteString("=====================================\n")
	fmt.Fprintf(&b, "Receipt ID: %s\n", receipt.ID)
	fmt.Fprintf(&b, "Booking ID: %s\n", receipt.BookingID)
	fmt.Fprintf(&b, "Date: %s\n\n", receipt.CreatedAt.Format("Jan 02, 2006 3:04 PM"))

	b.WriteString("BOOKING DETAILS\n")
	b.WriteString("-------------------------------------\n")
	fmt.Fprintf(&b, "Activity:     %s\n", receipt.Activity)
	fmt.Fprintf(&b, "Duration:     %s\n", receipt.Duration)
	fmt.Fprintf(&b, "Participants: %d\n", receipt.Participants)
	fmt.Fprintf(&b, "Starts:       %s\n\n", receipt.StartsAt.Format("Jan 02, 2006 3:04 PM"))

	b.WriteString("PRICE BREAKDOWN\n")
	b.WriteString("-------------------------------------\n")
	fmt.Fprintf(&b, "Total:    %s %s\n", receipt.TotalPrice, receipt.Currency)
	fmt.Fprintf(&b, "Deposit:  %s %s\n\n", receipt.DepositAmount, receipt.Currency)

	b.WriteString("PAYMENTS\n")
	b.WriteString("-------------------------------------\n")
	for _, line := range receipt.Lines {
		fmt.Fprintf(&b, "%-8s %-8s %s %s\n", line.Type, line.Method, line.Amount, receipt.Currency)
	}
	b.WriteString("-------------------------------------\n")
	fmt.Fprintf(&b, "PAID:     %s %s\n", receipt.PaidTotal, receipt.Currency)
	fmt.Fprintf(&b, "BALANCE:  %s %s\n", receipt.Balance, receipt.Currency)
	b.WriteString("=====================================\n")

	return b.String()
}
