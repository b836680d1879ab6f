package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptLine is one confirmed payment on a receipt.
type ReceiptLine struct {
	PaymentID   string
	Amount      decimal.Decimal
	Type        PaymentType
	Method      PaymentMethod
	ConfirmedAt time.Time
}

// Receipt is the price breakdown issued when a booking completes.
type Receipt struct {
	ID            string
	BookingID     string
	ClientID      string
	Activity      ActivityType
	Duration      decimal.Decimal
	Participants  int
	TotalPrice    decimal.Decimal
	DepositAmount decimal.Decimal
	PaidTotal     decimal.Decimal
	Balance       decimal.Decimal
	Currency      string
	Lines         []ReceiptLine
	StartsAt      time.Time
	EndsAt        time.Time
	CreatedAt     time.Time
}
