package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType distinguishes what part of the booking price a payment covers.
type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "DEPOSIT"
	PaymentTypeFinal   PaymentType = "FINAL"
	PaymentTypeFull    PaymentType = "FULL"
)

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodWallet   PaymentMethod = "WALLET"
)

// Payment represents a monetary transaction against a booking.
// A booking's paid flags are derived only from confirmed payments.
type Payment struct {
	ID             string
	BookingID      string
	Amount         decimal.Decimal
	Type           PaymentType
	Method         PaymentMethod
	Confirmed      bool
	ConfirmedBy    string
	ConfirmedAt    time.Time
	IdempotencyKey string
	CreatedAt      time.Time
}

// CoversDeposit reports whether the payment counts toward the deposit guard.
func (p Payment) CoversDeposit() bool {
	return p.Type == PaymentTypeDeposit || p.Type == PaymentTypeFull
}
