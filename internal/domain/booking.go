package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending     BookingStatus = "PENDING"
	BookingStatusDepositPaid BookingStatus = "DEPOSIT_PAID"
	BookingStatusConfirmed   BookingStatus = "CONFIRMED"
	BookingStatusCompleted   BookingStatus = "COMPLETED"
	BookingStatusCancelled   BookingStatus = "CANCELLED"
)

// Terminal reports whether the status admits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// BookingQuote is the computed price split for a prospective booking.
// It is derived, never persisted; the amounts are frozen onto the
// booking at creation time.
type BookingQuote struct {
	TotalPrice      decimal.Decimal
	DepositAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	Currency        string
}

// Booking represents a facility booking in the system.
//
// TotalPrice, DepositAmount and RemainingAmount are frozen from the quote
// at creation. Status is owned by the lifecycle manager; nothing else may
// advance it.
type Booking struct {
	ID               string
	ClientID         string
	FacilityID       string
	Activity         ActivityType
	Duration         decimal.Decimal // in the unit of the pricing rule
	Participants     int
	TotalPrice       decimal.Decimal
	DepositAmount    decimal.Decimal
	RemainingAmount  decimal.Decimal
	Currency         string
	DepositPaid      bool
	FinalPaymentPaid bool
	Status           BookingStatus
	StartsAt         time.Time
	EndsAt           time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CancelledAt      time.Time
	CancelReason     string
}
