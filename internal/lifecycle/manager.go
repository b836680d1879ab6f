package lifecycle

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"arena/internal/domain"
)

var (
	// ErrInvalidTransition is returned when an event is not valid for the booking's current status.
	ErrInvalidTransition = errors.New("invalid booking transition")

	// ErrInsufficientPayment is returned when confirmed payments do not satisfy the transition guard.
	ErrInsufficientPayment = errors.New("insufficient payment for transition")

	// ErrPaymentNotConfirmed is returned when an unconfirmed payment is recorded against a booking.
	ErrPaymentNotConfirmed = errors.New("payment is not confirmed")

	// ErrPaymentMismatch is returned when a payment references a different booking.
	ErrPaymentMismatch = errors.New("payment does not belong to booking")
)

// Manager owns the valid status transitions of a booking.
//
// All methods are value-in/value-out: they either return an updated copy of
// the booking or an error with the input untouched. The manager holds no
// state and performs no I/O; callers must serialize calls per booking ID.
type Manager struct{}

// NewManager creates a new Manager.
func NewManager() *Manager {
	return &Manager{}
}

// CurrentState returns the booking's status.
func (m *Manager) CurrentState(b domain.Booking) domain.BookingStatus {
	return b.Status
}

// RecordPayment applies a newly confirmed payment to the booking.
//
// prior holds the booking's previously recorded payments; unconfirmed entries
// and duplicates of the new payment are ignored, so replaying an
// already-recorded payment cannot double-count.
//
// Guards: the deposit transition requires confirmed deposit-covering payments
// of at least DepositAmount; the confirmation transition requires all
// confirmed payments to reach TotalPrice. A single call advances as far as
// the guards allow, so a FULL payment can take a PENDING booking straight to
// CONFIRMED.
func (m *Manager) RecordPayment(b domain.Booking, payment domain.Payment, prior []domain.Payment) (domain.Booking, error) {
	if payment.BookingID != b.ID {
		return b, ErrPaymentMismatch
	}
	if !payment.Confirmed {
		return b, ErrPaymentNotConfirmed
	}
	if b.Status != domain.BookingStatusPending && b.Status != domain.BookingStatusDepositPaid {
		return b, ErrInvalidTransition
	}

	depositTotal, grandTotal := sumConfirmed(payment, prior)

	updated := b
	if updated.Status == domain.BookingStatusPending {
		if depositTotal.LessThan(updated.DepositAmount) {
			return b, ErrInsufficientPayment
		}
		updated.Status = domain.BookingStatusDepositPaid
		updated.DepositPaid = true
	}

	if updated.Status == domain.BookingStatusDepositPaid && grandTotal.GreaterThanOrEqual(updated.TotalPrice) {
		updated.Status = domain.BookingStatusConfirmed
		updated.FinalPaymentPaid = true
	} else if b.Status == domain.BookingStatusDepositPaid {
		// The call was a final-payment event that did not reach the guard.
		return b, ErrInsufficientPayment
	}

	updated.UpdatedAt = time.Now()
	return updated, nil
}

// Cancel transitions the booking to CANCELLED from any non-terminal state.
func (m *Manager) Cancel(b domain.Booking, reason string) (domain.Booking, error) {
	if b.Status.Terminal() {
		return b, ErrInvalidTransition
	}

	now := time.Now()
	updated := b
	updated.Status = domain.BookingStatusCancelled
	updated.CancelledAt = now
	updated.CancelReason = reason
	updated.UpdatedAt = now
	return updated, nil
}

// Complete transitions a CONFIRMED booking to COMPLETED once the activity
// has taken place.
func (m *Manager) Complete(b domain.Booking) (domain.Booking, error) {
	if b.Status != domain.BookingStatusConfirmed {
		return b, ErrInvalidTransition
	}

	updated := b
	updated.Status = domain.BookingStatusCompleted
	updated.UpdatedAt = time.Now()
	return updated, nil
}

// sumConfirmed totals confirmed payments, counting each payment ID once.
// Returns the deposit-covering total and the grand total.
func sumConfirmed(payment domain.Payment, prior []domain.Payment) (deposit, total decimal.Decimal) {
	seen := map[string]bool{}

	add := func(p domain.Payment) {
		if !p.Confirmed || seen[p.ID] {
			return
		}
		seen[p.ID] = true
		total = total.Add(p.Amount)
		if p.CoversDeposit() {
			deposit = deposit.Add(p.Amount)
		}
	}

	add(payment)
	for _, p := range prior {
		if p.BookingID == payment.BookingID {
			add(p)
		}
	}
	return deposit, total
}
