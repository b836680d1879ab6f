package tests

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena/internal/domain"
	"arena/internal/lifecycle"
)

// ──────────────────────────────────────────────
// CANCELLATION, COMPLETION AND THE WORKER SWEEP
// ──────────────────────────────────────────────

func TestBooking_CancelPendingReleasesSlot(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	booking := e.seedPendingFootballBooking("booking-1")
	ctx := context.Background()

	_, err := e.slotHolds.HoldSlot(ctx, booking.FacilityID, booking.StartsAt, booking.ID, testHoldTTL)
	require.NoError(t, err)

	cancelled, err := e.bookingService.CancelBooking(ctx, "booking-1", "client changed plans")
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, "client changed plans", cancelled.CancelReason)
	assert.False(t, cancelled.CancelledAt.IsZero())

	holder, _ := e.slotHolds.SlotHolder(ctx, booking.FacilityID, booking.StartsAt)
	assert.Empty(t, holder)
}

func TestBooking_CancelCompletedFails(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	booking := e.seedPendingFootballBooking("booking-1")
	booking.Status = domain.BookingStatusCompleted
	e.bookingRepo.AddBooking(booking)

	_, err := e.bookingService.CancelBooking(context.Background(), "booking-1", "too late")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
}

func TestBooking_CompleteConfirmedIssuesReceipt(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	booking := e.seedPendingFootballBooking("booking-1")
	booking.Status = domain.BookingStatusConfirmed
	booking.DepositPaid = true
	booking.FinalPaymentPaid = true
	e.bookingRepo.AddBooking(booking)

	e.paymentRepo.AddPayment(&domain.Payment{
		ID:        "payment-1",
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(240),
		Type:      domain.PaymentTypeDeposit,
		Method:    domain.PaymentMethodCard,
		Confirmed: true,
	})
	e.paymentRepo.AddPayment(&domain.Payment{
		ID:        "payment-2",
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(360),
		Type:      domain.PaymentTypeFinal,
		Method:    domain.PaymentMethodCash,
		Confirmed: true,
	})

	resp, err := e.bookingService.CompleteBooking(context.Background(), "booking-1")
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusCompleted, resp.Booking.Status)
	require.NotNil(t, resp.Receipt)
	assert.True(t, resp.Receipt.PaidTotal.Equal(decimal.NewFromInt(600)))
	assert.True(t, resp.Receipt.Balance.IsZero())
}

func TestBooking_CompletePendingFails(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.seedPendingFootballBooking("booking-1")

	_, err := e.bookingService.CompleteBooking(context.Background(), "booking-1")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
}

func TestBooking_SweepCompletesOnlyElapsedConfirmed(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	now := time.Now()

	elapsed := e.seedPendingFootballBooking("booking-elapsed")
	elapsed.Status = domain.BookingStatusConfirmed
	elapsed.StartsAt = now.Add(-3 * time.Hour)
	elapsed.EndsAt = now.Add(-time.Hour)
	e.bookingRepo.AddBooking(elapsed)

	upcoming := e.seedPendingFootballBooking("booking-upcoming")
	upcoming.Status = domain.BookingStatusConfirmed
	e.bookingRepo.AddBooking(upcoming)

	pending := e.seedPendingFootballBooking("booking-pending")
	pending.StartsAt = now.Add(-3 * time.Hour)
	pending.EndsAt = now.Add(-time.Hour)
	e.bookingRepo.AddBooking(pending)

	completed, err := e.bookingService.CompleteElapsed(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, completed, 1)
	assert.Equal(t, "booking-elapsed", completed[0].ID)
	assert.Equal(t, domain.BookingStatusCompleted, e.bookingRepo.GetBooking("booking-elapsed").Status)
	assert.Equal(t, domain.BookingStatusConfirmed, e.bookingRepo.GetBooking("booking-upcoming").Status)
	assert.Equal(t, domain.BookingStatusPending, e.bookingRepo.GetBooking("booking-pending").Status)
}
