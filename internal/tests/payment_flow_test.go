package tests

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena/internal/domain"
	"arena/internal/event"
	"arena/internal/lifecycle"
	"arena/internal/service"
)

// ──────────────────────────────────────────────
// PAYMENT RECORDING AND CONFIRMATION
// ──────────────────────────────────────────────

func TestPayment_DepositThenFinalConfirmsBooking(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.seedPendingFootballBooking("booking-1")
	ctx := context.Background()

	// Record and confirm the deposit.
	deposit, err := e.paymentService.RecordPayment(ctx, service.RecordPaymentRequest{
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(240),
		Type:      domain.PaymentTypeDeposit,
		Method:    domain.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.False(t, deposit.Confirmed)

	resp, err := e.paymentService.ConfirmPayment(ctx, service.ConfirmPaymentRequest{
		PaymentID:   deposit.ID,
		ConfirmedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.True(t, resp.Payment.Confirmed)
	assert.Equal(t, "admin-1", resp.Payment.ConfirmedBy)
	assert.Equal(t, domain.BookingStatusDepositPaid, resp.Booking.Status)
	assert.True(t, resp.Booking.DepositPaid)

	// Record and confirm the remainder.
	final, err := e.paymentService.RecordPayment(ctx, service.RecordPaymentRequest{
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(360),
		Type:      domain.PaymentTypeFinal,
		Method:    domain.PaymentMethodCash,
	})
	require.NoError(t, err)

	resp, err = e.paymentService.ConfirmPayment(ctx, service.ConfirmPaymentRequest{PaymentID: final.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, resp.Booking.Status)
	assert.True(t, resp.Booking.FinalPaymentPaid)

	// Both transitions must have been persisted.
	stored := e.bookingRepo.GetBooking("booking-1")
	assert.Equal(t, domain.BookingStatusConfirmed, stored.Status)

	// The confirmation event is the last one published.
	events := e.publisher.Events()
	require.NotEmpty(t, events)
	last, ok := events[len(events)-1].Payload.(event.BookingEvent)
	require.True(t, ok)
	assert.Equal(t, event.TypeBookingConfirmed, last.Type)
}

func TestPayment_FullPaymentConfirmsPendingBookingDirectly(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.seedPendingFootballBooking("booking-1")
	ctx := context.Background()

	full, err := e.paymentService.RecordPayment(ctx, service.RecordPaymentRequest{
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(600),
		Type:      domain.PaymentTypeFull,
		Method:    domain.PaymentMethodTransfer,
	})
	require.NoError(t, err)

	resp, err := e.paymentService.ConfirmPayment(ctx, service.ConfirmPaymentRequest{PaymentID: full.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, resp.Booking.Status)
	assert.True(t, resp.Booking.DepositPaid)
	assert.True(t, resp.Booking.FinalPaymentPaid)
}

func TestPayment_ShortDepositLeavesBookingPending(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.seedPendingFootballBooking("booking-1")
	ctx := context.Background()

	short, err := e.paymentService.RecordPayment(ctx, service.RecordPaymentRequest{
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(200),
		Type:      domain.PaymentTypeDeposit,
		Method:    domain.PaymentMethodCard,
	})
	require.NoError(t, err)

	_, err = e.paymentService.ConfirmPayment(ctx, service.ConfirmPaymentRequest{PaymentID: short.ID})
	assert.ErrorIs(t, err, lifecycle.ErrInsufficientPayment)

	// Neither the payment nor the booking may have advanced.
	stored := e.bookingRepo.GetBooking("booking-1")
	assert.Equal(t, domain.BookingStatusPending, stored.Status)
	storedPayment, err := e.paymentRepo.GetByID(ctx, short.ID)
	require.NoError(t, err)
	assert.False(t, storedPayment.Confirmed)
}

func TestPayment_IdempotencyKeyReplayReturnsOriginal(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.seedPendingFootballBooking("booking-1")
	ctx := context.Background()

	req := service.RecordPaymentRequest{
		BookingID:      "booking-1",
		Amount:         decimal.NewFromInt(240),
		Type:           domain.PaymentTypeDeposit,
		Method:         domain.PaymentMethodCard,
		IdempotencyKey: "key-abc",
	}

	first, err := e.paymentService.RecordPayment(ctx, req)
	require.NoError(t, err)
	second, err := e.paymentService.RecordPayment(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, e.paymentRepo.CreateCallCount)
}

func TestPayment_ConfirmTwiceFails(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.seedPendingFootballBooking("booking-1")
	ctx := context.Background()

	deposit, err := e.paymentService.RecordPayment(ctx, service.RecordPaymentRequest{
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(240),
		Type:      domain.PaymentTypeDeposit,
		Method:    domain.PaymentMethodCard,
	})
	require.NoError(t, err)

	_, err = e.paymentService.ConfirmPayment(ctx, service.ConfirmPaymentRequest{PaymentID: deposit.ID})
	require.NoError(t, err)

	_, err = e.paymentService.ConfirmPayment(ctx, service.ConfirmPaymentRequest{PaymentID: deposit.ID})
	assert.ErrorIs(t, err, service.ErrPaymentAlreadyConfirmed)
}

func TestPayment_ConfirmBlockedWhileBookingLocked(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.seedPendingFootballBooking("booking-1")
	ctx := context.Background()

	deposit, err := e.paymentService.RecordPayment(ctx, service.RecordPaymentRequest{
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(240),
		Type:      domain.PaymentTypeDeposit,
		Method:    domain.PaymentMethodCard,
	})
	require.NoError(t, err)

	// Simulate a concurrent confirmation holding the booking lock.
	e.locks.Hold("booking-1")

	_, err = e.paymentService.ConfirmPayment(ctx, service.ConfirmPaymentRequest{PaymentID: deposit.ID})
	assert.ErrorIs(t, err, service.ErrBookingBusy)
}

func TestPayment_RecordRejectsUnknownBooking(t *testing.T) {
	t.Parallel()

	e := newEnv()

	_, err := e.paymentService.RecordPayment(context.Background(), service.RecordPaymentRequest{
		BookingID: "no-such-booking",
		Amount:    decimal.NewFromInt(100),
		Type:      domain.PaymentTypeDeposit,
		Method:    domain.PaymentMethodCash,
	})
	assert.Error(t, err)
	assert.EqualValues(t, 0, e.paymentRepo.CreateCallCount)
}
