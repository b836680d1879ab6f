package lifecycle

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"arena/internal/domain"
)

func pendingBooking() domain.Booking {
	return domain.Booking{
		ID:              "booking-1",
		Activity:        domain.ActivityFieldFootball,
		Duration:        decimal.NewFromInt(2),
		Participants:    1,
		TotalPrice:      decimal.NewFromInt(600),
		DepositAmount:   decimal.NewFromInt(240),
		RemainingAmount: decimal.NewFromInt(360),
		Currency:        "SAR",
		Status:          domain.BookingStatusPending,
	}
}

func confirmedPayment(id string, amount int64, typ domain.PaymentType) domain.Payment {
	return domain.Payment{
		ID:        id,
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(amount),
		Type:      typ,
		Method:    domain.PaymentMethodCash,
		Confirmed: true,
	}
}

func TestRecordPayment_DepositBelowGuardRejected(t *testing.T) {
	m := NewManager()
	booking := pendingBooking()

	_, err := m.RecordPayment(booking, confirmedPayment("p1", 200, domain.PaymentTypeDeposit), nil)
	if !errors.Is(err, ErrInsufficientPayment) {
		t.Fatalf("expected ErrInsufficientPayment, got %v", err)
	}
	if booking.Status != domain.BookingStatusPending {
		t.Errorf("booking must stay PENDING, got %s", booking.Status)
	}
	if booking.DepositPaid {
		t.Error("deposit flag must not advance past what payments cover")
	}
}

func TestRecordPayment_DepositMeetsGuard(t *testing.T) {
	m := NewManager()

	updated, err := m.RecordPayment(pendingBooking(), confirmedPayment("p1", 240, domain.PaymentTypeDeposit), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.BookingStatusDepositPaid {
		t.Errorf("expected DEPOSIT_PAID, got %s", updated.Status)
	}
	if !updated.DepositPaid {
		t.Error("expected DepositPaid flag set")
	}
	if updated.FinalPaymentPaid {
		t.Error("final payment flag must not be set yet")
	}
}

func TestRecordPayment_FinalPaymentConfirmsBooking(t *testing.T) {
	m := NewManager()

	deposit := confirmedPayment("p1", 240, domain.PaymentTypeDeposit)
	booking, err := m.RecordPayment(pendingBooking(), deposit, nil)
	if err != nil {
		t.Fatalf("deposit step: %v", err)
	}

	updated, err := m.RecordPayment(booking, confirmedPayment("p2", 360, domain.PaymentTypeFinal), []domain.Payment{deposit})
	if err != nil {
		t.Fatalf("final step: %v", err)
	}
	if updated.Status != domain.BookingStatusConfirmed {
		t.Errorf("expected CONFIRMED, got %s", updated.Status)
	}
	if !updated.FinalPaymentPaid {
		t.Error("expected FinalPaymentPaid flag set")
	}
}

func TestRecordPayment_PartialFinalRejected(t *testing.T) {
	m := NewManager()

	deposit := confirmedPayment("p1", 240, domain.PaymentTypeDeposit)
	booking, err := m.RecordPayment(pendingBooking(), deposit, nil)
	if err != nil {
		t.Fatalf("deposit step: %v", err)
	}

	_, err = m.RecordPayment(booking, confirmedPayment("p2", 100, domain.PaymentTypeFinal), []domain.Payment{deposit})
	if !errors.Is(err, ErrInsufficientPayment) {
		t.Fatalf("expected ErrInsufficientPayment, got %v", err)
	}
}

func TestRecordPayment_FullPaymentFromPending(t *testing.T) {
	m := NewManager()

	updated, err := m.RecordPayment(pendingBooking(), confirmedPayment("p1", 600, domain.PaymentTypeFull), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.BookingStatusConfirmed {
		t.Errorf("full payment should confirm the booking, got %s", updated.Status)
	}
	if !updated.DepositPaid || !updated.FinalPaymentPaid {
		t.Error("both payment flags should be set after a full payment")
	}
}

func TestRecordPayment_ReplayedPaymentNotDoubleCounted(t *testing.T) {
	m := NewManager()

	deposit := confirmedPayment("p1", 240, domain.PaymentTypeDeposit)
	booking, err := m.RecordPayment(pendingBooking(), deposit, nil)
	if err != nil {
		t.Fatalf("deposit step: %v", err)
	}

	// Same payment record appears again in the history: its amount must
	// count once, so the total guard is still unmet.
	_, err = m.RecordPayment(booking, deposit, []domain.Payment{deposit})
	if !errors.Is(err, ErrInsufficientPayment) {
		t.Fatalf("expected ErrInsufficientPayment on replay, got %v", err)
	}
}

func TestRecordPayment_UnconfirmedPaymentRejected(t *testing.T) {
	m := NewManager()

	payment := confirmedPayment("p1", 240, domain.PaymentTypeDeposit)
	payment.Confirmed = false

	_, err := m.RecordPayment(pendingBooking(), payment, nil)
	if !errors.Is(err, ErrPaymentNotConfirmed) {
		t.Fatalf("expected ErrPaymentNotConfirmed, got %v", err)
	}
}

func TestRecordPayment_WrongBookingRejected(t *testing.T) {
	m := NewManager()

	payment := confirmedPayment("p1", 240, domain.PaymentTypeDeposit)
	payment.BookingID = "other-booking"

	_, err := m.RecordPayment(pendingBooking(), payment, nil)
	if !errors.Is(err, ErrPaymentMismatch) {
		t.Fatalf("expected ErrPaymentMismatch, got %v", err)
	}
}

func TestRecordPayment_InvalidOnConfirmedAndTerminalStates(t *testing.T) {
	m := NewManager()

	for _, status := range []domain.BookingStatus{
		domain.BookingStatusConfirmed,
		domain.BookingStatusCompleted,
		domain.BookingStatusCancelled,
	} {
		booking := pendingBooking()
		booking.Status = status

		_, err := m.RecordPayment(booking, confirmedPayment("p9", 600, domain.PaymentTypeFull), nil)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("status %s: expected ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestCancel_FromNonTerminalStates(t *testing.T) {
	m := NewManager()

	for _, status := range []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusDepositPaid,
		domain.BookingStatusConfirmed,
	} {
		booking := pendingBooking()
		booking.Status = status

		updated, err := m.Cancel(booking, "client request")
		if err != nil {
			t.Fatalf("status %s: unexpected error: %v", status, err)
		}
		if updated.Status != domain.BookingStatusCancelled {
			t.Errorf("status %s: expected CANCELLED, got %s", status, updated.Status)
		}
		if updated.CancelledAt.IsZero() {
			t.Errorf("status %s: expected CancelledAt set", status)
		}
	}
}

func TestCancel_TerminalStatesRejected(t *testing.T) {
	m := NewManager()

	cancelled, err := m.Cancel(pendingBooking(), "client request")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Cancel(cancelled, "again"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancel after cancel: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := m.RecordPayment(cancelled, confirmedPayment("p1", 240, domain.PaymentTypeDeposit), nil); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("payment after cancel: expected ErrInvalidTransition, got %v", err)
	}

	completed := pendingBooking()
	completed.Status = domain.BookingStatusCompleted
	if _, err := m.Cancel(completed, "too late"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancel after complete: expected ErrInvalidTransition, got %v", err)
	}
}

func TestComplete_OnlyFromConfirmed(t *testing.T) {
	m := NewManager()

	booking := pendingBooking()
	booking.Status = domain.BookingStatusConfirmed

	updated, err := m.Complete(booking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.BookingStatusCompleted {
		t.Errorf("expected COMPLETED, got %s", updated.Status)
	}

	for _, status := range []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusDepositPaid,
		domain.BookingStatusCompleted,
		domain.BookingStatusCancelled,
	} {
		b := pendingBooking()
		b.Status = status
		if _, err := m.Complete(b); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("status %s: expected ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestCurrentState_PureProjection(t *testing.T) {
	m := NewManager()
	booking := pendingBooking()

	if got := m.CurrentState(booking); got != domain.BookingStatusPending {
		t.Errorf("expected PENDING, got %s", got)
	}
	if booking.Status != domain.BookingStatusPending {
		t.Error("CurrentState must not mutate the booking")
	}
}
