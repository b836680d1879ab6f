package event

import "time"

// Event types published to the booking events topic.
const (
	TypeBookingCreated   = "booking_created"
	TypeDepositPaid      = "deposit_paid"
	TypeBookingConfirmed = "booking_confirmed"
	TypeBookingCompleted = "booking_completed"
	TypeBookingCancelled = "booking_cancelled"
	TypePaymentRecorded  = "payment_recorded"
)

// BookingEvent is the payload published on booking and payment transitions.
// Amounts are decimal strings to keep the wire format exact.
type BookingEvent struct {
	Type            string    `json:"type"`
	BookingID       string    `json:"booking_id"`
	ClientID        string    `json:"client_id"`
	Activity        string    `json:"activity"`
	Status          string    `json:"status"`
	TotalPrice      string    `json:"total_price"`
	DepositAmount   string    `json:"deposit_amount"`
	RemainingAmount string    `json:"remaining_amount"`
	Currency        string    `json:"currency"`
	PaymentID       string    `json:"payment_id,omitempty"`
	PaymentAmount   string    `json:"payment_amount,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
