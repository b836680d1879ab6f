package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"arena/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "BOOKING_CREATED"
	NotificationDepositReceived  NotificationType = "DEPOSIT_RECEIVED"
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationBookingCompleted NotificationType = "BOOKING_COMPLETED"
	NotificationBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotificationPaymentRecorded  NotificationType = "PAYMENT_RECORDED"
	NotificationReceiptReady     NotificationType = "RECEIPT_READY"
)

// Notification represents a chat-bot message to be pushed.
type Notification struct {
	Type        NotificationType
	RecipientID string // client ID
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// BotSender pushes a notification out over the chat-bot channel.
type BotSender interface {
	Push(ctx context.Context, notification Notification) error
}

// LogSender is a BotSender that only logs. It stands in for the real
// chat-bot integration in development and tests.
type LogSender struct{}

// Push logs the notification.
func (LogSender) Push(ctx context.Context, notification Notification) error {
	log.Printf("[NOTIFICATION] Type=%s, Recipient=%s, Title=%s, Message=%s",
		notification.Type, notification.RecipientID, notification.Title, notification.Message)
	return nil
}

// NotificationService builds human-readable booking and payment messages.
//
// It is only ever invoked by the service layer after a transition has been
// committed; the pricing and lifecycle packages have no knowledge of it.
type NotificationService struct {
	sender BotSender
}

// NewNotificationService creates a NotificationService pushing through sender.
func NewNotificationService(sender BotSender) *NotificationService {
	if sender == nil {
		sender = LogSender{}
	}
	return &NotificationService{sender: sender}
}

// NotifyBookingCreated tells the client their booking is held pending deposit.
func (s *NotificationService) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return s.sender.Push(ctx, Notification{
		Type:        NotificationBookingCreated,
		RecipientID: booking.ClientID,
		Title:       "Booking Received",
		Message: fmt.Sprintf("Your %s booking is held. Pay a deposit of %s %s to secure it (total %s %s).",
			booking.Activity, booking.DepositAmount, booking.Currency, booking.TotalPrice, booking.Currency),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"deposit":    booking.DepositAmount.String(),
			"total":      booking.TotalPrice.String(),
		},
		CreatedAt: time.Now(),
	})
}

// NotifyDepositReceived confirms the deposit landed.
func (s *NotificationService) NotifyDepositReceived(ctx context.Context, booking *domain.Booking, payment *domain.Payment) error {
	return s.sender.Push(ctx, Notification{
		Type:        NotificationDepositReceived,
		RecipientID: booking.ClientID,
		Title:       "Deposit Received",
		Message: fmt.Sprintf("Deposit of %s %s received. Remaining balance: %s %s.",
			payment.Amount, booking.Currency, booking.RemainingAmount, booking.Currency),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"payment_id": payment.ID,
			"amount":     payment.Amount.String(),
		},
		CreatedAt: time.Now(),
	})
}

// NotifyBookingConfirmed tells the client the booking is fully paid.
func (s *NotificationService) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	return s.sender.Push(ctx, Notification{
		Type:        NotificationBookingConfirmed,
		RecipientID: booking.ClientID,
		Title:       "Booking Confirmed",
		Message: fmt.Sprintf("Your %s booking on %s is confirmed. See you there!",
			booking.Activity, booking.StartsAt.Format("Jan 02, 2006 3:04 PM")),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"starts_at":  booking.StartsAt,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyBookingCancelled tells the client the booking was cancelled.
func (s *NotificationService) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking) error {
	message := "Your booking has been cancelled."
	if booking.CancelReason != "" {
		message = fmt.Sprintf("Your booking has been cancelled: %s", booking.CancelReason)
	}
	return s.sender.Push(ctx, Notification{
		Type:        NotificationBookingCancelled,
		RecipientID: booking.ClientID,
		Title:       "Booking Cancelled",
		Message:     message,
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"reason":     booking.CancelReason,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyBookingCompleted thanks the client after the activity.
func (s *NotificationService) NotifyBookingCompleted(ctx context.Context, booking *domain.Booking) error {
	return s.sender.Push(ctx, Notification{
		Type:        NotificationBookingCompleted,
		RecipientID: booking.ClientID,
		Title:       "Booking Completed",
		Message:     fmt.Sprintf("Thanks for visiting! Your %s booking is complete.", booking.Activity),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyReceiptReady pushes the formatted receipt to the client.
func (s *NotificationService) NotifyReceiptReady(ctx context.Context, receipt *domain.Receipt, formatted string) error {
	return s.sender.Push(ctx, Notification{
		Type:        NotificationReceiptReady,
		RecipientID: receipt.ClientID,
		Title:       "Receipt Ready",
		Message:     formatted,
		Data: map[string]interface{}{
			"receipt_id": receipt.ID,
			"booking_id": receipt.BookingID,
			"total":      receipt.TotalPrice.String(),
		},
		CreatedAt: time.Now(),
	})
}
