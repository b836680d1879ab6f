package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"arena/internal/domain"
	"arena/internal/event"
	"arena/internal/lifecycle"
	"arena/internal/redis"
	"arena/internal/repository"
	"arena/internal/repository/postgres"
)

// confirmLockTTL bounds how long a crashed confirmation can block a booking.
const confirmLockTTL = 10 * time.Second

// PaymentService records payments against bookings and drives the booking
// lifecycle when a payment is confirmed.
type PaymentService struct {
	db                  *sql.DB
	paymentRepo         repository.PaymentRepository
	bookingRepo         repository.BookingRepository
	manager             *lifecycle.Manager
	locks               redis.LockStoreInterface
	cache               *redis.CacheStore
	notificationService *NotificationService
	producer            Publisher
	paymentTopic        string
}

// NewPaymentService creates a new PaymentService.
// db may be nil, in which case updates are applied without a transaction
// (used by tests with in-memory repositories).
func NewPaymentService(
	db *sql.DB,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	manager *lifecycle.Manager,
	locks redis.LockStoreInterface,
	cache *redis.CacheStore,
	notificationService *NotificationService,
	producer Publisher,
	paymentTopic string,
) *PaymentService {
	return &PaymentService{
		db:                  db,
		paymentRepo:         paymentRepo,
		bookingRepo:         bookingRepo,
		manager:             manager,
		locks:               locks,
		cache:               cache,
		notificationService: notificationService,
		producer:            producer,
		paymentTopic:        paymentTopic,
	}
}

// RecordPaymentRequest contains the parameters for recording a payment.
type RecordPaymentRequest struct {
	BookingID      string
	Amount         decimal.Decimal
	Type           domain.PaymentType
	Method         domain.PaymentMethod
	IdempotencyKey string
}

// RecordPayment persists an unconfirmed payment against a booking.
// The booking does not move until the payment is confirmed.
func (s *PaymentService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*domain.Payment, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPaymentAmount
	}
	switch req.Type {
	case domain.PaymentTypeDeposit, domain.PaymentTypeFinal, domain.PaymentTypeFull:
	default:
		return nil, ErrInvalidPaymentType
	}
	switch req.Method {
	case domain.PaymentMethodCash, domain.PaymentMethodCard, domain.PaymentMethodTransfer, domain.PaymentMethodWallet:
	default:
		return nil, ErrInvalidPaymentMethod
	}

	if _, err := s.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		return nil, err
	}

	// Replays with the same idempotency key return the original record.
	if req.IdempotencyKey != "" {
		existing, err := s.paymentRepo.GetByIdempotencyKey(ctx, req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	payment := &domain.Payment{
		ID:             uuid.New().String(),
		BookingID:      req.BookingID,
		Amount:         req.Amount,
		Type:           req.Type,
		Method:         req.Method,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// ConfirmPaymentRequest contains the parameters for confirming a payment.
type ConfirmPaymentRequest struct {
	PaymentID   string
	ConfirmedBy string
}

// ConfirmPaymentResponse contains the result of confirming a payment.
type ConfirmPaymentResponse struct {
	Payment *domain.Payment
	Booking *domain.Booking
}

// ConfirmPayment marks a payment confirmed and applies the matching booking
// transition. Payment and booking are persisted in one transaction: either
// both advance or neither does.
//
// Confirmations are serialized per booking via a redis lock so two
// concurrent confirmations cannot both pass the same lifecycle guard.
func (s *PaymentService) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (*ConfirmPaymentResponse, error) {
	if req.PaymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	payment, err := s.paymentRepo.GetByID(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.Confirmed {
		return nil, ErrPaymentAlreadyConfirmed
	}

	if s.locks != nil {
		ok, err := s.locks.AcquireBookingLock(ctx, payment.BookingID, confirmLockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrBookingBusy
		}
		defer func() { _ = s.locks.ReleaseBookingLock(ctx, payment.BookingID) }()
	}

	booking, err := s.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		return nil, err
	}

	prior, err := s.paymentRepo.GetByBookingID(ctx, payment.BookingID)
	if err != nil {
		return nil, err
	}
	priorVals := make([]domain.Payment, 0, len(prior))
	for _, p := range prior {
		priorVals = append(priorVals, *p)
	}

	confirmed := *payment
	confirmed.Confirmed = true
	confirmed.ConfirmedBy = req.ConfirmedBy
	confirmed.ConfirmedAt = time.Now()

	updated, err := s.manager.RecordPayment(*booking, confirmed, priorVals)
	if err != nil {
		return nil, err
	}

	if err := s.persistConfirmation(ctx, &confirmed, &updated); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateBooking(ctx, updated.ID)
	}

	if s.notificationService != nil {
		if booking.Status == domain.BookingStatusPending && updated.DepositPaid {
			_ = s.notificationService.NotifyDepositReceived(ctx, &updated, &confirmed)
		}
		if updated.Status == domain.BookingStatusConfirmed {
			_ = s.notificationService.NotifyBookingConfirmed(ctx, &updated)
		}
	}
	s.publishTransition(ctx, booking.Status, &updated, &confirmed)

	return &ConfirmPaymentResponse{Payment: &confirmed, Booking: &updated}, nil
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	return s.paymentRepo.GetByID(ctx, paymentID)
}

// GetBookingPayments retrieves all payments for a booking.
func (s *PaymentService) GetBookingPayments(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	return s.paymentRepo.GetByBookingID(ctx, bookingID)
}

// persistConfirmation writes the confirmed payment and the advanced booking
// atomically when a database handle is present.
func (s *PaymentService) persistConfirmation(ctx context.Context, payment *domain.Payment, booking *domain.Booking) error {
	if s.db == nil {
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return err
		}
		return s.bookingRepo.Update(ctx, booking)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txPaymentRepo := postgres.NewPaymentRepositoryWithTx(tx)
	txBookingRepo := postgres.NewBookingRepositoryWithTx(tx)

	if err = txPaymentRepo.Update(ctx, payment); err != nil {
		return err
	}
	if err = txBookingRepo.Update(ctx, booking); err != nil {
		return err
	}

	return tx.Commit()
}

// publishTransition emits the event matching the transition that happened.
func (s *PaymentService) publishTransition(ctx context.Context, previous domain.BookingStatus, booking *domain.Booking, payment *domain.Payment) {
	if s.producer == nil {
		return
	}

	eventType := event.TypePaymentRecorded
	switch {
	case booking.Status == domain.BookingStatusConfirmed:
		eventType = event.TypeBookingConfirmed
	case previous == domain.BookingStatusPending && booking.Status == domain.BookingStatusDepositPaid:
		eventType = event.TypeDepositPaid
	}

	e := event.BookingEvent{
		Type:            eventType,
		BookingID:       booking.ID,
		ClientID:        booking.ClientID,
		Activity:        string(booking.Activity),
		Status:          string(booking.Status),
		TotalPrice:      booking.TotalPrice.String(),
		DepositAmount:   booking.DepositAmount.String(),
		RemainingAmount: booking.RemainingAmount.String(),
		Currency:        booking.Currency,
		PaymentID:       payment.ID,
		PaymentAmount:   payment.Amount.String(),
		OccurredAt:      time.Now(),
	}

	_ = s.producer.Publish(ctx, s.paymentTopic, booking.ID, e)
}
