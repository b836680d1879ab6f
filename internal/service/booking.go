package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"arena/internal/domain"
	"arena/internal/event"
	"arena/internal/lifecycle"
	"arena/internal/pricing"
	"arena/internal/redis"
	"arena/internal/repository"
)

// Publisher publishes booking events to the message broker.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

// BookingService handles booking operations: quoting, creation and the
// non-payment lifecycle events (cancel, complete).
type BookingService struct {
	bookingRepo         repository.BookingRepository
	paymentRepo         repository.PaymentRepository
	clientRepo          repository.ClientRepository
	facilityRepo        repository.FacilityRepository
	engine              *pricing.Engine
	manager             *lifecycle.Manager
	slotHolds           redis.SlotHoldStoreInterface
	cache               *redis.CacheStore
	notificationService *NotificationService
	receiptService      *ReceiptService
	producer            Publisher
	bookingTopic        string
	holdTTL             time.Duration
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	clientRepo repository.ClientRepository,
	facilityRepo repository.FacilityRepository,
	engine *pricing.Engine,
	manager *lifecycle.Manager,
	slotHolds redis.SlotHoldStoreInterface,
	cache *redis.CacheStore,
	notificationService *NotificationService,
	receiptService *ReceiptService,
	producer Publisher,
	bookingTopic string,
	holdTTL time.Duration,
) *BookingService {
	return &BookingService{
		bookingRepo:         bookingRepo,
		paymentRepo:         paymentRepo,
		clientRepo:          clientRepo,
		facilityRepo:        facilityRepo,
		engine:              engine,
		manager:             manager,
		slotHolds:           slotHolds,
		cache:               cache,
		notificationService: notificationService,
		receiptService:      receiptService,
		producer:            producer,
		bookingTopic:        bookingTopic,
		holdTTL:             holdTTL,
	}
}

// Quote resolves a price quote without creating anything.
func (s *BookingService) Quote(activity domain.ActivityType, duration decimal.Decimal, participants int) (domain.BookingQuote, error) {
	if participants == 0 {
		participants = 1
	}
	return s.engine.Quote(activity, duration, participants)
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	ClientID     string
	FacilityID   string
	Activity     domain.ActivityType
	Duration     decimal.Decimal
	Participants int
	StartsAt     time.Time
}

// CreateBooking quotes the requested activity, holds the facility slot and
// persists a PENDING booking with the quoted amounts frozen onto it.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.ClientID == "" {
		return nil, ErrInvalidClientID
	}
	if req.FacilityID == "" {
		return nil, ErrInvalidFacilityID
	}
	if req.StartsAt.IsZero() {
		return nil, ErrInvalidStartTime
	}
	if req.Participants == 0 {
		req.Participants = 1
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	facility, err := s.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}
	if !facility.Active {
		return nil, ErrInactiveFacility
	}

	quote, err := s.engine.Quote(req.Activity, req.Duration, req.Participants)
	if err != nil {
		return nil, err
	}

	rule, err := s.engine.Rule(req.Activity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		ClientID:        req.ClientID,
		FacilityID:      req.FacilityID,
		Activity:        req.Activity,
		Duration:        req.Duration,
		Participants:    req.Participants,
		TotalPrice:      quote.TotalPrice,
		DepositAmount:   quote.DepositAmount,
		RemainingAmount: quote.RemainingAmount,
		Currency:        quote.Currency,
		Status:          domain.BookingStatusPending,
		StartsAt:        req.StartsAt,
		EndsAt:          req.StartsAt.Add(slotSpan(rule.Unit, req.Duration)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	held := false
	if s.slotHolds != nil {
		ok, err := s.slotHolds.HoldSlot(ctx, req.FacilityID, req.StartsAt, booking.ID, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSlotUnavailable
		}
		held = true
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if held {
			_ = s.slotHolds.ReleaseSlot(ctx, req.FacilityID, req.StartsAt)
		}
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCreated(ctx, booking)
	}
	s.publish(ctx, event.TypeBookingCreated, booking, nil)

	return booking, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	return s.bookingRepo.GetByID(ctx, bookingID)
}

// GetBookingSummary returns a lightweight booking view, cache-first.
// The dashboard polls this while a client is completing payment.
func (s *BookingService) GetBookingSummary(ctx context.Context, bookingID string) (*redis.CachedBooking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	if s.cache != nil {
		cached, err := s.cache.GetBooking(ctx, bookingID)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	summary := &redis.CachedBooking{
		ID:              booking.ID,
		ClientID:        booking.ClientID,
		Status:          string(booking.Status),
		TotalPrice:      booking.TotalPrice.String(),
		DepositAmount:   booking.DepositAmount.String(),
		RemainingAmount: booking.RemainingAmount.String(),
		Currency:        booking.Currency,
	}
	if s.cache != nil {
		_ = s.cache.SetBooking(ctx, summary)
	}
	return summary, nil
}

// GetAllBookings retrieves all bookings.
func (s *BookingService) GetAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// CancelBooking cancels a booking from any non-terminal state and releases
// its slot hold.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	cancelled, err := s.manager.Cancel(*booking, reason)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, &cancelled); err != nil {
		return nil, err
	}

	if s.slotHolds != nil {
		_ = s.slotHolds.ReleaseSlot(ctx, cancelled.FacilityID, cancelled.StartsAt)
	}
	if s.cache != nil {
		_ = s.cache.InvalidateBooking(ctx, cancelled.ID)
	}
	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCancelled(ctx, &cancelled)
	}
	s.publish(ctx, event.TypeBookingCancelled, &cancelled, nil)

	return &cancelled, nil
}

// CompleteBookingResponse contains the result of completing a booking.
type CompleteBookingResponse struct {
	Booking *domain.Booking
	Receipt *domain.Receipt
}

// CompleteBooking marks a confirmed booking completed and issues a receipt.
func (s *BookingService) CompleteBooking(ctx context.Context, bookingID string) (*CompleteBookingResponse, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	completed, err := s.manager.Complete(*booking)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, &completed); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateBooking(ctx, completed.ID)
	}
	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCompleted(ctx, &completed)
	}
	s.publish(ctx, event.TypeBookingCompleted, &completed, nil)

	var receipt *domain.Receipt
	if s.receiptService != nil {
		payments, err := s.paymentRepo.GetByBookingID(ctx, completed.ID)
		if err != nil {
			// Receipt is best effort; completion already committed.
			payments = nil
		}
		receipt, _ = s.receiptService.GenerateReceipt(ctx, &completed, payments)
	}

	return &CompleteBookingResponse{Booking: &completed, Receipt: receipt}, nil
}

// CompleteElapsed completes every confirmed booking whose end time has
// passed. Called by the worker sweep.
func (s *BookingService) CompleteElapsed(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	confirmed, err := s.bookingRepo.GetByStatus(ctx, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	var completed []*domain.Booking
	for _, booking := range confirmed {
		if booking.EndsAt.After(now) {
			continue
		}
		resp, err := s.CompleteBooking(ctx, booking.ID)
		if err != nil {
			log.Printf("complete elapsed booking %s: %v", booking.ID, err)
			continue
		}
		completed = append(completed, resp.Booking)
	}
	return completed, nil
}

// publish emits a booking event; failures are logged, never surfaced,
// because the transition has already been committed.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, payment *domain.Payment) {
	if s.producer == nil {
		return
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
		OccurredAt:      time.Now(),
	}
	if payment != nil {
		e.PaymentID = payment.ID
		e.PaymentAmount = payment.Amount.String()
	}

	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, e); err != nil {
		log.Printf("publish %s event for booking %s: %v", eventType, booking.ID, err)
	}
}

// slotSpan converts a billed duration to wall-clock time for slot holds.
// Sessions are scheduled as one hour each.
func slotSpan(unit domain.UnitType, duration decimal.Decimal) time.Duration {
	hours := duration
	switch unit {
	case domain.UnitDay:
		hours = duration.Mul(decimal.NewFromInt(24))
	case domain.UnitSession, domain.UnitHour:
		// one hour per unit
	}
	f, _ := hours.Float64()
	return time.Duration(f * float64(time.Hour))
}
