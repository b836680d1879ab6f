package tests

import (
	"time"

	"github.com/shopspring/decimal"

	"arena/internal/domain"
	"arena/internal/lifecycle"
	"arena/internal/pricing"
	"arena/internal/service"
)

const (
	testBookingTopic = "test.bookings"
	testPaymentTopic = "test.payments"
	testHoldTTL      = time.Hour
)

// env bundles the mocks and services most flow tests need.
type env struct {
	bookingRepo  *MockBookingRepository
	paymentRepo  *MockPaymentRepository
	clientRepo   *MockClientRepository
	facilityRepo *MockFacilityRepository
	slotHolds    *MockSlotHoldStore
	locks        *MockLockStore
	publisher    *MockPublisher

	bookingService *service.BookingService
	paymentService *service.PaymentService
}

func newEnv() *env {
	e := &env{
		bookingRepo:  NewMockBookingRepository(),
		paymentRepo:  NewMockPaymentRepository(),
		clientRepo:   NewMockClientRepository(),
		facilityRepo: NewMockFacilityRepository(),
		slotHolds:    NewMockSlotHoldStore(),
		locks:        NewMockLockStore(),
		publisher:    NewMockPublisher(),
	}

	notificationService := service.NewNotificationService(service.LogSender{})
	receiptService := service.NewReceiptService(notificationService)
	manager := lifecycle.NewManager()

	e.bookingService = service.NewBookingService(
		e.bookingRepo, e.paymentRepo, e.clientRepo, e.facilityRepo,
		pricing.NewEngine(pricing.DefaultRules()), manager,
		e.slotHolds, nil,
		notificationService, receiptService,
		e.publisher, testBookingTopic,
		testHoldTTL,
	)
	e.paymentService = service.NewPaymentService(
		nil, e.paymentRepo, e.bookingRepo,
		manager,
		e.locks, nil,
		notificationService,
		e.publisher, testPaymentTopic,
	)

	return e
}

// seedClientAndFacility registers the default client and an active field.
func (e *env) seedClientAndFacility() {
	e.clientRepo.AddClient(&domain.Client{
		ID:    "client-1",
		Name:  "Abdullah",
		Phone: "+966500000001",
	})
	e.facilityRepo.AddFacility(&domain.Facility{
		ID:       "facility-1",
		Name:     "Main Field",
		Kind:     domain.FacilityKindField,
		Capacity: 22,
		Active:   true,
	})
}

// seedPendingFootballBooking stores a PENDING two-hour football booking
// priced at 600 with a 240 deposit.
func (e *env) seedPendingFootballBooking(id string) *domain.Booking {
	now := time.Now()
	booking := &domain.Booking{
		ID:              id,
		ClientID:        "client-1",
		FacilityID:      "facility-1",
		Activity:        domain.ActivityFieldFootball,
		Duration:        decimal.NewFromInt(2),
		Participants:    1,
		TotalPrice:      decimal.NewFromInt(600),
		DepositAmount:   decimal.NewFromInt(240),
		RemainingAmount: decimal.NewFromInt(360),
		Currency:        pricing.DefaultCurrency,
		Status:          domain.BookingStatusPending,
		StartsAt:        now.Add(24 * time.Hour),
		EndsAt:          now.Add(26 * time.Hour),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	e.bookingRepo.AddBooking(booking)
	return booking
}
