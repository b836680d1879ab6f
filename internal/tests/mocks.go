package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"arena/internal/domain"
	"arena/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockBookingRepository) GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.Status == status {
			copy := *b
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[booking.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *booking
	m.bookings[booking.ID] = &copy
	return nil
}

// GetBooking returns the stored booking for test assertions.
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// ──────────────────────────────────────────────
// MOCK PAYMENT REPOSITORY
// ──────────────────────────────────────────────

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockPaymentRepository creates a new mock payment repository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

// AddPayment adds a payment to the mock repository.
func (m *MockPaymentRepository) AddPayment(payment *domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payment, ok := m.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *payment
	return &copy, nil
}

func (m *MockPaymentRepository) GetByBookingID(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Payment
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			copy := *p
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockPaymentRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.payments {
		if p.IdempotencyKey == key {
			copy := *p
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[payment.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *payment
	m.payments[payment.ID] = &copy
	return nil
}

// ──────────────────────────────────────────────
// MOCK CLIENT REPOSITORY
// ──────────────────────────────────────────────

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
}

// NewMockClientRepository creates a new mock client repository.
func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{
		clients: make(map[string]*domain.Client),
	}
}

// AddClient adds a client to the mock repository.
func (m *MockClientRepository) AddClient(client *domain.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ID] = client
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	client, ok := m.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *client
	return &copy, nil
}

func (m *MockClientRepository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.clients {
		if c.Phone == phone {
			copy := *c
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockClientRepository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Client, 0, len(m.clients))
	for _, c := range m.clients {
		copy := *c
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK FACILITY REPOSITORY
// ──────────────────────────────────────────────

// MockFacilityRepository is a mock implementation of FacilityRepository.
type MockFacilityRepository struct {
	mu         sync.RWMutex
	facilities map[string]*domain.Facility
}

// NewMockFacilityRepository creates a new mock facility repository.
func NewMockFacilityRepository() *MockFacilityRepository {
	return &MockFacilityRepository{
		facilities: make(map[string]*domain.Facility),
	}
}

// AddFacility adds a facility to the mock repository.
func (m *MockFacilityRepository) AddFacility(facility *domain.Facility) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.facilities[facility.ID] = facility
}

func (m *MockFacilityRepository) Create(ctx context.Context, facility *domain.Facility) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.facilities[facility.ID] = facility
	return nil
}

func (m *MockFacilityRepository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	facility, ok := m.facilities[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *facility
	return &copy, nil
}

func (m *MockFacilityRepository) GetAll(ctx context.Context) ([]*domain.Facility, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Facility, 0, len(m.facilities))
	for _, f := range m.facilities {
		copy := *f
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is an in-memory implementation of LockStoreInterface.
type MockLockStore struct {
	mu   sync.Mutex
	held map[string]bool

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{held: make(map[string]bool)}
}

func (m *MockLockStore) AcquireBookingLock(ctx context.Context, bookingID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[bookingID] {
		return false, nil
	}
	m.held[bookingID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseBookingLock(ctx context.Context, bookingID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, bookingID)
	return nil
}

// Hold marks a booking lock as already held, simulating a concurrent owner.
func (m *MockLockStore) Hold(bookingID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.held[bookingID] = true
}

// ──────────────────────────────────────────────
// MOCK SLOT HOLD STORE
// ──────────────────────────────────────────────

// MockSlotHoldStore is an in-memory implementation of SlotHoldStoreInterface.
type MockSlotHoldStore struct {
	mu    sync.Mutex
	holds map[string]string

	// Counters for verification
	HoldCallCount    int32
	ReleaseCallCount int32

	// Error injection
	HoldError error
}

// NewMockSlotHoldStore creates a new mock slot hold store.
func NewMockSlotHoldStore() *MockSlotHoldStore {
	return &MockSlotHoldStore{holds: make(map[string]string)}
}

func slotKey(facilityID string, startsAt time.Time) string {
	return facilityID + "@" + startsAt.UTC().Format(time.RFC3339)
}

func (m *MockSlotHoldStore) HoldSlot(ctx context.Context, facilityID string, startsAt time.Time, bookingID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.HoldCallCount, 1)
	if m.HoldError != nil {
		return false, m.HoldError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := slotKey(facilityID, startsAt)
	if _, taken := m.holds[key]; taken {
		return false, nil
	}
	m.holds[key] = bookingID
	return true, nil
}

func (m *MockSlotHoldStore) ReleaseSlot(ctx context.Context, facilityID string, startsAt time.Time) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.holds, slotKey(facilityID, startsAt))
	return nil
}

func (m *MockSlotHoldStore) SlotHolder(ctx context.Context, facilityID string, startsAt time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holds[slotKey(facilityID, startsAt)], nil
}

// ──────────────────────────────────────────────
// MOCK PUBLISHER
// ──────────────────────────────────────────────

// PublishedEvent captures one Publish call for assertions.
type PublishedEvent struct {
	Topic   string
	Key     string
	Payload any
}

// MockPublisher is a mock implementation of service.Publisher.
type MockPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent

	// Error injection
	PublishError error
}

// NewMockPublisher creates a new mock publisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	if m.PublishError != nil {
		return m.PublishError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, PublishedEvent{Topic: topic, Key: key, Payload: payload})
	return nil
}

// Events returns a snapshot of published events.
func (m *MockPublisher) Events() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.events))
	copy(out, m.events)
	return out
}
