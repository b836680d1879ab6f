package tests

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena/internal/domain"
	"arena/internal/event"
	"arena/internal/repository"
	"arena/internal/service"
)

// ──────────────────────────────────────────────
// BOOKING CREATION
// ──────────────────────────────────────────────

func TestBooking_CreateFreezesQuoteAndHoldsSlot(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()

	startsAt := time.Now().Add(48 * time.Hour)
	booking, err := e.bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ClientID:     "client-1",
		FacilityID:   "facility-1",
		Activity:     domain.ActivityFieldFootball,
		Duration:     decimal.NewFromInt(2),
		Participants: 1,
		StartsAt:     startsAt,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.True(t, booking.TotalPrice.Equal(decimal.NewFromInt(600)))
	assert.True(t, booking.DepositAmount.Equal(decimal.NewFromInt(240)))
	assert.True(t, booking.RemainingAmount.Equal(decimal.NewFromInt(360)))
	assert.Equal(t, startsAt.Add(2*time.Hour), booking.EndsAt)

	// Slot must be held under the new booking's ID.
	holder, err := e.slotHolds.SlotHolder(context.Background(), "facility-1", startsAt)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, holder)

	events := e.publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, testBookingTopic, events[0].Topic)
	created, ok := events[0].Payload.(event.BookingEvent)
	require.True(t, ok)
	assert.Equal(t, event.TypeBookingCreated, created.Type)
}

func TestBooking_CreateRejectsTakenSlot(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()

	startsAt := time.Now().Add(48 * time.Hour)
	_, err := e.slotHolds.HoldSlot(context.Background(), "facility-1", startsAt, "other-booking", testHoldTTL)
	require.NoError(t, err)

	_, err = e.bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ClientID:     "client-1",
		FacilityID:   "facility-1",
		Activity:     domain.ActivityFieldFootball,
		Duration:     decimal.NewFromInt(1),
		Participants: 1,
		StartsAt:     startsAt,
	})
	assert.ErrorIs(t, err, service.ErrSlotUnavailable)
	assert.EqualValues(t, 0, e.bookingRepo.CreateCallCount)
}

func TestBooking_CreateRejectsUnknownClient(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()

	_, err := e.bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ClientID:     "no-such-client",
		FacilityID:   "facility-1",
		Activity:     domain.ActivityFieldFootball,
		Duration:     decimal.NewFromInt(1),
		Participants: 1,
		StartsAt:     time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBooking_CreateRejectsInactiveFacility(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.facilityRepo.AddFacility(&domain.Facility{
		ID:     "facility-closed",
		Name:   "Closed Pool",
		Kind:   domain.FacilityKindPool,
		Active: false,
	})

	_, err := e.bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ClientID:     "client-1",
		FacilityID:   "facility-closed",
		Activity:     domain.ActivitySwimmingFree,
		Duration:     decimal.NewFromInt(1),
		Participants: 1,
		StartsAt:     time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, service.ErrInactiveFacility)
}

func TestBooking_CreateReleasesHoldWhenPersistFails(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.bookingRepo.CreateError = repository.ErrNotFound // any persistence failure

	startsAt := time.Now().Add(48 * time.Hour)
	_, err := e.bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ClientID:     "client-1",
		FacilityID:   "facility-1",
		Activity:     domain.ActivityFieldFootball,
		Duration:     decimal.NewFromInt(1),
		Participants: 1,
		StartsAt:     startsAt,
	})
	require.Error(t, err)

	// The slot hold must not leak when the booking row never landed.
	assert.EqualValues(t, 1, e.slotHolds.ReleaseCallCount)
	holder, _ := e.slotHolds.SlotHolder(context.Background(), "facility-1", startsAt)
	assert.Empty(t, holder)
}

func TestBooking_SchoolSessionPricesPerParticipant(t *testing.T) {
	t.Parallel()

	e := newEnv()
	e.seedClientAndFacility()
	e.facilityRepo.AddFacility(&domain.Facility{
		ID:     "facility-pool",
		Name:   "School Pool",
		Kind:   domain.FacilityKindPool,
		Active: true,
	})

	booking, err := e.bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ClientID:     "client-1",
		FacilityID:   "facility-pool",
		Activity:     domain.ActivitySwimmingSchool,
		Duration:     decimal.NewFromInt(1),
		Participants: 10,
		StartsAt:     time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	assert.True(t, booking.TotalPrice.Equal(decimal.NewFromInt(400)))
	assert.True(t, booking.DepositAmount.Equal(decimal.NewFromInt(100)))
}
