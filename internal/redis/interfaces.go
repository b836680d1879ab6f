package redis

import (
	"context"
	"time"
)

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireBookingLock(ctx context.Context, bookingID string, ttl time.Duration) (bool, error)
	ReleaseBookingLock(ctx context.Context, bookingID string) error
}

// SlotHoldStoreInterface defines the interface for facility slot holds.
type SlotHoldStoreInterface interface {
	HoldSlot(ctx context.Context, facilityID string, startsAt time.Time, bookingID string, ttl time.Duration) (bool, error)
	ReleaseSlot(ctx context.Context, facilityID string, startsAt time.Time) error
	SlotHolder(ctx context.Context, facilityID string, startsAt time.Time) (string, error)
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface     = (*LockStore)(nil)
	_ SlotHoldStoreInterface = (*SlotHoldStore)(nil)
)
