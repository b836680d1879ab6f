package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SlotHoldStore holds a facility time slot while a client completes the
// deposit. A hold is not a reservation: it expires on its own if the
// booking is never paid.
type SlotHoldStore struct {
	client *redis.Client
}

// NewSlotHoldStore creates a new SlotHoldStore.
func NewSlotHoldStore(client *redis.Client) *SlotHoldStore {
	return &SlotHoldStore{client: client}
}

func slotKey(facilityID string, startsAt time.Time) string {
	return fmt.Sprintf("hold:slot:%s:%d", facilityID, startsAt.UTC().Unix())
}

// HoldSlot attempts to hold a facility slot for a booking.
// Returns false if another booking already holds it.
func (s *SlotHoldStore) HoldSlot(ctx context.Context, facilityID string, startsAt time.Time, bookingID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, slotKey(facilityID, startsAt), bookingID, ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// ReleaseSlot releases a held slot.
func (s *SlotHoldStore) ReleaseSlot(ctx context.Context, facilityID string, startsAt time.Time) error {
	return s.client.Del(ctx, slotKey(facilityID, startsAt)).Err()
}

// SlotHolder returns the booking ID currently holding the slot,
// or the empty string if the slot is free.
func (s *SlotHoldStore) SlotHolder(ctx context.Context, facilityID string, startsAt time.Time) (string, error) {
	holder, err := s.client.Get(ctx, slotKey(facilityID, startsAt)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return holder, nil
}
