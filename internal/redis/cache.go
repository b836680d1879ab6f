package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// BookingCacheTTL is short because status changes with every payment event.
const BookingCacheTTL = 10 * time.Second

const bookingCachePrefix = "cache:booking:"

// CachedBooking represents a cached booking entity.
type CachedBooking struct {
	ID              string `json:"id"`
	ClientID        string `json:"client_id"`
	Status          string `json:"status"`
	TotalPrice      string `json:"total_price"`
	DepositAmount   string `json:"deposit_amount"`
	RemainingAmount string `json:"remaining_amount"`
	Currency        string `json:"currency"`
}

// GetBooking retrieves a booking from cache. Returns nil on a cache miss.
func (s *CacheStore) GetBooking(ctx context.Context, bookingID string) (*CachedBooking, error) {
	key := bookingCachePrefix + bookingID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var booking CachedBooking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// SetBooking stores a booking in cache.
func (s *CacheStore) SetBooking(ctx context.Context, booking *CachedBooking) error {
	key := bookingCachePrefix + booking.ID
	data, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, BookingCacheTTL).Err()
}

// InvalidateBooking removes a booking from cache.
func (s *CacheStore) InvalidateBooking(ctx context.Context, bookingID string) error {
	key := bookingCachePrefix + bookingID
	return s.client.Del(ctx, key).Err()
}
