package repository

import (
	"context"

	"arena/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetAll retrieves all bookings.
	GetAll(ctx context.Context) ([]*domain.Booking, error)

	// GetByStatus retrieves bookings in the given status.
	GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)

	// Update updates an existing booking.
	Update(ctx context.Context, booking *domain.Booking) error
}
