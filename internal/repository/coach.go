package repository

import (
	"context"

	"arena/internal/domain"
)

// CoachRepository defines the persistence operations for coaches.
type CoachRepository interface {
	Create(ctx context.Context, coach *domain.Coach) error
	GetByID(ctx context.Context, id string) (*domain.Coach, error)
	GetAll(ctx context.Context) ([]*domain.Coach, error)
}
