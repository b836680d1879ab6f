package repository

import (
	"context"

	"arena/internal/domain"
)

// FacilityRepository defines the persistence operations for facilities.
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) error
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	GetAll(ctx context.Context) ([]*domain.Facility, error)
}
