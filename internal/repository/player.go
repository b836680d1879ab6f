package repository

import (
	"context"

	"arena/internal/domain"
)

// PlayerRepository defines the persistence operations for players.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	GetByClientID(ctx context.Context, clientID string) ([]*domain.Player, error)
	GetAll(ctx context.Context) ([]*domain.Player, error)
}
