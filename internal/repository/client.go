package repository

import (
	"context"

	"arena/internal/domain"
)

// ClientRepository defines the persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
}
