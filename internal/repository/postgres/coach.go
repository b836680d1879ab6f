package postgres

import (
	"context"
	"database/sql"
	"errors"

	"arena/internal/domain"
	"arena/internal/repository"
)

// CoachRepository is a PostgreSQL implementation of repository.CoachRepository.
type CoachRepository struct {
	q Querier
}

// NewCoachRepository creates a new PostgreSQL coach repository.
func NewCoachRepository(db *sql.DB) *CoachRepository {
	return &CoachRepository{q: db}
}

// Create persists a new coach.
func (r *CoachRepository) Create(ctx context.Context, coach *domain.Coach) error {
	query := `
		INSERT INTO coaches (id, name, phone, specialty, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		coach.ID,
		coach.Name,
		coach.Phone,
		coach.Specialty,
		coach.Active,
		coach.CreatedAt,
	)

	return err
}

// GetByID retrieves a coach by ID.
func (r *CoachRepository) GetByID(ctx context.Context, id string) (*domain.Coach, error) {
	query := `SELECT id, name, phone, specialty, active, created_at FROM coaches WHERE id = $1`

	var coach domain.Coach
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&coach.ID,
		&coach.Name,
		&coach.Phone,
		&coach.Specialty,
		&coach.Active,
		&coach.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &coach, nil
}

// GetAll retrieves all coaches.
func (r *CoachRepository) GetAll(ctx context.Context) ([]*domain.Coach, error) {
	query := `SELECT id, name, phone, specialty, active, created_at FROM coaches ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coaches []*domain.Coach
	for rows.Next() {
		var coach domain.Coach
		if err := rows.Scan(&coach.ID, &coach.Name, &coach.Phone, &coach.Specialty, &coach.Active, &coach.CreatedAt); err != nil {
			return nil, err
		}
		coaches = append(coaches, &coach)
	}
	return coaches, rows.Err()
}
