package postgres

import (
	"context"
	"database/sql"
	"errors"

	"arena/internal/domain"
	"arena/internal/repository"
)

// FacilityRepository is a PostgreSQL implementation of repository.FacilityRepository.
type FacilityRepository struct {
	q Querier
}

// NewFacilityRepository creates a new PostgreSQL facility repository.
func NewFacilityRepository(db *sql.DB) *FacilityRepository {
	return &FacilityRepository{q: db}
}

// Create persists a new facility.
func (r *FacilityRepository) Create(ctx context.Context, facility *domain.Facility) error {
	query := `
		INSERT INTO facilities (id, name, kind, capacity, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		facility.ID,
		facility.Name,
		facility.Kind,
		facility.Capacity,
		facility.Active,
		facility.CreatedAt,
	)

	return err
}

// GetByID retrieves a facility by ID.
func (r *FacilityRepository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	query := `SELECT id, name, kind, capacity, active, created_at FROM facilities WHERE id = $1`

	var facility domain.Facility
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&facility.ID,
		&facility.Name,
		&facility.Kind,
		&facility.Capacity,
		&facility.Active,
		&facility.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &facility, nil
}

// GetAll retrieves all facilities.
func (r *FacilityRepository) GetAll(ctx context.Context) ([]*domain.Facility, error) {
	query := `SELECT id, name, kind, capacity, active, created_at FROM facilities ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilities []*domain.Facility
	for rows.Next() {
		var facility domain.Facility
		if err := rows.Scan(&facility.ID, &facility.Name, &facility.Kind, &facility.Capacity, &facility.Active, &facility.CreatedAt); err != nil {
			return nil, err
		}
		facilities = append(facilities, &facility)
	}
	return facilities, rows.Err()
}
