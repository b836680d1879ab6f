package postgres

import (
	"context"
	"database/sql"
	"errors"

	"arena/internal/domain"
	"arena/internal/repository"
)

// PlayerRepository is a PostgreSQL implementation of repository.PlayerRepository.
type PlayerRepository struct {
	q Querier
}

// NewPlayerRepository creates a new PostgreSQL player repository.
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{q: db}
}

// Create persists a new player.
func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (id, client_id, name, birth_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		player.ID,
		player.ClientID,
		player.Name,
		nullTime(player.BirthDate),
		player.CreatedAt,
	)

	return err
}

// GetByID retrieves a player by ID.
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	query := `SELECT id, client_id, name, birth_date, created_at FROM players WHERE id = $1`

	player, err := scanPlayer(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return player, nil
}

// GetByClientID retrieves the players registered under a client.
func (r *PlayerRepository) GetByClientID(ctx context.Context, clientID string) ([]*domain.Player, error) {
	query := `SELECT id, client_id, name, birth_date, created_at FROM players WHERE client_id = $1 ORDER BY name`
	return r.list(ctx, query, clientID)
}

// GetAll retrieves all players.
func (r *PlayerRepository) GetAll(ctx context.Context) ([]*domain.Player, error) {
	query := `SELECT id, client_id, name, birth_date, created_at FROM players ORDER BY name`
	return r.list(ctx, query)
}

func (r *PlayerRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Player, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func scanPlayer(row rowScanner) (*domain.Player, error) {
	var player domain.Player
	var birthDate sql.NullTime

	if err := row.Scan(&player.ID, &player.ClientID, &player.Name, &birthDate, &player.CreatedAt); err != nil {
		return nil, err
	}
	if birthDate.Valid {
		player.BirthDate = birthDate.Time
	}
	return &player, nil
}
