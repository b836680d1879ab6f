package postgres

import (
	"context"
	"database/sql"
	"errors"

	"arena/internal/domain"
	"arena/internal/repository"
)

// ClientRepository is a PostgreSQL implementation of repository.ClientRepository.
type ClientRepository struct {
	q Querier
}

// NewClientRepository creates a new PostgreSQL client repository.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{q: db}
}

// Create persists a new client.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, name, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.Phone,
		nullString(client.Email),
		client.CreatedAt,
	)

	return err
}

// GetByID retrieves a client by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT id, name, phone, email, created_at FROM clients WHERE id = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// GetByPhone retrieves a client by phone number.
func (r *ClientRepository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	query := `SELECT id, name, phone, email, created_at FROM clients WHERE phone = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, phone))
}

// GetAll retrieves all clients.
func (r *ClientRepository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT id, name, phone, email, created_at FROM clients ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		var client domain.Client
		var email sql.NullString
		if err := rows.Scan(&client.ID, &client.Name, &client.Phone, &email, &client.CreatedAt); err != nil {
			return nil, err
		}
		client.Email = email.String
		clients = append(clients, &client)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) scanOne(row rowScanner) (*domain.Client, error) {
	var client domain.Client
	var email sql.NullString

	err := row.Scan(&client.ID, &client.Name, &client.Phone, &email, &client.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	client.Email = email.String
	return &client, nil
}
