package postgres

import (
	"context"
	"database/sql"
	"errors"

	"arena/internal/domain"
	"arena/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// NewPaymentRepositoryWithTx creates a payment repository using a transaction.
func NewPaymentRepositoryWithTx(tx *sql.Tx) *PaymentRepository {
	return &PaymentRepository{q: tx}
}

const paymentColumns = `
	id, booking_id, amount, payment_type, method,
	confirmed, confirmed_by, confirmed_at, idempotency_key, created_at
`

// Create persists a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.ExecContext(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Type,
		payment.Method,
		payment.Confirmed,
		nullString(payment.ConfirmedBy),
		nullTime(payment.ConfirmedAt),
		nullString(payment.IdempotencyKey),
		payment.CreatedAt,
	)

	return err
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return payment, nil
}

// GetByBookingID retrieves all payments recorded against a booking.
func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY created_at`

	rows, err := r.q.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

// GetByIdempotencyKey retrieves a payment by its idempotency key.
// Returns nil if no payment exists with the given key.
func (r *PaymentRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE idempotency_key = $1`

	payment, err := scanPayment(r.q.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return payment, nil
}

// Update updates an existing payment.
func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	query := `
		UPDATE payments
		SET confirmed = $1, confirmed_by = $2, confirmed_at = $3
		WHERE id = $4
	`

	result, err := r.q.ExecContext(ctx, query,
		payment.Confirmed,
		nullString(payment.ConfirmedBy),
		nullTime(payment.ConfirmedAt),
		payment.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	var confirmedBy, idempotencyKey sql.NullString
	var confirmedAt sql.NullTime

	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Type,
		&payment.Method,
		&payment.Confirmed,
		&confirmedBy,
		&confirmedAt,
		&idempotencyKey,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	payment.ConfirmedBy = confirmedBy.String
	if confirmedAt.Valid {
		payment.ConfirmedAt = confirmedAt.Time
	}
	payment.IdempotencyKey = idempotencyKey.String

	return &payment, nil
}
