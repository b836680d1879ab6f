package postgres

import (
	"context"
	"database/sql"
	"errors"

	"arena/internal/domain"
	"arena/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

const bookingColumns = `
	id, client_id, facility_id, activity, duration, participants,
	total_price, deposit_amount, remaining_amount, currency,
	deposit_paid, final_payment_paid, status,
	starts_at, ends_at, created_at, updated_at, cancelled_at, cancel_reason
`

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.ClientID,
		booking.FacilityID,
		booking.Activity,
		booking.Duration,
		booking.Participants,
		booking.TotalPrice,
		booking.DepositAmount,
		booking.RemainingAmount,
		booking.Currency,
		booking.DepositPaid,
		booking.FinalPaymentPaid,
		booking.Status,
		booking.StartsAt,
		booking.EndsAt,
		booking.CreatedAt,
		booking.UpdatedAt,
		nullTime(booking.CancelledAt),
		nullString(booking.CancelReason),
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return booking, nil
}

// GetAll retrieves all bookings, newest first.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

// GetByStatus retrieves bookings in the given status.
func (r *BookingRepository) GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY starts_at`

	rows, err := r.q.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

// Update updates an existing booking.
func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET deposit_paid = $1, final_payment_paid = $2, status = $3,
		    updated_at = $4, cancelled_at = $5, cancel_reason = $6
		WHERE id = $7
	`

	result, err := r.q.ExecContext(ctx, query,
		booking.DepositPaid,
		booking.FinalPaymentPaid,
		booking.Status,
		booking.UpdatedAt,
		nullTime(booking.CancelledAt),
		nullString(booking.CancelReason),
		booking.ID,
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var cancelledAt sql.NullTime
	var cancelReason sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.FacilityID,
		&booking.Activity,
		&booking.Duration,
		&booking.Participants,
		&booking.TotalPrice,
		&booking.DepositAmount,
		&booking.RemainingAmount,
		&booking.Currency,
		&booking.DepositPaid,
		&booking.FinalPaymentPaid,
		&booking.Status,
		&booking.StartsAt,
		&booking.EndsAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&cancelledAt,
		&cancelReason,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		booking.CancelledAt = cancelledAt.Time
	}
	booking.CancelReason = cancelReason.String

	return &booking, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
