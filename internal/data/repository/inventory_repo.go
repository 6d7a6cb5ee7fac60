package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// InventoryRepository is the booked-inventory ledger: the authoritative
// per-(show, date) record of remaining seats and booked seat IDs. All
// booking writes flow through Commit; everything else only reads.
type InventoryRepository interface {
	GetRemaining(ctx context.Context, showID uuid.UUID, showDate time.Time) (int, error)
	GetBookedSeats(ctx context.Context, showID uuid.UUID, showDate time.Time) ([]uuid.UUID, error)

	// Commit atomically re-checks the booked seat set for the booking's
	// (show, date) key and, when none of seatIDs is taken, persists the
	// booking with its seats and decrements the remaining count. Returns
	// ErrNoSuchShowDate when the date is outside the show's range,
	// ErrSeatsUnavailable when any seat is already booked, ErrShowFull
	// when the remaining count cannot cover the request.
	Commit(ctx context.Context, booking *entity.Booking, seatIDs []uuid.UUID) error

	// CreateBatchTx seeds one inventory row per date when a show is created.
	CreateBatchTx(ctx context.Context, tx pgx.Tx, rows []*entity.BookedShowDetail) error
}

type inventoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInventoryRepository(db database.PgxIface, log *zap.Logger) InventoryRepository {
	return &inventoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "inventory")),
	}
}

func (r *inventoryRepository) GetRemaining(ctx context.Context, showID uuid.UUID, showDate time.Time) (int, error) {
	query := `
		SELECT available_seats
		FROM booked_show_details
		WHERE show_id = $1 AND show_date = $2
	`

	var remaining int
	err := r.db.QueryRow(ctx, query, showID, showDate).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNoSuchShowDate
		}
		r.log.Error("Failed to read remaining seats",
			zap.Error(err),
			zap.String("show_id", showID.String()),
			zap.Time("show_date", showDate),
		)
		return 0, fmt.Errorf("get remaining for show %s: %w", showID.String(), err)
	}

	return remaining, nil
}

func (r *inventoryRepository) GetBookedSeats(ctx context.Context, showID uuid.UUID, showDate time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT seat_id
		FROM booking_seats
		WHERE show_id = $1 AND show_date = $2
	`

	rows, err := r.db.Query(ctx, query, showID, showDate)
	if err != nil {
		r.log.Error("Failed to read booked seats",
			zap.Error(err),
			zap.String("show_id", showID.String()),
			zap.Time("show_date", showDate),
		)
		return nil, fmt.Errorf("get booked seats for show %s: %w", showID.String(), err)
	}
	defer rows.Close()

	var seatIDs []uuid.UUID
	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			r.log.Error("Failed to scan booked seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booked seat row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}

	return seatIDs, rows.Err()
}

func (r *inventoryRepository) Commit(ctx context.Context, booking *entity.Booking, seatIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin commit tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Row lock on the (show, date) inventory row serializes commits for
	// this key. Commits for other keys proceed in parallel.
	var remaining int
	err = tx.QueryRow(ctx, `
		SELECT available_seats
		FROM booked_show_details
		WHERE show_id = $1 AND show_date = $2
		FOR UPDATE
	`, booking.ShowID, booking.ShowDate).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoSuchShowDate
		}
		return fmt.Errorf("lock inventory row: %w", err)
	}

	if remaining < len(seatIDs) {
		return ErrShowFull
	}

	// Re-check under the lock. Validation already did this against the
	// cache, but only this read is authoritative.
	conflictRows, err := tx.Query(ctx, `
		SELECT seat_id
		FROM booking_seats
		WHERE show_id = $1 AND show_date = $2 AND seat_id = ANY($3)
	`, booking.ShowID, booking.ShowDate, seatIDs)
	if err != nil {
		return fmt.Errorf("check booked seats: %w", err)
	}
	conflict := conflictRows.Next()
	conflictRows.Close()
	if conflict {
		return ErrSeatsUnavailable
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, user_id, show_id, show_date, total_seats, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, booking.ID, booking.UserID, booking.ShowID, booking.ShowDate,
		booking.TotalSeats, booking.TotalAmount, booking.CreatedAt, booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	insertSeats := `INSERT INTO booking_seats (id, booking_id, show_id, show_date, seat_id, created_at) VALUES `
	args := make([]any, 0, len(seatIDs)*6)
	for i, seatID := range seatIDs {
		if i > 0 {
			insertSeats += ","
		}
		base := i * 6
		insertSeats += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, uuid.New(), booking.ID, booking.ShowID, booking.ShowDate, seatID, booking.CreatedAt)
	}
	if _, err := tx.Exec(ctx, insertSeats, args...); err != nil {
		return fmt.Errorf("insert booking seats: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE booked_show_details
		SET available_seats = available_seats - $3
		WHERE show_id = $1 AND show_date = $2
	`, booking.ShowID, booking.ShowDate, len(seatIDs))
	if err != nil {
		return fmt.Errorf("decrement remaining seats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx: %w", err)
	}

	r.log.Info("Ledger commit",
		zap.String("booking_id", booking.ID.String()),
		zap.String("show_id", booking.ShowID.String()),
		zap.Time("show_date", booking.ShowDate),
		zap.Int("seats", len(seatIDs)),
		zap.Int("remaining", remaining-len(seatIDs)),
	)

	return nil
}

func (r *inventoryRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, inventory []*entity.BookedShowDetail) error {
	if len(inventory) == 0 {
		return nil
	}

	query := `INSERT INTO booked_show_details (id, show_id, show_date, available_seats, created_at) VALUES `
	args := make([]any, 0, len(inventory)*5)
	for i, row := range inventory {
		if i > 0 {
			query += ","
		}
		base := i * 5
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)
		args = append(args, row.ID, row.ShowID, row.ShowDate, row.AvailableSeats, row.CreatedAt)
	}

	_, err := tx.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to seed show inventory",
			zap.Error(err),
			zap.String("show_id", inventory[0].ShowID.String()),
			zap.Int("days", len(inventory)),
		)
		return fmt.Errorf("seed inventory for show %s: %w", inventory[0].ShowID.String(), err)
	}

	return nil
}
