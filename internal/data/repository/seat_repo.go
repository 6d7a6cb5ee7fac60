package repository

import (
	"context"
	"fmt"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	CreateBatchTx(ctx context.Context, tx pgx.Tx, seats []*entity.Seat) error
	FindByScreen(ctx context.Context, screenID uuid.UUID) ([]*entity.Seat, error)
	FindWithTypeByScreen(ctx context.Context, screenID uuid.UUID) ([]*entity.SeatWithType, error)
	FindWithTypeByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.SeatWithType, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	// One multi-row insert per screen provisioning call
	query := `INSERT INTO seats (id, seat_type_id, screen_id, seat_row, seat_column, seat_number, created_at) VALUES `
	args := make([]any, 0, len(seats)*7)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		base := i * 7
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args, s.ID, s.SeatTypeID, s.ScreenID, s.SeatRow, s.SeatColumn, s.SeatNumber, s.CreatedAt)
	}

	_, err := tx.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create seats",
			zap.Error(err),
			zap.Int("count", len(seats)),
			zap.String("screen_id", seats[0].ScreenID.String()),
		)
		return fmt.Errorf("create %d seats: %w", len(seats), err)
	}

	return nil
}

func (r *seatRepository) FindByScreen(ctx context.Context, screenID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, seat_type_id, screen_id, seat_row, seat_column, seat_number, created_at
		FROM seats
		WHERE screen_id = $1
		ORDER BY seat_row, seat_column
	`

	rows, err := r.db.Query(ctx, query, screenID)
	if err != nil {
		r.log.Error("Failed to find seats by screen",
			zap.Error(err),
			zap.String("screen_id", screenID.String()),
		)
		return nil, fmt.Errorf("find seats by screen %s: %w", screenID.String(), err)
	}
	defer rows.Close()

	return scanSeats(rows)
}

func (r *seatRepository) FindWithTypeByScreen(ctx context.Context, screenID uuid.UUID) ([]*entity.SeatWithType, error) {
	query := `
		SELECT s.id, s.seat_type_id, s.screen_id, s.seat_row, s.seat_column, s.seat_number, s.created_at, st.seat_type
		FROM seats s
		INNER JOIN screen_seat_types st ON s.seat_type_id = st.id
		WHERE s.screen_id = $1
		ORDER BY s.seat_row, s.seat_column
	`

	rows, err := r.db.Query(ctx, query, screenID)
	if err != nil {
		r.log.Error("Failed to find typed seats by screen",
			zap.Error(err),
			zap.String("screen_id", screenID.String()),
		)
		return nil, fmt.Errorf("find typed seats by screen %s: %w", screenID.String(), err)
	}
	defer rows.Close()

	return scanSeatsWithType(rows)
}

func (r *seatRepository) FindWithTypeByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.SeatWithType, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT s.id, s.seat_type_id, s.screen_id, s.seat_row, s.seat_column, s.seat_number, s.created_at, st.seat_type
		FROM seats s
		INNER JOIN screen_seat_types st ON s.seat_type_id = st.id
		WHERE s.id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find seats by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find seats by IDs: %w", err)
	}
	defer rows.Close()

	return scanSeatsWithType(rows)
}

func scanSeats(rows pgx.Rows) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	for rows.Next() {
		var s entity.Seat
		err := rows.Scan(&s.ID, &s.SeatTypeID, &s.ScreenID, &s.SeatRow, &s.SeatColumn, &s.SeatNumber, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &s)
	}
	return seats, rows.Err()
}

func scanSeatsWithType(rows pgx.Rows) ([]*entity.SeatWithType, error) {
	var seats []*entity.SeatWithType
	for rows.Next() {
		var s entity.SeatWithType
		err := rows.Scan(&s.ID, &s.SeatTypeID, &s.ScreenID, &s.SeatRow, &s.SeatColumn, &s.SeatNumber, &s.CreatedAt, &s.SeatType)
		if err != nil {
			return nil, fmt.Errorf("scan typed seat row: %w", err)
		}
		seats = append(seats, &s)
	}
	return seats, rows.Err()
}
