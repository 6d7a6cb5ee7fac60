package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScreenRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, screen *entity.Screen) error
	CreateSeatTypeTx(ctx context.Context, tx pgx.Tx, mapping *entity.SeatTypeMapping) error
	UpdateTotalSeatsTx(ctx context.Context, tx pgx.Tx, screenID uuid.UUID, totalSeats int) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screen, error)
	FindAll(ctx context.Context) ([]*entity.Screen, error)
	FindSeatTypesByScreen(ctx context.Context, screenID uuid.UUID) ([]*entity.SeatTypeMapping, error)
}

type screenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreenRepository(db database.PgxIface, log *zap.Logger) ScreenRepository {
	return &screenRepository{
		db:  db,
		log: log.With(zap.String("repository", "screen")),
	}
}

func (r *screenRepository) CreateTx(ctx context.Context, tx pgx.Tx, screen *entity.Screen) error {
	query := `
		INSERT INTO screens (id, screen_number, total_seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query,
		screen.ID,
		screen.ScreenNumber,
		screen.TotalSeats,
		screen.CreatedAt,
		screen.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create screen",
			zap.Error(err),
			zap.Int("screen_number", screen.ScreenNumber),
		)
		return fmt.Errorf("create screen %d: %w", screen.ScreenNumber, err)
	}

	return nil
}

func (r *screenRepository) CreateSeatTypeTx(ctx context.Context, tx pgx.Tx, mapping *entity.SeatTypeMapping) error {
	query := `
		INSERT INTO screen_seat_types (id, screen_id, seat_type, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query,
		mapping.ID,
		mapping.ScreenID,
		mapping.SeatType,
		mapping.SortOrder,
		mapping.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat type mapping",
			zap.Error(err),
			zap.String("screen_id", mapping.ScreenID.String()),
			zap.String("seat_type", mapping.SeatType),
		)
		return fmt.Errorf("create seat type %s for screen %s: %w",
			mapping.SeatType, mapping.ScreenID.String(), err)
	}

	return nil
}

func (r *screenRepository) UpdateTotalSeatsTx(ctx context.Context, tx pgx.Tx, screenID uuid.UUID, totalSeats int) error {
	query := `UPDATE screens SET total_seats = $2, updated_at = NOW() WHERE id = $1`

	_, err := tx.Exec(ctx, query, screenID, totalSeats)
	if err != nil {
		r.log.Error("Failed to update screen total seats",
			zap.Error(err),
			zap.String("screen_id", screenID.String()),
		)
		return fmt.Errorf("update total seats for screen %s: %w", screenID.String(), err)
	}

	return nil
}

func (r *screenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screen, error) {
	query := `
		SELECT id, screen_number, total_seats, created_at, updated_at
		FROM screens
		WHERE id = $1
	`

	var s entity.Screen
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.ScreenNumber,
		&s.TotalSeats,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.log.Error("Failed to find screen by ID",
			zap.Error(err),
			zap.String("screen_id", id.String()),
		)
		return nil, fmt.Errorf("find screen by ID %s: %w", id.String(), err)
	}

	return &s, nil
}

func (r *screenRepository) FindAll(ctx context.Context) ([]*entity.Screen, error) {
	query := `
		SELECT id, screen_number, total_seats, created_at, updated_at
		FROM screens
		ORDER BY screen_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find screens", zap.Error(err))
		return nil, fmt.Errorf("find screens: %w", err)
	}
	defer rows.Close()

	var screens []*entity.Screen
	for rows.Next() {
		var s entity.Screen
		err := rows.Scan(&s.ID, &s.ScreenNumber, &s.TotalSeats, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			r.log.Error("Failed to scan screen row", zap.Error(err))
			return nil, fmt.Errorf("scan screen row: %w", err)
		}
		screens = append(screens, &s)
	}

	return screens, nil
}

func (r *screenRepository) FindSeatTypesByScreen(ctx context.Context, screenID uuid.UUID) ([]*entity.SeatTypeMapping, error) {
	query := `
		SELECT id, screen_id, seat_type, sort_order, created_at
		FROM screen_seat_types
		WHERE screen_id = $1
		ORDER BY sort_order
	`

	rows, err := r.db.Query(ctx, query, screenID)
	if err != nil {
		r.log.Error("Failed to find seat types by screen",
			zap.Error(err),
			zap.String("screen_id", screenID.String()),
		)
		return nil, fmt.Errorf("find seat types by screen %s: %w", screenID.String(), err)
	}
	defer rows.Close()

	var mappings []*entity.SeatTypeMapping
	for rows.Next() {
		var m entity.SeatTypeMapping
		err := rows.Scan(&m.ID, &m.ScreenID, &m.SeatType, &m.SortOrder, &m.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan seat type row", zap.Error(err))
			return nil, fmt.Errorf("scan seat type row: %w", err)
		}
		mappings = append(mappings, &m)
	}

	return mappings, nil
}
