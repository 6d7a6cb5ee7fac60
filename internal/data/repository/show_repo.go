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

type ShowRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, show *entity.ShowDetail) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowDetail, error)
	// FindUpcoming returns shows whose date range intersects [from, until].
	FindUpcoming(ctx context.Context, from, until time.Time) ([]*entity.ShowDetail, error)
}

type showRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowRepository(db database.PgxIface, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

func (r *showRepository) CreateTx(ctx context.Context, tx pgx.Tx, show *entity.ShowDetail) error {
	query := `
		INSERT INTO show_details (id, movie_id, screen_id, start_time, end_time, start_date, end_date, available_seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := tx.Exec(ctx, query,
		show.ID,
		show.MovieID,
		show.ScreenID,
		show.StartTime,
		show.EndTime,
		show.StartDate,
		show.EndDate,
		show.AvailableSeats,
		show.CreatedAt,
		show.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create show",
			zap.Error(err),
			zap.String("movie_id", show.MovieID.String()),
			zap.String("screen_id", show.ScreenID.String()),
		)
		return fmt.Errorf("create show for movie %s: %w", show.MovieID.String(), err)
	}

	return nil
}

func (r *showRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowDetail, error) {
	query := `
		SELECT id, movie_id, screen_id, start_time, end_time, start_date, end_date, available_seats, created_at, updated_at
		FROM show_details
		WHERE id = $1
	`

	var s entity.ShowDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.MovieID,
		&s.ScreenID,
		&s.StartTime,
		&s.EndTime,
		&s.StartDate,
		&s.EndDate,
		&s.AvailableSeats,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.log.Error("Failed to find show by ID",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return nil, fmt.Errorf("find show by ID %s: %w", id.String(), err)
	}

	return &s, nil
}

func (r *showRepository) FindUpcoming(ctx context.Context, from, until time.Time) ([]*entity.ShowDetail, error) {
	query := `
		SELECT id, movie_id, screen_id, start_time, end_time, start_date, end_date, available_seats, created_at, updated_at
		FROM show_details
		WHERE end_date >= $1 AND start_date <= $2
		ORDER BY start_date, start_time
	`

	rows, err := r.db.Query(ctx, query, from, until)
	if err != nil {
		r.log.Error("Failed to find upcoming shows", zap.Error(err))
		return nil, fmt.Errorf("find upcoming shows: %w", err)
	}
	defer rows.Close()

	var shows []*entity.ShowDetail
	for rows.Next() {
		var s entity.ShowDetail
		err := rows.Scan(
			&s.ID, &s.MovieID, &s.ScreenID,
			&s.StartTime, &s.EndTime, &s.StartDate, &s.EndDate,
			&s.AvailableSeats, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &s)
	}

	return shows, nil
}
