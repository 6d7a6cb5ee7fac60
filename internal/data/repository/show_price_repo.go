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

type ShowPriceRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, price *entity.ShowPrice) error
	FindByShow(ctx context.Context, showID uuid.UUID) ([]*entity.ShowPrice, error)
}

type showPriceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowPriceRepository(db database.PgxIface, log *zap.Logger) ShowPriceRepository {
	return &showPriceRepository{
		db:  db,
		log: log.With(zap.String("repository", "show_price")),
	}
}

func (r *showPriceRepository) CreateTx(ctx context.Context, tx pgx.Tx, price *entity.ShowPrice) error {
	query := `
		INSERT INTO show_prices (id, show_id, seat_type, price, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query,
		price.ID,
		price.ShowID,
		price.SeatType,
		price.Price,
		price.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create show price",
			zap.Error(err),
			zap.String("show_id", price.ShowID.String()),
			zap.String("seat_type", price.SeatType),
		)
		return fmt.Errorf("create price for show %s seat type %s: %w",
			price.ShowID.String(), price.SeatType, err)
	}

	return nil
}

func (r *showPriceRepository) FindByShow(ctx context.Context, showID uuid.UUID) ([]*entity.ShowPrice, error) {
	query := `
		SELECT id, show_id, seat_type, price, created_at
		FROM show_prices
		WHERE show_id = $1
	`

	rows, err := r.db.Query(ctx, query, showID)
	if err != nil {
		r.log.Error("Failed to find prices by show",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
		return nil, fmt.Errorf("find prices by show %s: %w", showID.String(), err)
	}
	defer rows.Close()

	var prices []*entity.ShowPrice
	for rows.Next() {
		var p entity.ShowPrice
		err := rows.Scan(&p.ID, &p.ShowID, &p.SeatType, &p.Price, &p.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan show price row", zap.Error(err))
			return nil, fmt.Errorf("scan show price row: %w", err)
		}
		prices = append(prices, &p)
	}

	return prices, nil
}
