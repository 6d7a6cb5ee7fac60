package repository

import (
	"context"

	"movie-reservation/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	Screen    ScreenRepository
	Seat      SeatRepository
	Movie     MovieRepository
	Show      ShowRepository
	ShowPrice ShowPriceRepository
	Inventory InventoryRepository
	Booking   BookingRepository

	db database.PgxIface
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Screen:    NewScreenRepository(db, log),
		Seat:      NewSeatRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Show:      NewShowRepository(db, log),
		ShowPrice: NewShowPriceRepository(db, log),
		Inventory: NewInventoryRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		db:        db,
	}
}

// Begin opens a transaction for multi-repository provisioning writes
// (screen + seats, show + prices + inventory seeding).
func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}
