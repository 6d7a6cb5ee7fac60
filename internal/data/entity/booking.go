package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a committed claim on a seat set for one (show, date) key.
// Rows are only ever written by the ledger commit; no seat referenced by
// a booking may appear in another booking for the same key.
type Booking struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	ShowID      uuid.UUID `db:"show_id"`
	ShowDate    time.Time `db:"show_date"`
	TotalSeats  int       `db:"total_seats"`
	TotalAmount float64   `db:"total_amount"`
}
