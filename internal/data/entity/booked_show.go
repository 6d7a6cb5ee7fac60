package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookedShowDetail is the per-(show, calendar date) inventory counter:
// one row per day in the show's date range, seeded to screen capacity
// when the show is created. AvailableSeats is the authoritative remaining
// count for that date and is only ever mutated inside a ledger commit.
type BookedShowDetail struct {
	BaseSimple
	ShowID         uuid.UUID `db:"show_id"`
	ShowDate       time.Time `db:"show_date"`
	AvailableSeats int       `db:"available_seats"`
}
