package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingSeat maps a booking to one of its seats. ShowID/ShowDate are
// denormalized from the booking so the store can enforce uniqueness of
// (show_id, show_date, seat_id) with a single constraint.
type BookingSeat struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	ShowID    uuid.UUID `db:"show_id"`
	ShowDate  time.Time `db:"show_date"`
	SeatID    uuid.UUID `db:"seat_id"`
}
