package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShowDetail is a movie scheduled on a screen, recurring daily over
// [StartDate, EndDate]. StartTime/EndTime carry only the time of day.
//
// AvailableSeats is a static capacity snapshot taken from the screen at
// creation. Per-date remaining counts live in BookedShowDetail; this field
// is display data only and must never be read for availability decisions.
type ShowDetail struct {
	Base
	MovieID        uuid.UUID `db:"movie_id"`
	ScreenID       uuid.UUID `db:"screen_id"`
	StartTime      time.Time `db:"start_time"`
	EndTime        time.Time `db:"end_time"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	AvailableSeats int       `db:"available_seats"`
}
