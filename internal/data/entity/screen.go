package entity

import "github.com/google/uuid"

const (
	SeatTypePlatinum = "PLATINUM"
	SeatTypeGold     = "GOLD"
	SeatTypeSilver   = "SILVER"
)

// Screen is an auditorium. TotalSeats is the sum over its seat type
// blocks; recomputed whenever seat types are added at provisioning time.
type Screen struct {
	Base
	ScreenNumber int `db:"screen_number"`
	TotalSeats   int `db:"total_seats"`
}

// SeatTypeMapping assigns a pricing tier to a contiguous block of rows on
// a screen. SortOrder values form a 1..N sequence per screen, no gaps or
// duplicates; they fix the vertical layout order of the blocks.
type SeatTypeMapping struct {
	BaseSimple
	ScreenID  uuid.UUID `db:"screen_id"`
	SeatType  string    `db:"seat_type"`
	SortOrder int       `db:"sort_order"`
}
