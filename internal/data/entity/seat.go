package entity

import "github.com/google/uuid"

// Seat is immutable once created. (screen, row, column) is unique; rows
// run contiguously across seat type blocks within a screen.
type Seat struct {
	BaseSimple
	SeatTypeID uuid.UUID `db:"seat_type_id"`
	ScreenID   uuid.UUID `db:"screen_id"`
	SeatRow    int       `db:"seat_row"`
	SeatColumn int       `db:"seat_column"`
	SeatNumber string    `db:"seat_number"` // derived from row/column, e.g. "3-7"
}

// SeatWithType pairs a seat with its seat type label, for pricing and
// layout queries that join through the type mapping.
type SeatWithType struct {
	Seat
	SeatType string `db:"seat_type"`
}
