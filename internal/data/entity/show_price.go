package entity

import "github.com/google/uuid"

// ShowPrice sets the ticket price for one seat type of one show.
// Exactly one row exists per (show, seat type).
type ShowPrice struct {
	BaseSimple
	ShowID   uuid.UUID `db:"show_id"`
	SeatType string    `db:"seat_type"`
	Price    float64   `db:"price"`
}
