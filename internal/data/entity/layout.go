package entity

import "github.com/google/uuid"

// SeatLayout describes a screen's seating arrangement keyed by seat type
// label. Computed from the catalog and cached; immutable after
// provisioning.
type SeatLayout map[string]SeatTypeLayout

type SeatTypeLayout struct {
	Rows    int            `json:"rows"`
	Columns int            `json:"columns"`
	Seats   []SeatPosition `json:"seats"`
}

type SeatPosition struct {
	ID         uuid.UUID `json:"id"`
	SeatNumber string    `json:"seat_number"`
	Row        int       `json:"row"`
	Column     int       `json:"column"`
}
