package usecase

import (
	"errors"
	"fmt"
)

// User-facing booking errors. Messages are fixed; handlers surface them
// verbatim. Seat conflicts detected at commit time reuse
// ErrSeatsUnavailable so callers cannot tell a lost race from a seat that
// was already gone.
var (
	ErrInvalidSeatCount = fmt.Errorf("number of seats must be between %d and %d",
		MinSeatsPerBooking, MaxSeatsPerBooking)
	ErrPastShow             = errors.New("cannot book tickets for past shows")
	ErrBookingWindowExpired = fmt.Errorf("booking must be done at least %d hours before show time",
		MinBookingHoursBefore)
	ErrSeatsUnavailable = errors.New("the selected seats are not available")
	ErrShowFull         = errors.New("this show is fully booked")
	ErrInvalidDateRange = errors.New("end date must be after start date")
)

// Provisioning/data-integrity errors. Not user mistakes; logged
// distinctly and surfaced as generic failures on the booking path.
var (
	ErrMissingPrice     = errors.New("no price configured for seat type")
	ErrUnknownSeat      = errors.New("booking references unknown seats")
	ErrSeatNotInScreen  = errors.New("seat does not belong to the show's screen")
	ErrInvalidSeatOrder = errors.New("seat type order must be a contiguous sequence starting at 1")
	ErrPriceMismatch    = errors.New("prices must cover each seat type of the screen exactly once")
)
