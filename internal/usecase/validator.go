package usecase

import (
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
)

// validateBookingRequest applies the booking rules in order; the first
// failing rule wins. available is the cache-assisted free-seat set, a
// cheap precheck over possibly stale data. The ledger commit re-checks
// seat availability authoritatively, so a stale set here can only cause
// an early rejection, never an over-booking.
func validateBookingRequest(seatIDs []uuid.UUID, show *entity.ShowDetail, showDate, now time.Time, available map[uuid.UUID]struct{}) error {
	if len(seatIDs) < MinSeatsPerBooking || len(seatIDs) > MaxSeatsPerBooking {
		return ErrInvalidSeatCount
	}

	if utils.DateOnly(showDate).Before(utils.DateOnly(now)) {
		return ErrPastShow
	}

	showStart := utils.CombineDateTime(showDate, show.StartTime)
	if showStart.Sub(now) < MinBookingHoursBefore*time.Hour {
		return ErrBookingWindowExpired
	}

	for _, seatID := range seatIDs {
		if _, ok := available[seatID]; !ok {
			return ErrSeatsUnavailable
		}
	}

	return nil
}
