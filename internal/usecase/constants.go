package usecase

// Booking business rules, mirrored in the user-facing messages in
// errors.go.
const (
	MinSeatsPerBooking = 1
	MaxSeatsPerBooking = 10

	// MinBookingHoursBefore is the booking cutoff: requests closer than
	// this to the show's start on the chosen date are rejected.
	MinBookingHoursBefore = 2

	// BookingWindowDays bounds how far ahead the upcoming-shows listing
	// reaches.
	BookingWindowDays = 30
)
