package response

type ScreenResponse struct {
	ID           string   `json:"id"`
	ScreenNumber int      `json:"screen_number"`
	TotalSeats   int      `json:"total_seats"`
	SeatTypes    []string `json:"seat_types,omitempty"`
}
