package response

import "time"

type BookingResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ShowID       string    `json:"show_id"`
	ShowDate     string    `json:"show_date"`
	MovieTitle   string    `json:"movie_title,omitempty"`
	ScreenNumber int       `json:"screen_number,omitempty"`
	StartTime    string    `json:"start_time,omitempty"`
	TotalSeats   int       `json:"total_seats"`
	TotalAmount  float64   `json:"total_amount"`
	SeatNumbers  []string  `json:"seat_numbers,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
