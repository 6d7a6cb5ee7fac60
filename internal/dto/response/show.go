package response

import "movie-reservation/internal/data/entity"

type ShowPriceResponse struct {
	SeatType string  `json:"seat_type"`
	Price    float64 `json:"price"`
}

type ShowResponse struct {
	ID             string              `json:"id"`
	MovieID        string              `json:"movie_id"`
	ScreenID       string              `json:"screen_id"`
	MovieTitle     string              `json:"movie_title,omitempty"`
	ScreenNumber   int                 `json:"screen_number,omitempty"`
	StartTime      string              `json:"start_time"`
	EndTime        string              `json:"end_time"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	AvailableSeats int                 `json:"available_seats"`
	Prices         []ShowPriceResponse `json:"prices,omitempty"`
}

type ShowSeatsResponse struct {
	ShowID         string            `json:"show_id"`
	ShowDate       string            `json:"show_date"`
	Layout         entity.SeatLayout `json:"layout"`
	AvailableSeats []string          `json:"available_seats"`
}
