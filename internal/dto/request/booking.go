package request

type CreateBookingRequest struct {
	ShowID   string   `json:"show_id" validate:"required,uuid4"`
	ShowDate string   `json:"show_date" validate:"required,datetime=2006-01-02"`
	SeatIDs  []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
}
