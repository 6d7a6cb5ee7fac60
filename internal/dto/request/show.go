package request

type ShowPriceRequest struct {
	SeatType string  `json:"seat_type" validate:"required,oneof=PLATINUM GOLD SILVER"`
	Price    float64 `json:"price" validate:"required,min=0"`
}

type CreateShowRequest struct {
	MovieID   string             `json:"movie_id" validate:"required,uuid4"`
	ScreenID  string             `json:"screen_id" validate:"required,uuid4"`
	StartTime string             `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string             `json:"end_time" validate:"required,datetime=15:04"`
	StartDate string             `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string             `json:"end_date" validate:"required,datetime=2006-01-02"`
	Prices    []ShowPriceRequest `json:"prices" validate:"required,min=1,dive"`
}
