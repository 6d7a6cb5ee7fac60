package request

type SeatTypeRequest struct {
	SeatType string `json:"seat_type" validate:"required,oneof=PLATINUM GOLD SILVER"`
	Order    int    `json:"order" validate:"required,min=1"`
	Rows     int    `json:"rows" validate:"required,min=1,max=50"`
	Columns  int    `json:"columns" validate:"required,min=1,max=50"`
}

type CreateScreenRequest struct {
	ScreenNumber int               `json:"screen_number" validate:"required,min=1"`
	SeatTypes    []SeatTypeRequest `json:"seat_types" validate:"required,min=1,dive"`
}
