package adaptor

import (
	"movie-reservation/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Screen  *ScreenHandler
	Movie   *MovieHandler
	Show    *ShowHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Screen:  NewScreenHandler(service.Catalog, log),
		Movie:   NewMovieHandler(service.Catalog, log),
		Show:    NewShowHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
