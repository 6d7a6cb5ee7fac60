package wire

import (
	"movie-reservation/internal/adaptor"
	"movie-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, handler *adaptor.Handler, log *zap.Logger) {
	// Booking routes need the caller identity resolved by the gateway.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		r.Post("/api/bookings", handler.Booking.CreateBooking)
		r.Get("/api/user/bookings", handler.Booking.GetUserBookings)
	})
}
