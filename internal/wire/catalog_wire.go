package wire

import (
	"movie-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, handler *adaptor.Handler) {
	// Screens
	r.Post("/api/screens", handler.Screen.CreateScreen)
	r.Get("/api/screens", handler.Screen.GetScreens)
	r.Get("/api/screens/{id}/layout", handler.Screen.GetSeatLayout)

	// Movies
	r.Post("/api/movies", handler.Movie.CreateMovie)
	r.Get("/api/movies", handler.Movie.GetMovies)

	// Shows
	r.Post("/api/shows", handler.Show.CreateShow)
	r.Get("/api/shows", handler.Show.GetShows)
	r.Get("/api/shows/{id}/seats", handler.Show.GetShowSeats)
}
