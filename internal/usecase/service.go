package usecase

import (
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/queue"

	"go.uber.org/zap"
)

// Service bundles the use case layer for the transport wiring.
type Service struct {
	Catalog      CatalogService
	Availability AvailabilityService
	Booking      BookingService
}

func NewService(repo *repository.Repository, cache SeatCache, publisher *queue.Publisher, log *zap.Logger) *Service {
	availability := NewAvailabilityService(repo, cache, log)

	return &Service{
		Catalog:      NewCatalogService(repo, cache, availability, log),
		Availability: availability,
		Booking:      NewBookingService(repo, availability, publisher, log),
	}
}
