package usecase

import (
	"context"
	"errors"
	"time"

	"movie-reservation/internal/data/cache"
	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeatCache is the cache backend contract consumed by the availability
// service. Implemented by the Redis store; tests substitute fakes.
type SeatCache interface {
	GetAvailableSeats(ctx context.Context, showID uuid.UUID, showDate time.Time) ([]uuid.UUID, error)
	SetAvailableSeats(ctx context.Context, showID uuid.UUID, showDate time.Time, seatIDs []uuid.UUID) error
	InvalidateAvailability(ctx context.Context, showID uuid.UUID, showDate time.Time) error
	GetSeatLayout(ctx context.Context, screenID uuid.UUID) (entity.SeatLayout, error)
	SetSeatLayout(ctx context.Context, screenID uuid.UUID, layout entity.SeatLayout) error
	InvalidateSeatLayout(ctx context.Context, screenID uuid.UUID) error
}

/// AvailabilityService computes derived read views over catalog + ledger:
// the free-seat set per (show, date) and the static seat layout per
// screen. Both are read-through cached; the cache is advisory only.
type AvailabilityService interface {
	AvailableSeats(ctx context.Context, showID uuid.UUID, showDate time.Time) ([]uuid.UUID, error)
	SeatLayout(ctx context.Context, screenID uuid.UUID) (entity.SeatLayout, error)
	InvalidateAvailability(ctx context.Context, showID uuid.UUID, showDate time.Time) error
}

type availabilityService struct {
	repo  *repository.Repository
	cache SeatCache
	log   *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, cache SeatCache, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) AvailableSeats(ctx context.Context, showID uuid.UUID, showDate time.Time) ([]uuid.UUID, error) {
	if seatIDs, err := s.cache.GetAvailableSeats(ctx, showID, showDate); err == nil {
		return seatIDs, nil
	} else if !isCacheMiss(err) {
		// Cache outage fails open: recompute from the ledger below.
		s.log.Warn("Availability cache read failed",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
	}

	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, err
	}

	seats, err := s.repo.Seat.FindByScreen(ctx, show.ScreenID)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.Inventory.GetBookedSeats(ctx, showID, showDate)
	if err != nil {
		return nil, err
	}

	bookedSet := make(map[uuid.UUID]struct{}, len(booked))
	for _, seatID := range booked {
		bookedSet[seatID] = struct{}{}
	}

	available := make([]uuid.UUID, 0, len(seats))
	for _, seat := range seats {
		if _, taken := bookedSet[seat.ID]; !taken {
			available = append(available, seat.ID)
		}
	}

	if err := s.cache.SetAvailableSeats(ctx, showID, showDate, available); err != nil {
		s.log.Warn("Availability cache write failed",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
	}

	return available, nil
}

func (s *availabilityService) SeatLayout(ctx context.Context, screenID uuid.UUID) (entity.SeatLayout, error) {
	if layout, err := s.cache.GetSeatLayout(ctx, screenID); err == nil {
		return layout, nil
	} else if !isCacheMiss(err) {
		s.log.Warn("Layout cache read failed",
			zap.Error(err),
			zap.String("screen_id", screenID.String()),
		)
	}

	seats, err := s.repo.Seat.FindWithTypeByScreen(ctx, screenID)
	if err != nil {
		return nil, err
	}

	layout := buildSeatLayout(seats)

	if err := s.cache.SetSeatLayout(ctx, screenID, layout); err != nil {
		s.log.Warn("Layout cache write failed",
			zap.Error(err),
			zap.String("screen_id", screenID.String()),
		)
	}

	return layout, nil
}

func (s *availabilityService) InvalidateAvailability(ctx context.Context, showID uuid.UUID, showDate time.Time) error {
	return s.cache.InvalidateAvailability(ctx, showID, showDate)
}

func isCacheMiss(err error) bool {
	return errors.Is(err, cache.ErrCacheMiss)
}

// buildSeatLayout groups a screen's seats by type label, recording the
// row/column extent of each block.
func buildSeatLayout(seats []*entity.SeatWithType) entity.SeatLayout {
	layout := make(entity.SeatLayout)
	minRow := make(map[string]int)
	maxRow := make(map[string]int)

	for _, seat := range seats {
		block := layout[seat.SeatType]
		if block.Seats == nil {
			minRow[seat.SeatType] = seat.SeatRow
			maxRow[seat.SeatType] = seat.SeatRow
		}
		if seat.SeatRow < minRow[seat.SeatType] {
			minRow[seat.SeatType] = seat.SeatRow
		}
		if seat.SeatRow > maxRow[seat.SeatType] {
			maxRow[seat.SeatType] = seat.SeatRow
		}
		block.Rows = maxRow[seat.SeatType] - minRow[seat.SeatType] + 1
		if seat.SeatColumn > block.Columns {
			block.Columns = seat.SeatColumn
		}
		block.Seats = append(block.Seats, entity.SeatPosition{
			ID:         seat.ID,
			SeatNumber: seat.SeatNumber,
			Row:        seat.SeatRow,
			Column:     seat.SeatColumn,
		})
		layout[seat.SeatType] = block
	}

	return layout
}
