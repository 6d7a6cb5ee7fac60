package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/dto/response"
	"movie-reservation/internal/queue"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking runs a booking attempt end to end: validation against
	// the cached availability view, pricing, the atomic ledger commit and
	// the synchronous cache invalidation that follows it.
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	GetUserBookings(ctx context.Context, userID string) ([]*response.BookingResponse, error)
}

type bookingService struct {
	repo         *repository.Repository
	availability AvailabilityService
	publisher    *queue.Publisher
	log          *zap.Logger
	now          func() time.Time
}

func NewBookingService(repo *repository.Repository, availability AvailabilityService, publisher *queue.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:         repo,
		availability: availability,
		publisher:    publisher,
		log:          log.With(zap.String("service", "booking")),
		now:          time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	showID, err := uuid.Parse(req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("invalid show ID format %s: %w", req.ShowID, err)
	}

	showDate, err := utils.ParseDate(req.ShowDate)
	if err != nil {
		return nil, fmt.Errorf("invalid show date %s: %w", req.ShowDate, err)
	}

	seatUUIDs := make([]uuid.UUID, len(req.SeatIDs))
	for i, seatIDStr := range req.SeatIDs {
		seatID, err := uuid.Parse(seatIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid seat ID format %s: %w", seatIDStr, err)
		}
		seatUUIDs[i] = seatID
	}

	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("show %s not found", req.ShowID)
		}
		return nil, err
	}

	// Optimistic precheck over the cached view. Possibly stale; the
	// ledger commit below is the only authoritative availability check.
	availableIDs, err := s.availability.AvailableSeats(ctx, showID, showDate)
	if err != nil {
		// Ledger unreachable means no booking: fail closed.
		s.log.Error("Availability read failed", zap.Error(err), zap.String("show_id", req.ShowID))
		return nil, fmt.Errorf("check seat availability: %w", err)
	}

	available := make(map[uuid.UUID]struct{}, len(availableIDs))
	for _, id := range availableIDs {
		available[id] = struct{}{}
	}

	if err := validateBookingRequest(seatUUIDs, show, showDate, s.now(), available); err != nil {
		s.log.Info("Booking rejected by validation",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("show_id", req.ShowID),
			zap.Int("seat_count", len(seatUUIDs)),
		)
		return nil, err
	}

	// Price before committing so a rejected commit never leaves a priced
	// booking behind.
	seats, totalAmount, err := s.calculateTotal(ctx, show, seatUUIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userUUID,
		ShowID:      showID,
		ShowDate:    showDate,
		TotalSeats:  len(seatUUIDs),
		TotalAmount: totalAmount,
	}

	if err := s.repo.Inventory.Commit(ctx, booking, seatUUIDs); err != nil {
		switch {
		case errors.Is(err, repository.ErrSeatsUnavailable):
			// Lost the race: another request committed an overlapping
			// seat set after this one passed validation.
			s.log.Info("Seat conflict at commit",
				zap.String("user_id", userID),
				zap.String("show_id", req.ShowID),
				zap.Time("show_date", showDate),
			)
			return nil, ErrSeatsUnavailable
		case errors.Is(err, repository.ErrShowFull):
			return nil, ErrShowFull
		case errors.Is(err, repository.ErrNoSuchShowDate):
			s.log.Error("Booking hit unseeded show date",
				zap.String("show_id", req.ShowID),
				zap.Time("show_date", showDate),
			)
			return nil, fmt.Errorf("book show %s: %w", req.ShowID, err)
		default:
			s.log.Error("Ledger commit failed", zap.Error(err), zap.String("show_id", req.ShowID))
			return nil, fmt.Errorf("commit booking: %w", err)
		}
	}

	// Synchronous invalidation keeps the staleness window at "immediately
	// after commit" instead of TTL expiry.
	if err := s.availability.InvalidateAvailability(ctx, showID, showDate); err != nil {
		s.log.Warn("Availability invalidation failed",
			zap.Error(err),
			zap.String("show_id", req.ShowID),
			zap.Time("show_date", showDate),
		)
	}

	s.publishConfirmed(ctx, booking, seats)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("show_id", req.ShowID),
		zap.Time("show_date", showDate),
		zap.Int("seat_count", booking.TotalSeats),
		zap.Float64("total_amount", totalAmount),
	)

	return s.buildBookingResponse(ctx, booking, seatNumbers(seats)), nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]*response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUser(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	responses := make([]*response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		var numbers []string
		if seatIDs, err := s.repo.Booking.FindSeatIDs(ctx, booking.ID); err == nil {
			if seats, err := s.repo.Seat.FindWithTypeByIDs(ctx, seatIDs); err == nil {
				numbers = seatNumbers(seats)
			}
		}
		responses[i] = s.buildBookingResponse(ctx, booking, numbers)
	}

	return responses, nil
}

func (s *bookingService) publishConfirmed(ctx context.Context, booking *entity.Booking, seats []*entity.SeatWithType) {
	if s.publisher == nil {
		return
	}

	event := queue.BookingConfirmedEvent{
		BookingID:   booking.ID.String(),
		UserID:      booking.UserID.String(),
		ShowID:      booking.ShowID.String(),
		ShowDate:    booking.ShowDate.Format(utils.DateLayout),
		SeatNumbers: seatNumbers(seats),
		TotalAmount: booking.TotalAmount,
		CreatedAt:   booking.CreatedAt,
	}

	// Best effort only; a broker outage must not fail the booking.
	if err := s.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		s.log.Warn("Booking event publish failed",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking, numbers []string) *response.BookingResponse {
	resp := &response.BookingResponse{
		ID:          booking.ID.String(),
		UserID:      booking.UserID.String(),
		ShowID:      booking.ShowID.String(),
		ShowDate:    booking.ShowDate.Format(utils.DateLayout),
		TotalSeats:  booking.TotalSeats,
		TotalAmount: booking.TotalAmount,
		SeatNumbers: numbers,
		CreatedAt:   booking.CreatedAt,
	}

	show, err := s.repo.Show.FindByID(ctx, booking.ShowID)
	if err != nil {
		return resp
	}
	resp.StartTime = show.StartTime.Format(utils.TimeOfDayLayout)

	if movie, err := s.repo.Movie.FindByID(ctx, show.MovieID); err == nil {
		resp.MovieTitle = movie.Title
	}
	if screen, err := s.repo.Screen.FindByID(ctx, show.ScreenID); err == nil {
		resp.ScreenNumber = screen.ScreenNumber
	}

	return resp
}

func seatNumbers(seats []*entity.SeatWithType) []string {
	numbers := make([]string, len(seats))
	for i, seat := range seats {
		numbers[i] = seat.SeatNumber
	}
	return numbers
}
