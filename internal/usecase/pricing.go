package usecase

import (
	"context"
	"fmt"

	"movie-reservation/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// calculateTotal resolves each seat's type and sums the show's per-type
// prices. A seat type without a configured price is a provisioning bug
// and fails the booking hard; defaulting to zero would hide it. Also
// rejects seats that do not belong to the show's screen.
func (s *bookingService) calculateTotal(ctx context.Context, show *entity.ShowDetail, seatIDs []uuid.UUID) ([]*entity.SeatWithType, float64, error) {
	seats, err := s.repo.Seat.FindWithTypeByIDs(ctx, seatIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("load seats for pricing: %w", err)
	}
	if len(seats) != len(seatIDs) {
		s.log.Error("Booking references unknown seats",
			zap.String("show_id", show.ID.String()),
			zap.Int("requested", len(seatIDs)),
			zap.Int("found", len(seats)),
		)
		return nil, 0, ErrUnknownSeat
	}

	prices, err := s.repo.ShowPrice.FindByShow(ctx, show.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("load show prices: %w", err)
	}

	priceByType := make(map[string]float64, len(prices))
	for _, price := range prices {
		priceByType[price.SeatType] = price.Price
	}

	var total float64
	for _, seat := range seats {
		if seat.ScreenID != show.ScreenID {
			s.log.Error("Seat belongs to another screen",
				zap.String("seat_id", seat.ID.String()),
				zap.String("show_id", show.ID.String()),
			)
			return nil, 0, ErrSeatNotInScreen
		}

		price, ok := priceByType[seat.SeatType]
		if !ok {
			s.log.Error("Missing price for seat type",
				zap.String("show_id", show.ID.String()),
				zap.String("seat_type", seat.SeatType),
			)
			return nil, 0, fmt.Errorf("show %s seat type %s: %w", show.ID.String(), seat.SeatType, ErrMissingPrice)
		}
		total += price
	}

	return seats, total, nil
}
