// Package cache holds the Redis-backed availability cache. All entries
// are advisory: booking decisions are always re-validated against the
// inventory ledger, so stale data here can cost a spurious rejection but
// never a double-booking.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"movie-reservation/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned when a key has no cached value.
var ErrCacheMiss = errors.New("cache miss")

const (
	// availabilityTTL bounds how long a computed free-seat set may live.
	// Invalidation after each commit keeps the practical staleness window
	// much smaller; the TTL only caps entries for keys nobody books.
	availabilityTTL = 30 * time.Minute

	// Seat layouts are immutable after provisioning, so they are stored
	// without expiry and removed explicitly when a screen is provisioned.
	layoutTTL = 0
)

type Store struct {
	client *redis.Client
	log    *zap.Logger
}

// New wraps the Redis client. A nil client is allowed and behaves as an
// always-empty cache, which keeps the service usable without Redis.
func New(client *redis.Client, log *zap.Logger) *Store {
	return &Store{
		client: client,
		log:    log.With(zap.String("component", "availability_cache")),
	}
}

func (s *Store) GetAvailableSeats(ctx context.Context, showID uuid.UUID, showDate time.Time) ([]uuid.UUID, error) {
	if s.client == nil {
		return nil, ErrCacheMiss
	}

	val, err := s.client.Get(ctx, availabilityKey(showID, showDate)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("get available seats: %w", err)
	}

	var seatIDs []uuid.UUID
	if err := json.Unmarshal(val, &seatIDs); err != nil {
		return nil, fmt.Errorf("decode available seats: %w", err)
	}

	return seatIDs, nil
}

func (s *Store) SetAvailableSeats(ctx context.Context, showID uuid.UUID, showDate time.Time, seatIDs []uuid.UUID) error {
	if s.client == nil {
		return nil
	}

	val, err := json.Marshal(seatIDs)
	if err != nil {
		return fmt.Errorf("encode available seats: %w", err)
	}

	if err := s.client.Set(ctx, availabilityKey(showID, showDate), val, availabilityTTL).Err(); err != nil {
		return fmt.Errorf("set available seats: %w", err)
	}

	return nil
}

func (s *Store) InvalidateAvailability(ctx context.Context, showID uuid.UUID, showDate time.Time) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Del(ctx, availabilityKey(showID, showDate)).Err(); err != nil {
		return fmt.Errorf("invalidate available seats: %w", err)
	}

	return nil
}

func (s *Store) GetSeatLayout(ctx context.Context, screenID uuid.UUID) (entity.SeatLayout, error) {
	if s.client == nil {
		return nil, ErrCacheMiss
	}

	val, err := s.client.Get(ctx, layoutKey(screenID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("get seat layout: %w", err)
	}

	var layout entity.SeatLayout
	if err := json.Unmarshal(val, &layout); err != nil {
		return nil, fmt.Errorf("decode seat layout: %w", err)
	}

	return layout, nil
}

func (s *Store) SetSeatLayout(ctx context.Context, screenID uuid.UUID, layout entity.SeatLayout) error {
	if s.client == nil {
		return nil
	}

	val, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("encode seat layout: %w", err)
	}

	if err := s.client.Set(ctx, layoutKey(screenID), val, layoutTTL).Err(); err != nil {
		return fmt.Errorf("set seat layout: %w", err)
	}

	return nil
}

func (s *Store) InvalidateSeatLayout(ctx context.Context, screenID uuid.UUID) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Del(ctx, layoutKey(screenID)).Err(); err != nil {
		return fmt.Errorf("invalidate seat layout: %w", err)
	}

	return nil
}

func availabilityKey(showID uuid.UUID, showDate time.Time) string {
	return fmt.Sprintf("available_seats:%s:%s", showID.String(), showDate.Format("20060102"))
}

func layoutKey(screenID uuid.UUID) string {
	return fmt.Sprintf("seat_layout:%s", screenID.String())
}
