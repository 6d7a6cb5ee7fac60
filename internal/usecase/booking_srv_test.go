package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	repo      *repository.Repository
	cache     *fakeCache
	inventory *fakeInventory
	bookings  *fakeBookingRepo

	movie  *entity.Movie
	screen *entity.Screen
	show   *entity.ShowDetail
	seats  []*entity.SeatWithType

	service *bookingService
	userID  string
	now     time.Time
}

// newBookingFixture provisions one screen with ten gold seats and a show
// running for three days, two days out from the fixed clock.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	movie := &entity.Movie{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title: "Interstellar",
	}
	screen := &entity.Screen{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ScreenNumber: 1,
		TotalSeats:   10,
	}

	seatTypeID := uuid.New()
	seats := make([]*entity.SeatWithType, 10)
	for i := range seats {
		seats[i] = &entity.SeatWithType{
			Seat: entity.Seat{
				BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
				SeatTypeID: seatTypeID,
				ScreenID:   screen.ID,
				SeatRow:    i/5 + 1,
				SeatColumn: i%5 + 1,
				SeatNumber: fmt.Sprintf("%d-%d", i/5+1, i%5+1),
			},
			SeatType: entity.SeatTypeGold,
		}
	}

	startDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	show := &entity.ShowDetail{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		MovieID:        movie.ID,
		ScreenID:       screen.ID,
		StartTime:      time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		EndTime:        time.Date(0, 1, 1, 21, 0, 0, 0, time.UTC),
		StartDate:      startDate,
		EndDate:        endDate,
		AvailableSeats: screen.TotalSeats,
	}

	bookings := &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*entity.Booking),
		seatIDs:  make(map[uuid.UUID][]uuid.UUID),
	}
	inventory := &fakeInventory{
		remaining: make(map[inventoryKey]int),
		booked:    make(map[inventoryKey]map[uuid.UUID]uuid.UUID),
		bookings:  bookings,
	}
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		inventory.remaining[invKey(show.ID, date)] = screen.TotalSeats
	}

	repo := &repository.Repository{
		Screen: &fakeScreenRepo{screens: map[uuid.UUID]*entity.Screen{screen.ID: screen}},
		Seat:   &fakeSeatRepo{seats: map[uuid.UUID][]*entity.SeatWithType{screen.ID: seats}},
		Movie:  &fakeMovieRepo{movies: map[uuid.UUID]*entity.Movie{movie.ID: movie}},
		Show:   &fakeShowRepo{shows: map[uuid.UUID]*entity.ShowDetail{show.ID: show}},
		ShowPrice: &fakeShowPriceRepo{prices: map[uuid.UUID][]*entity.ShowPrice{
			show.ID: {{
				BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
				ShowID:     show.ID,
				SeatType:   entity.SeatTypeGold,
				Price:      100,
			}},
		}},
		Inventory: inventory,
		Booking:   bookings,
	}

	cache := newFakeCache()
	log := zap.NewNop()
	availability := NewAvailabilityService(repo, cache, log)

	service := &bookingService{
		repo:         repo,
		availability: availability,
		log:          log,
		now:          func() time.Time { return now },
	}

	return &bookingFixture{
		repo:      repo,
		cache:     cache,
		inventory: inventory,
		bookings:  bookings,
		movie:     movie,
		screen:    screen,
		show:      show,
		seats:     seats,
		service:   service,
		userID:    uuid.New().String(),
		now:       now,
	}
}

func (f *bookingFixture) request(seatIdx ...int) *request.CreateBookingRequest {
	seatIDs := make([]string, len(seatIdx))
	for i, idx := range seatIdx {
		seatIDs[i] = f.seats[idx].ID.String()
	}
	return &request.CreateBookingRequest{
		ShowID:   f.show.ID.String(),
		ShowDate: "2026-03-13",
		SeatIDs:  seatIDs,
	}
}

func (f *bookingFixture) remaining(t *testing.T, showDate string) int {
	t.Helper()
	date, err := utils.ParseDate(showDate)
	require.NoError(t, err)
	remaining, err := f.inventory.GetRemaining(context.Background(), f.show.ID, date)
	require.NoError(t, err)
	return remaining
}

func TestCreateBooking_Success(t *testing.T) {
	f := newBookingFixture(t)

	resp, err := f.service.CreateBooking(context.Background(), f.userID, f.request(0, 1, 2))

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, f.userID, resp.UserID)
	assert.Equal(t, 3, resp.TotalSeats)
	assert.Equal(t, 300.0, resp.TotalAmount)
	assert.Equal(t, "Interstellar", resp.MovieTitle)
	assert.Equal(t, 1, resp.ScreenNumber)
	assert.Equal(t, "18:00", resp.StartTime)
	assert.Len(t, resp.SeatNumbers, 3)

	assert.Equal(t, 7, f.remaining(t, "2026-03-13"))
}

func TestCreateBooking_InvalidatesCacheAfterCommit(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	date, _ := utils.ParseDate("2026-03-13")

	// Warm the availability cache, then book.
	_, err := f.service.availability.AvailableSeats(ctx, f.show.ID, date)
	require.NoError(t, err)
	_, ok := f.cache.availability[invKey(f.show.ID, date)]
	require.True(t, ok)

	_, err = f.service.CreateBooking(ctx, f.userID, f.request(0))
	require.NoError(t, err)

	_, ok = f.cache.availability[invKey(f.show.ID, date)]
	assert.False(t, ok, "availability entry should be dropped after commit")
	assert.Equal(t, 1, f.cache.invalidations)

	// The next read recomputes without the booked seat.
	available, err := f.service.availability.AvailableSeats(ctx, f.show.ID, date)
	require.NoError(t, err)
	assert.Len(t, available, 9)
	assert.NotContains(t, available, f.seats[0].ID)
}

func TestCreateBooking_OverlappingSeats(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateBooking(ctx, f.userID, f.request(0, 1))
	require.NoError(t, err)

	_, err = f.service.CreateBooking(ctx, uuid.New().String(), f.request(1, 2))
	assert.ErrorIs(t, err, ErrSeatsUnavailable)

	// The failed attempt must not touch the ledger.
	assert.Equal(t, 8, f.remaining(t, "2026-03-13"))
	assert.Equal(t, 1, f.inventory.commits)
}

func TestCreateBooking_ConcurrentOverlap(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	// {0,1} vs {1,2}: the shared seat admits at most one winner.
	requests := []*request.CreateBookingRequest{
		f.request(0, 1),
		f.request(1, 2),
	}

	errs := make([]error, len(requests))
	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req *request.CreateBookingRequest) {
			defer wg.Done()
			_, errs[i] = f.service.CreateBooking(ctx, uuid.New().String(), req)
		}(i, req)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSeatsUnavailable)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 8, f.remaining(t, "2026-03-13"))
}

func TestCreateBooking_ConcurrentDisjoint(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	requests := []*request.CreateBookingRequest{
		f.request(0, 1),
		f.request(2, 3),
		f.request(4),
	}

	errs := make([]error, len(requests))
	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req *request.CreateBookingRequest) {
			defer wg.Done()
			_, errs[i] = f.service.CreateBooking(ctx, uuid.New().String(), req)
		}(i, req)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "request %d", i)
	}
	assert.Equal(t, 5, f.remaining(t, "2026-03-13"))
}

func TestCreateBooking_DatesAreIndependent(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateBooking(ctx, f.userID, f.request(0, 1))
	require.NoError(t, err)

	// The same seats on a different date are a different inventory key.
	req := f.request(0, 1)
	req.ShowDate = "2026-03-14"
	_, err = f.service.CreateBooking(ctx, uuid.New().String(), req)
	require.NoError(t, err)

	assert.Equal(t, 8, f.remaining(t, "2026-03-13"))
	assert.Equal(t, 8, f.remaining(t, "2026-03-14"))
}

func TestCreateBooking_TooManySeats(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	req.SeatIDs = append(req.SeatIDs, uuid.New().String())

	_, err := f.service.CreateBooking(context.Background(), f.userID, req)
	assert.ErrorIs(t, err, ErrInvalidSeatCount)
	assert.Equal(t, 0, f.inventory.commits)
}

func TestCreateBooking_PastShowDate(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request(0)
	req.ShowDate = "2026-03-09"

	_, err := f.service.CreateBooking(context.Background(), f.userID, req)
	assert.ErrorIs(t, err, ErrPastShow)
	assert.Equal(t, 0, f.inventory.commits)
}

func TestCreateBooking_CutoffExpired(t *testing.T) {
	f := newBookingFixture(t)

	// 17:00 same day for an 18:00 show is inside the two hour cutoff.
	f.service.now = func() time.Time {
		return time.Date(2026, 3, 13, 17, 0, 0, 0, time.UTC)
	}

	_, err := f.service.CreateBooking(context.Background(), f.userID, f.request(0))
	assert.ErrorIs(t, err, ErrBookingWindowExpired)
	assert.Equal(t, 0, f.inventory.commits)
}

func TestCreateBooking_StaleCacheNeverOverbooks(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	date, _ := utils.ParseDate("2026-03-13")

	// Plant a stale cache entry claiming every seat is free, then book
	// seat 0 directly through the ledger behind the cache's back.
	allIDs := make([]uuid.UUID, len(f.seats))
	for i, seat := range f.seats {
		allIDs[i] = seat.ID
	}
	require.NoError(t, f.cache.SetAvailableSeats(ctx, f.show.ID, date, allIDs))

	ghost := &entity.Booking{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: f.now, UpdatedAt: f.now},
		UserID:   uuid.New(),
		ShowID:   f.show.ID,
		ShowDate: date,
	}
	require.NoError(t, f.inventory.Commit(ctx, ghost, []uuid.UUID{f.seats[0].ID}))

	// The stale cache lets the request past validation; the commit is
	// what must reject it.
	_, err := f.service.CreateBooking(ctx, f.userID, f.request(0))
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
	assert.Equal(t, 8, f.remaining(t, "2026-03-13"))
}

func TestCreateBooking_ShowFull(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateBooking(ctx, f.userID, f.request(0, 1, 2, 3, 4, 5, 6, 7))
	require.NoError(t, err)

	_, err = f.service.CreateBooking(ctx, uuid.New().String(), f.request(8, 9))
	require.NoError(t, err)

	// Zero remaining, so any further request is rejected.
	req := f.request(0)
	_, err = f.service.CreateBooking(ctx, uuid.New().String(), req)
	assert.Error(t, err)
	assert.Equal(t, 0, f.remaining(t, "2026-03-13"))
}

func TestCreateBooking_MissingPrice(t *testing.T) {
	f := newBookingFixture(t)

	// Drop the price table for the show.
	f.repo.ShowPrice = &fakeShowPriceRepo{prices: map[uuid.UUID][]*entity.ShowPrice{}}

	_, err := f.service.CreateBooking(context.Background(), f.userID, f.request(0))
	assert.ErrorIs(t, err, ErrMissingPrice)
	assert.Equal(t, 0, f.inventory.commits, "pricing failure must precede the commit")
}

func TestCreateBooking_UnknownSeat(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request(0)
	req.SeatIDs = []string{uuid.New().String()}

	_, err := f.service.CreateBooking(context.Background(), f.userID, req)
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
}

func TestCreateBooking_UnknownShow(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request(0)
	req.ShowID = uuid.New().String()

	_, err := f.service.CreateBooking(context.Background(), f.userID, req)
	assert.ErrorContains(t, err, "not found")
}

func TestGetUserBookings(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateBooking(ctx, f.userID, f.request(0, 1))
	require.NoError(t, err)
	_, err = f.service.CreateBooking(ctx, uuid.New().String(), f.request(2))
	require.NoError(t, err)

	bookings, err := f.service.GetUserBookings(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, f.userID, bookings[0].UserID)
	assert.Equal(t, 2, bookings[0].TotalSeats)
	assert.Equal(t, 200.0, bookings[0].TotalAmount)
	assert.ElementsMatch(t, []string{"1-1", "1-2"}, bookings[0].SeatNumbers)
}
