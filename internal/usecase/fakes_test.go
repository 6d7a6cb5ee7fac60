package usecase

import (
	"context"
	"sync"
	"time"

	"movie-reservation/internal/data/cache"
	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// In-memory repository fakes. The inventory fake serializes commits per
// (show, date) key with a mutex, mirroring the row lock the real store
// takes.

type fakeShowRepo struct {
	shows map[uuid.UUID]*entity.ShowDetail
}

func (f *fakeShowRepo) CreateTx(ctx context.Context, tx pgx.Tx, show *entity.ShowDetail) error {
	f.shows[show.ID] = show
	return nil
}

func (f *fakeShowRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowDetail, error) {
	show, ok := f.shows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return show, nil
}

func (f *fakeShowRepo) FindUpcoming(ctx context.Context, from, until time.Time) ([]*entity.ShowDetail, error) {
	var shows []*entity.ShowDetail
	for _, show := range f.shows {
		if !show.EndDate.Before(from) && !show.StartDate.After(until) {
			shows = append(shows, show)
		}
	}
	return shows, nil
}

type fakeSeatRepo struct {
	seats map[uuid.UUID][]*entity.SeatWithType // keyed by screen ID
}

func (f *fakeSeatRepo) CreateBatchTx(ctx context.Context, tx pgx.Tx, seats []*entity.Seat) error {
	return nil
}

func (f *fakeSeatRepo) FindByScreen(ctx context.Context, screenID uuid.UUID) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	for _, seat := range f.seats[screenID] {
		s := seat.Seat
		seats = append(seats, &s)
	}
	return seats, nil
}

func (f *fakeSeatRepo) FindWithTypeByScreen(ctx context.Context, screenID uuid.UUID) ([]*entity.SeatWithType, error) {
	return f.seats[screenID], nil
}

func (f *fakeSeatRepo) FindWithTypeByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.SeatWithType, error) {
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var seats []*entity.SeatWithType
	for _, screenSeats := range f.seats {
		for _, seat := range screenSeats {
			if _, ok := want[seat.ID]; ok {
				seats = append(seats, seat)
			}
		}
	}
	return seats, nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return movie, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for _, movie := range f.movies {
		movies = append(movies, movie)
	}
	return movies, nil
}

type fakeScreenRepo struct {
	screens map[uuid.UUID]*entity.Screen
}

func (f *fakeScreenRepo) CreateTx(ctx context.Context, tx pgx.Tx, screen *entity.Screen) error {
	f.screens[screen.ID] = screen
	return nil
}

func (f *fakeScreenRepo) CreateSeatTypeTx(ctx context.Context, tx pgx.Tx, mapping *entity.SeatTypeMapping) error {
	return nil
}

func (f *fakeScreenRepo) UpdateTotalSeatsTx(ctx context.Context, tx pgx.Tx, screenID uuid.UUID, totalSeats int) error {
	if screen, ok := f.screens[screenID]; ok {
		screen.TotalSeats = totalSeats
	}
	return nil
}

func (f *fakeScreenRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screen, error) {
	screen, ok := f.screens[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return screen, nil
}

func (f *fakeScreenRepo) FindAll(ctx context.Context) ([]*entity.Screen, error) {
	var screens []*entity.Screen
	for _, screen := range f.screens {
		screens = append(screens, screen)
	}
	return screens, nil
}

func (f *fakeScreenRepo) FindSeatTypesByScreen(ctx context.Context, screenID uuid.UUID) ([]*entity.SeatTypeMapping, error) {
	return nil, nil
}

type fakeShowPriceRepo struct {
	prices map[uuid.UUID][]*entity.ShowPrice // keyed by show ID
}

func (f *fakeShowPriceRepo) CreateTx(ctx context.Context, tx pgx.Tx, price *entity.ShowPrice) error {
	f.prices[price.ShowID] = append(f.prices[price.ShowID], price)
	return nil
}

func (f *fakeShowPriceRepo) FindByShow(ctx context.Context, showID uuid.UUID) ([]*entity.ShowPrice, error) {
	return f.prices[showID], nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
	seatIDs  map[uuid.UUID][]uuid.UUID // keyed by booking ID
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) FindSeatIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seatIDs[bookingID], nil
}

type inventoryKey struct {
	showID uuid.UUID
	date   string
}

// fakeInventory keeps remaining counts and booked seat sets per
// (show, date) under one mutex, like the real FOR UPDATE row lock but
// coarser.
type fakeInventory struct {
	mu        sync.Mutex
	remaining map[inventoryKey]int
	booked    map[inventoryKey]map[uuid.UUID]uuid.UUID // seat ID -> booking ID
	bookings  *fakeBookingRepo
	commits   int
}

func invKey(showID uuid.UUID, showDate time.Time) inventoryKey {
	return inventoryKey{showID: showID, date: showDate.Format("2006-01-02")}
}

func (f *fakeInventory) GetRemaining(ctx context.Context, showID uuid.UUID, showDate time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	remaining, ok := f.remaining[invKey(showID, showDate)]
	if !ok {
		return 0, repository.ErrNoSuchShowDate
	}
	return remaining, nil
}

func (f *fakeInventory) GetBookedSeats(ctx context.Context, showID uuid.UUID, showDate time.Time) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var seatIDs []uuid.UUID
	for seatID := range f.booked[invKey(showID, showDate)] {
		seatIDs = append(seatIDs, seatID)
	}
	return seatIDs, nil
}

func (f *fakeInventory) Commit(ctx context.Context, booking *entity.Booking, seatIDs []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := invKey(booking.ShowID, booking.ShowDate)
	remaining, ok := f.remaining[key]
	if !ok {
		return repository.ErrNoSuchShowDate
	}
	if remaining < len(seatIDs) {
		return repository.ErrShowFull
	}

	taken := f.booked[key]
	for _, seatID := range seatIDs {
		if _, conflict := taken[seatID]; conflict {
			return repository.ErrSeatsUnavailable
		}
	}

	if taken == nil {
		taken = make(map[uuid.UUID]uuid.UUID)
		f.booked[key] = taken
	}
	for _, seatID := range seatIDs {
		taken[seatID] = booking.ID
	}
	f.remaining[key] = remaining - len(seatIDs)
	f.commits++

	if f.bookings != nil {
		f.bookings.mu.Lock()
		f.bookings.bookings[booking.ID] = booking
		f.bookings.seatIDs[booking.ID] = append([]uuid.UUID(nil), seatIDs...)
		f.bookings.mu.Unlock()
	}

	return nil
}

func (f *fakeInventory) CreateBatchTx(ctx context.Context, tx pgx.Tx, rows []*entity.BookedShowDetail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range rows {
		f.remaining[invKey(row.ShowID, row.ShowDate)] = row.AvailableSeats
	}
	return nil
}

// fakeCache is an in-memory SeatCache. failWith, when set, is returned
// from every read so fail-open behavior can be exercised.
type fakeCache struct {
	mu            sync.Mutex
	availability  map[inventoryKey][]uuid.UUID
	layouts       map[uuid.UUID]entity.SeatLayout
	failWith      error
	invalidations int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		availability: make(map[inventoryKey][]uuid.UUID),
		layouts:      make(map[uuid.UUID]entity.SeatLayout),
	}
}

func (f *fakeCache) GetAvailableSeats(ctx context.Context, showID uuid.UUID, showDate time.Time) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	seatIDs, ok := f.availability[invKey(showID, showDate)]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return seatIDs, nil
}

func (f *fakeCache) SetAvailableSeats(ctx context.Context, showID uuid.UUID, showDate time.Time, seatIDs []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.availability[invKey(showID, showDate)] = append([]uuid.UUID(nil), seatIDs...)
	return nil
}

func (f *fakeCache) InvalidateAvailability(ctx context.Context, showID uuid.UUID, showDate time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.availability, invKey(showID, showDate))
	f.invalidations++
	return nil
}

func (f *fakeCache) GetSeatLayout(ctx context.Context, screenID uuid.UUID) (entity.SeatLayout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	layout, ok := f.layouts[screenID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return layout, nil
}

func (f *fakeCache) SetSeatLayout(ctx context.Context, screenID uuid.UUID, layout entity.SeatLayout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.layouts[screenID] = layout
	return nil
}

func (f *fakeCache) InvalidateSeatLayout(ctx context.Context, screenID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.layouts, screenID)
	return nil
}
