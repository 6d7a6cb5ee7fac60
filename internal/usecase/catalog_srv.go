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
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService owns provisioning and read access for catalog entities.
// Catalog data is immutable once provisioned; the booking path only reads
// it.
type CatalogService interface {
	CreateScreen(ctx context.Context, req *request.CreateScreenRequest) (*response.ScreenResponse, error)
	ListScreens(ctx context.Context) ([]*response.ScreenResponse, error)
	SeatLayout(ctx context.Context, screenID string) (entity.SeatLayout, error)

	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	ListMovies(ctx context.Context) ([]*response.MovieResponse, error)

	CreateShow(ctx context.Context, req *request.CreateShowRequest) (*response.ShowResponse, error)
	ListShows(ctx context.Context) ([]*response.ShowResponse, error)
	ShowSeats(ctx context.Context, showID, showDate string) (*response.ShowSeatsResponse, error)
}

type catalogService struct {
	repo         *repository.Repository
	cache        SeatCache
	availability AvailabilityService
	log          *zap.Logger
}

func NewCatalogService(repo *repository.Repository, cache SeatCache, availability AvailabilityService, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:         repo,
		cache:        cache,
		availability: availability,
		log:          log.With(zap.String("service", "catalog")),
	}
}

// CreateScreen provisions a screen with its seat type blocks and seats in
// one transaction. Rows are laid out contiguously across blocks in the
// given order; total seat count is the sum over all blocks.
func (s *catalogService) CreateScreen(ctx context.Context, req *request.CreateScreenRequest) (*response.ScreenResponse, error) {
	ordered, err := orderSeatTypes(req.SeatTypes)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin screen tx: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	screen := &entity.Screen{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ScreenNumber: req.ScreenNumber,
	}

	if err := s.repo.Screen.CreateTx(ctx, tx, screen); err != nil {
		return nil, err
	}

	rowCursor := 1
	totalSeats := 0
	seatTypeLabels := make([]string, 0, len(ordered))

	for _, seatType := range ordered {
		mapping := &entity.SeatTypeMapping{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			ScreenID:  screen.ID,
			SeatType:  seatType.SeatType,
			SortOrder: seatType.Order,
		}
		if err := s.repo.Screen.CreateSeatTypeTx(ctx, tx, mapping); err != nil {
			return nil, err
		}

		seats := make([]*entity.Seat, 0, seatType.Rows*seatType.Columns)
		for row := rowCursor; row < rowCursor+seatType.Rows; row++ {
			for col := 1; col <= seatType.Columns; col++ {
				seats = append(seats, &entity.Seat{
					BaseSimple: entity.BaseSimple{
						ID:        uuid.New(),
						CreatedAt: now,
					},
					SeatTypeID: mapping.ID,
					ScreenID:   screen.ID,
					SeatRow:    row,
					SeatColumn: col,
					SeatNumber: fmt.Sprintf("%d-%d", row, col),
				})
			}
		}
		if err := s.repo.Seat.CreateBatchTx(ctx, tx, seats); err != nil {
			return nil, err
		}

		rowCursor += seatType.Rows
		totalSeats += seatType.Rows * seatType.Columns
		seatTypeLabels = append(seatTypeLabels, seatType.SeatType)
	}

	screen.TotalSeats = totalSeats
	if err := s.repo.Screen.UpdateTotalSeatsTx(ctx, tx, screen.ID, totalSeats); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit screen tx: %w", err)
	}

	// Layout entries have no TTL; re-provisioning must drop them by hand.
	if err := s.cache.InvalidateSeatLayout(ctx, screen.ID); err != nil {
		s.log.Warn("Layout invalidation failed",
			zap.Error(err),
			zap.String("screen_id", screen.ID.String()),
		)
	}

	s.log.Info("Screen created",
		zap.String("screen_id", screen.ID.String()),
		zap.Int("screen_number", screen.ScreenNumber),
		zap.Int("total_seats", totalSeats),
	)

	return &response.ScreenResponse{
		ID:           screen.ID.String(),
		ScreenNumber: screen.ScreenNumber,
		TotalSeats:   screen.TotalSeats,
		SeatTypes:    seatTypeLabels,
	}, nil
}

func (s *catalogService) ListScreens(ctx context.Context) ([]*response.ScreenResponse, error) {
	screens, err := s.repo.Screen.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*response.ScreenResponse, len(screens))
	for i, screen := range screens {
		resp := &response.ScreenResponse{
			ID:           screen.ID.String(),
			ScreenNumber: screen.ScreenNumber,
			TotalSeats:   screen.TotalSeats,
		}
		if mappings, err := s.repo.Screen.FindSeatTypesByScreen(ctx, screen.ID); err == nil {
			for _, m := range mappings {
				resp.SeatTypes = append(resp.SeatTypes, m.SeatType)
			}
		}
		responses[i] = resp
	}

	return responses, nil
}

func (s *catalogService) SeatLayout(ctx context.Context, screenID string) (entity.SeatLayout, error) {
	id, err := uuid.Parse(screenID)
	if err != nil {
		return nil, fmt.Errorf("invalid screen ID format %s: %w", screenID, err)
	}

	if _, err := s.repo.Screen.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("screen %s not found", screenID)
		}
		return nil, err
	}

	return s.availability.SeatLayout(ctx, id)
}

func (s *catalogService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	releaseDate, err := utils.ParseDate(req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid release date %s: %w", req.ReleaseDate, err)
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: releaseDate,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	return movieToResponse(movie), nil
}

func (s *catalogService) ListMovies(ctx context.Context) ([]*response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*response.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = movieToResponse(movie)
	}

	return responses, nil
}

// CreateShow provisions a scheduled run: the show row, one price per seat
// type of the screen, and one seeded inventory row per date in range, all
// in a single transaction.
func (s *catalogService) CreateShow(ctx context.Context, req *request.CreateShowRequest) (*response.ShowResponse, error) {
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}
	screenID, err := uuid.Parse(req.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("invalid screen ID format %s: %w", req.ScreenID, err)
	}

	startTime, err := utils.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %s: %w", req.StartTime, err)
	}
	endTime, err := utils.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %s: %w", req.EndTime, err)
	}
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", req.StartDate, err)
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", req.EndDate, err)
	}

	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("movie %s not found", req.MovieID)
		}
		return nil, err
	}

	screen, err := s.repo.Screen.FindByID(ctx, screenID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("screen %s not found", req.ScreenID)
		}
		return nil, err
	}

	mappings, err := s.repo.Screen.FindSeatTypesByScreen(ctx, screenID)
	if err != nil {
		return nil, err
	}
	if err := checkPriceCoverage(req.Prices, mappings); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin show tx: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	show := &entity.ShowDetail{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:   movieID,
		ScreenID:  screenID,
		StartTime: startTime,
		EndTime:   endTime,
		StartDate: startDate,
		EndDate:   endDate,
		// Capacity snapshot for display; per-date remaining counts live in
		// the inventory rows.
		AvailableSeats: screen.TotalSeats,
	}

	if err := s.repo.Show.CreateTx(ctx, tx, show); err != nil {
		return nil, err
	}

	for _, price := range req.Prices {
		p := &entity.ShowPrice{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			ShowID:   show.ID,
			SeatType: price.SeatType,
			Price:    price.Price,
		}
		if err := s.repo.ShowPrice.CreateTx(ctx, tx, p); err != nil {
			return nil, err
		}
	}

	inventory := inventoryRows(show.ID, startDate, endDate, screen.TotalSeats, now)
	if err := s.repo.Inventory.CreateBatchTx(ctx, tx, inventory); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit show tx: %w", err)
	}

	s.log.Info("Show created",
		zap.String("show_id", show.ID.String()),
		zap.String("movie_id", req.MovieID),
		zap.String("screen_id", req.ScreenID),
		zap.Int("dates", len(inventory)),
		zap.Int("capacity", screen.TotalSeats),
	)

	return showToResponse(show, movie.Title, screen.ScreenNumber, req.Prices), nil
}

func (s *catalogService) ListShows(ctx context.Context) ([]*response.ShowResponse, error) {
	from := utils.DateOnly(time.Now())
	until := from.AddDate(0, 0, BookingWindowDays)

	shows, err := s.repo.Show.FindUpcoming(ctx, from, until)
	if err != nil {
		return nil, err
	}

	responses := make([]*response.ShowResponse, len(shows))
	for i, show := range shows {
		var title string
		var screenNumber int
		if movie, err := s.repo.Movie.FindByID(ctx, show.MovieID); err == nil {
			title = movie.Title
		}
		if screen, err := s.repo.Screen.FindByID(ctx, show.ScreenID); err == nil {
			screenNumber = screen.ScreenNumber
		}

		var prices []request.ShowPriceRequest
		if rows, err := s.repo.ShowPrice.FindByShow(ctx, show.ID); err == nil {
			for _, row := range rows {
				prices = append(prices, request.ShowPriceRequest{SeatType: row.SeatType, Price: row.Price})
			}
		}

		responses[i] = showToResponse(show, title, screenNumber, prices)
	}

	return responses, nil
}

// ShowSeats backs the seat selection view: static layout plus the
// currently free seats for the requested date.
func (s *catalogService) ShowSeats(ctx context.Context, showID, showDate string) (*response.ShowSeatsResponse, error) {
	id, err := uuid.Parse(showID)
	if err != nil {
		return nil, fmt.Errorf("invalid show ID format %s: %w", showID, err)
	}

	date, err := utils.ParseDate(showDate)
	if err != nil {
		return nil, fmt.Errorf("invalid show date %s: %w", showDate, err)
	}

	show, err := s.repo.Show.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("show %s not found", showID)
		}
		return nil, err
	}

	layout, err := s.availability.SeatLayout(ctx, show.ScreenID)
	if err != nil {
		return nil, err
	}

	availableIDs, err := s.availability.AvailableSeats(ctx, id, date)
	if err != nil {
		return nil, err
	}

	available := make([]string, len(availableIDs))
	for i, seatID := range availableIDs {
		available[i] = seatID.String()
	}

	return &response.ShowSeatsResponse{
		ShowID:         showID,
		ShowDate:       showDate,
		Layout:         layout,
		AvailableSeats: available,
	}, nil
}

// orderSeatTypes sorts seat type blocks by their order field and verifies
// the orders form a contiguous 1..N sequence.
func orderSeatTypes(seatTypes []request.SeatTypeRequest) ([]request.SeatTypeRequest, error) {
	ordered := make([]request.SeatTypeRequest, len(seatTypes))
	seen := make([]bool, len(seatTypes))

	for _, seatType := range seatTypes {
		idx := seatType.Order - 1
		if idx < 0 || idx >= len(seatTypes) || seen[idx] {
			return nil, ErrInvalidSeatOrder
		}
		ordered[idx] = seatType
		seen[idx] = true
	}

	return ordered, nil
}

// checkPriceCoverage verifies exactly one price per seat type of the
// screen.
func checkPriceCoverage(prices []request.ShowPriceRequest, mappings []*entity.SeatTypeMapping) error {
	want := make(map[string]bool, len(mappings))
	for _, m := range mappings {
		want[m.SeatType] = false
	}

	for _, price := range prices {
		covered, ok := want[price.SeatType]
		if !ok || covered {
			return ErrPriceMismatch
		}
		want[price.SeatType] = true
	}

	for _, covered := range want {
		if !covered {
			return ErrPriceMismatch
		}
	}

	return nil
}

// inventoryRows builds one per-date inventory row per day in the
// inclusive [startDate, endDate] range, each seeded to screen capacity.
func inventoryRows(showID uuid.UUID, startDate, endDate time.Time, capacity int, now time.Time) []*entity.BookedShowDetail {
	days := int(endDate.Sub(startDate).Hours()/24) + 1

	rows := make([]*entity.BookedShowDetail, 0, days)
	for day := 0; day < days; day++ {
		rows = append(rows, &entity.BookedShowDetail{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			ShowID:         showID,
			ShowDate:       startDate.AddDate(0, 0, day),
			AvailableSeats: capacity,
		})
	}

	return rows
}

func movieToResponse(movie *entity.Movie) *response.MovieResponse {
	return &response.MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		ReleaseDate: movie.ReleaseDate.Format(utils.DateLayout),
	}
}

func showToResponse(show *entity.ShowDetail, title string, screenNumber int, prices []request.ShowPriceRequest) *response.ShowResponse {
	resp := &response.ShowResponse{
		ID:             show.ID.String(),
		MovieID:        show.MovieID.String(),
		ScreenID:       show.ScreenID.String(),
		MovieTitle:     title,
		ScreenNumber:   screenNumber,
		StartTime:      show.StartTime.Format(utils.TimeOfDayLayout),
		EndTime:        show.EndTime.Format(utils.TimeOfDayLayout),
		StartDate:      show.StartDate.Format(utils.DateLayout),
		EndDate:        show.EndDate.Format(utils.DateLayout),
		AvailableSeats: show.AvailableSeats,
	}
	for _, price := range prices {
		resp.Prices = append(resp.Prices, response.ShowPriceResponse{
			SeatType: price.SeatType,
			Price:    price.Price,
		})
	}
	return resp
}
