package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewShowHandler(service usecase.CatalogService, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		log:     log.With(zap.String("handler", "show")),
	}
}

// CreateShow handles POST /api/shows
func (h *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	show, err := h.service.CreateShow(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create show")
		return
	}

	utils.ResponseCreated(w, "success", show)
}

// GetShows handles GET /api/shows
func (h *ShowHandler) GetShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.ListShows(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list shows")
		return
	}

	utils.ResponseSuccess(w, "success", shows)
}

// GetShowSeats handles GET /api/shows/{id}/seats?date=YYYY-MM-DD
func (h *ShowHandler) GetShowSeats(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Show ID is required", nil)
		return
	}

	showDate := r.URL.Query().Get("date")
	if showDate == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	seats, err := h.service.ShowSeats(r.Context(), showID, showDate)
	if err != nil {
		handleServiceError(w, h.log, err, "get show seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}
