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

type ScreenHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewScreenHandler(service usecase.CatalogService, log *zap.Logger) *ScreenHandler {
	return &ScreenHandler{
		service: service,
		log:     log.With(zap.String("handler", "screen")),
	}
}

// CreateScreen handles POST /api/screens
func (h *ScreenHandler) CreateScreen(w http.ResponseWriter, r *http.Request) {
	var req request.CreateScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	screen, err := h.service.CreateScreen(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create screen")
		return
	}

	utils.ResponseCreated(w, "success", screen)
}

// GetScreens handles GET /api/screens
func (h *ScreenHandler) GetScreens(w http.ResponseWriter, r *http.Request) {
	screens, err := h.service.ListScreens(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list screens")
		return
	}

	utils.ResponseSuccess(w, "success", screens)
}

// GetSeatLayout handles GET /api/screens/{id}/layout
func (h *ScreenHandler) GetSeatLayout(w http.ResponseWriter, r *http.Request) {
	screenID := chi.URLParam(r, "id")
	if screenID == "" {
		utils.ResponseBadRequest(w, "Screen ID is required", nil)
		return
	}

	layout, err := h.service.SeatLayout(r.Context(), screenID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat layout")
		return
	}

	utils.ResponseSuccess(w, "success", layout)
}
