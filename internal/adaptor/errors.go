package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps use case errors onto HTTP responses. Booking
// conflicts are 409 so clients can distinguish a lost race from bad
// input.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrSeatsUnavailable) || errors.Is(err, usecase.ErrShowFull):
		log.Info(operation+" rejected", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidSeatCount) ||
		errors.Is(err, usecase.ErrPastShow) ||
		errors.Is(err, usecase.ErrBookingWindowExpired) ||
		errors.Is(err, usecase.ErrInvalidDateRange) ||
		errors.Is(err, usecase.ErrInvalidSeatOrder) ||
		errors.Is(err, usecase.ErrPriceMismatch):
		log.Info(operation+" rejected", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error())

	case errors.Is(err, usecase.ErrUnknownSeat) || errors.Is(err, usecase.ErrSeatNotInScreen):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "not found"):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "internal server error")
	}
}
