package get_available_times

import (
	"errors"
	"net/http"
	"time"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/get_available_times"
)

const (
	msgMissingDate      = "отсутствует параметр date"
	msgInvalidDate      = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgSettingsNotFound = "настройки бронирования не заданы"
	msgInvalidInput     = "некорректные входные данные"
)

type Handler struct {
	usecase AvailableTimesUseCase
	logger  Logger
}

func NewHandler(usecase AvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-times - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-times - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &get_available_times.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, get_available_times.ErrSettingsNotConfigured):
			h.logger.Warn("GET /available-times - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		case errors.Is(err, get_available_times.ErrInvalidPeriod):
			h.logger.Error("GET /available-times - Invalid slot period in settings")
			handlers.RespondInternalError(w)

		case errors.Is(err, get_available_times.ErrSlotLimitExceeded):
			h.logger.Error("GET /available-times - Slot limit exceeded for date=%s", dateStr)
			handlers.RespondInternalError(w)

		case errors.Is(err, get_available_times.ErrInvalidInput):
			h.logger.Warn("GET /available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-times - Failed to calculate slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]TimeSlotResponse, len(result.Slots))
	for i, s := range result.Slots {
		slots[i] = TimeSlotResponse{
			Time:    s.Time.String(),
			IsTaken: s.IsTaken,
		}
	}

	h.logger.Info("GET /available-times - Calculated %d slots for date=%s", len(slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, Response{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: slots,
	})
}
