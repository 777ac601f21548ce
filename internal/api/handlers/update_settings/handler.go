package update_settings

import (
	"errors"
	"net/http"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
	"github.com/avlebedev/SBS-BookingWeb/internal/service/settings"
	"github.com/avlebedev/SBS-BookingWeb/internal/service/settings/models"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidInput     = "некорректные данные настроек"
	msgInvalidPeriod    = "период слота вне допустимых границ"
	msgSettingsNotFound = "настройки бронирования не заданы"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidPeriod):
			h.logger.Warn("PUT /admin/settings - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, settings.ErrSettingsNotConfigured):
			h.logger.Warn("PUT /admin/settings - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated: start=%s, end=%s, period=%d, enabled=%t",
		result.StartTime, result.EndTime, result.PeriodMinutes, result.BookingEnabled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
