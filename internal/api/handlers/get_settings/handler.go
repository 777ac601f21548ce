package get_settings

import (
	"errors"
	"net/http"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
	"github.com/avlebedev/SBS-BookingWeb/internal/service/settings"
)

const msgSettingsNotFound = "настройки бронирования не заданы"

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

// Handle GET /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsNotConfigured):
			h.logger.Warn("GET /admin/settings - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("GET /admin/settings - Failed to get settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/settings - Settings retrieved")
	handlers.RespondJSON(w, http.StatusOK, result)
}
