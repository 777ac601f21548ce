package get_dashboard

import (
	"net/http"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - Dashboard built: last=%d, waiting=%d",
		len(dashboard.LastBookings), len(dashboard.WaitingBookings))
	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
