package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
)

const msgInvalidPage = "некорректный номер страницы"

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

// Handle GET /api/v1/admin/bookings?page=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			h.logger.Warn("GET /admin/bookings - Invalid page %q", pageStr)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		page = parsed
	}

	list, err := h.service.List(r.Context(), page)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: page=%d, error=%v", page, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Listed %d bookings: page=%d, total=%d",
		len(list.Items), list.Page, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
