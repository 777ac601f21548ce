package approve_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/approve_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

type Handler struct {
	usecase ApproveUseCase
	logger  Logger
}

func NewHandler(usecase ApproveUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{bookingId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/approve - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &approve_booking.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, approve_booking.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/approve - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /admin/bookings/{id}/approve - Failed to approve: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/approve - Booking approved: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, Response{
		ID:        result.ID,
		Approved:  result.Approved,
		UserName:  result.UserName,
		UserEmail: result.UserEmail,
		Date:      result.Date,
		Time:      result.Time,
	})
}
