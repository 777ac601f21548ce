package start_wizard

import (
	"errors"
	"net/http"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/wizardview"
	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/booking_wizard"
)

const (
	msgBookingDisabled  = "бронирование временно недоступно"
	msgSettingsNotFound = "настройки бронирования не заданы"
)

type Handler struct {
	usecase            WizardUseCase
	disableRedirectURL string
	logger             Logger
}

func NewHandler(usecase WizardUseCase, disableRedirectURL string, logger Logger) *Handler {
	return &Handler{
		usecase:            usecase,
		disableRedirectURL: disableRedirectURL,
		logger:             logger,
	}
}

// Handle POST /api/v1/booking/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	render, err := h.usecase.Start(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, booking_wizard.ErrBookingDisabled):
			h.logger.Warn("POST /wizard - Booking is disabled")
			handlers.RespondJSON(w, http.StatusServiceUnavailable,
				wizardview.Disabled(msgBookingDisabled, h.disableRedirectURL))

		case errors.Is(err, booking_wizard.ErrSettingsNotConfigured):
			h.logger.Warn("POST /wizard - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("POST /wizard - Failed to start wizard: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard - Wizard started: wizard_id=%s", render.WizardID)
	handlers.RespondJSON(w, http.StatusCreated, wizardview.FromRender(render))
}
