package get_wizard_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/wizardview"
	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/booking_wizard"
)

const (
	msgMissingWizardID  = "отсутствует ID мастера"
	msgWizardNotFound   = "сессия мастера не найдена или истекла"
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

// Handle GET /api/v1/booking/wizard/{wizardId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	wizardID := vars["wizardId"]
	if wizardID == "" {
		h.logger.Warn("GET /wizard/{id} - Missing wizard ID")
		handlers.RespondBadRequest(w, msgMissingWizardID)
		return
	}

	render, err := h.usecase.GetStep(r.Context(), wizardID)
	if err != nil {
		switch {
		case errors.Is(err, booking_wizard.ErrWizardNotFound):
			h.logger.Warn("GET /wizard/{id} - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, booking_wizard.ErrBookingDisabled):
			h.logger.Warn("GET /wizard/{id} - Booking is disabled: wizard_id=%s", wizardID)
			handlers.RespondJSON(w, http.StatusServiceUnavailable,
				wizardview.Disabled(msgBookingDisabled, h.disableRedirectURL))

		case errors.Is(err, booking_wizard.ErrSettingsNotConfigured):
			h.logger.Warn("GET /wizard/{id} - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("GET /wizard/{id} - Failed to render step: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /wizard/{id} - Step rendered: wizard_id=%s, step=%s", wizardID, render.Step)
	handlers.RespondJSON(w, http.StatusOK, wizardview.FromRender(render))
}
