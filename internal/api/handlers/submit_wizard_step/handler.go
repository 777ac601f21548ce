package submit_wizard_step

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
	msgInvalidBody      = "некорректное тело запроса"
	msgWizardNotFound   = "сессия мастера не найдена или истекла"
	msgStepMismatch     = "отправлен не текущий шаг мастера"
	msgInvalidStepData  = "некорректные данные шага"
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

// Handle POST /api/v1/booking/wizard/{wizardId}/steps/{step}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	wizardID := vars["wizardId"]
	step := vars["step"]
	if wizardID == "" {
		h.logger.Warn("POST /wizard/{id}/steps/{step} - Missing wizard ID")
		handlers.RespondBadRequest(w, msgMissingWizardID)
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/steps/{step} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	render, err := h.usecase.Submit(r.Context(), wizardID, &booking_wizard.SubmitRequest{
		Step:      booking_wizard.Step(step),
		Date:      req.Date,
		Time:      req.Time,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking_wizard.ErrWizardNotFound):
			h.logger.Warn("POST /wizard/{id}/steps/{step} - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, booking_wizard.ErrStepMismatch):
			h.logger.Warn("POST /wizard/{id}/steps/{step} - Step mismatch: wizard_id=%s, submitted=%s", wizardID, step)
			handlers.RespondConflict(w, msgStepMismatch)

		case errors.Is(err, booking_wizard.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{id}/steps/{step} - Invalid step data: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondBadRequest(w, msgInvalidStepData)

		case errors.Is(err, booking_wizard.ErrBookingDisabled):
			h.logger.Warn("POST /wizard/{id}/steps/{step} - Booking is disabled: wizard_id=%s", wizardID)
			handlers.RespondJSON(w, http.StatusServiceUnavailable,
				wizardview.Disabled(msgBookingDisabled, h.disableRedirectURL))

		case errors.Is(err, booking_wizard.ErrSettingsNotConfigured):
			h.logger.Warn("POST /wizard/{id}/steps/{step} - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("POST /wizard/{id}/steps/{step} - Failed to submit step: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/steps/{step} - Step submitted: wizard_id=%s, next_step=%s", wizardID, render.Step)
	handlers.RespondJSON(w, http.StatusOK, wizardview.FromRender(render))
}
