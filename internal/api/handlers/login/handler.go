package login

import (
	"errors"
	"net/http"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
	"github.com/avlebedev/SBS-BookingWeb/internal/service/auth"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "email и пароль обязательны"
	msgNoMatch      = "email или пароль не подходят"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	token, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /admin/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, auth.ErrNoMatch):
			h.logger.Warn("POST /admin/login - Credentials do not match")
			handlers.RespondUnauthorized(w, msgNoMatch)

		default:
			h.logger.Error("POST /admin/login - Failed to authenticate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Session opened")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Token: token})
}
