package start_wizard

import (
	"context"

	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/booking_wizard"
)

type WizardUseCase interface {
	Start(ctx context.Context) (*booking_wizard.RenderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
