package get_wizard_step

import (
	"context"

	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/booking_wizard"
)

type WizardUseCase interface {
	GetStep(ctx context.Context, wizardID string) (*booking_wizard.RenderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
