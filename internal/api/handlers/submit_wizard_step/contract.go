package submit_wizard_step

import (
	"context"

	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/booking_wizard"
)

type WizardUseCase interface {
	Submit(ctx context.Context, wizardID string, req *booking_wizard.SubmitRequest) (*booking_wizard.RenderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
