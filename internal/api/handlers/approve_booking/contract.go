package approve_booking

import (
	"context"

	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/approve_booking"
)

type ApproveUseCase interface {
	Execute(ctx context.Context, req *approve_booking.Request) (*approve_booking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
