package get_available_times

import (
	"context"

	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/get_available_times"
)

type AvailableTimesUseCase interface {
	Execute(ctx context.Context, req *get_available_times.Request) (*get_available_times.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
