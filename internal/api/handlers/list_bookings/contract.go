package list_bookings

import (
	"context"

	"github.com/avlebedev/SBS-BookingWeb/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, page int) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
