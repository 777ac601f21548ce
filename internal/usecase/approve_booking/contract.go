package approve_booking

import (
	"context"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Approve(ctx context.Context, id int64) error
}

// NotificationEnqueuer интерфейс продюсера задач уведомлений
type NotificationEnqueuer interface {
	EnqueueConfirmation(ctx context.Context, payload domain.NotificationPayload) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
