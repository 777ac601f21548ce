package get_available_times

import (
	"context"
	"time"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все бронирования на конкретную дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек бронирования
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
