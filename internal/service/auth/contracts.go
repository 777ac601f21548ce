package auth

import (
	"context"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDAndUserEmail(ctx context.Context, id int64, email string) (*domain.Booking, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Set(ctx context.Context, key string, value interface{}) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
