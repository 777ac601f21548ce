package domain

import (
	"time"

	"github.com/avlebedev/SBS-BookingWeb/pkg/types"
)

// Booking represents a reserved time slot in the system
type Booking struct {
	ID     int64
	UserID int64
	Date   time.Time
	Time   types.TimeString
	// Pending bookings wait for an administrator to approve them
	Approved bool

	// Denormalized user data for history and notifications
	UserName  string
	UserEmail string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the booking still waits for approval
func (b *Booking) IsPending() bool {
	return !b.Approved
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date       *time.Time // Бронирования на конкретную дату (опционально)
	Approved   *bool      // Фильтр по статусу подтверждения (опционально)
	Limit      uint64     // 0 = без ограничения
	Offset     uint64
	OrderByAsc bool // true = date ASC, time ASC; false = date DESC, time ASC
}
