package models

import (
	"time"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
)

// BookingResponse представление бронирования для админских ручек
type BookingResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse страница списка бронирований
type BookingListResponse struct {
	Items    []BookingResponse `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Total    int64             `json:"total"`
}

// DashboardResponse блоки дашборда администратора
type DashboardResponse struct {
	LastBookings    []BookingResponse `json:"lastBookings"`
	WaitingBookings []BookingResponse `json:"waitingBookings"`
}

// FromDomainBooking конвертирует domain.Booking в ответ сервиса
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		UserEmail: b.UserEmail,
		Date:      b.Date.Format(domain.DateFormat),
		Time:      b.Time.String(),
		Approved:  b.Approved,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует слайс domain.Booking в ответы сервиса
func FromDomainBookingList(list []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, len(list))
	for i, b := range list {
		result[i] = FromDomainBooking(b)
	}
	return result
}
