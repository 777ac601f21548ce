package models

import (
	"time"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
)

// SettingsResponse представление настроек бронирования
type SettingsResponse struct {
	StartTime      string    `json:"startTime"` // HH:MM
	EndTime        string    `json:"endTime"`   // HH:MM
	PeriodMinutes  int       `json:"periodMinutes"`
	BookingEnabled bool      `json:"bookingEnabled"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UpdateSettingsRequest запрос на обновление настроек
type UpdateSettingsRequest struct {
	StartTime      string `json:"startTime"` // HH:MM
	EndTime        string `json:"endTime"`   // HH:MM
	PeriodMinutes  int    `json:"periodMinutes"`
	BookingEnabled bool   `json:"bookingEnabled"`
}

// FromDomainSettings конвертирует domain.BookingSettings в ответ сервиса
func FromDomainSettings(s *domain.BookingSettings) *SettingsResponse {
	return &SettingsResponse{
		StartTime:      s.StartTime.String(),
		EndTime:        s.EndTime.String(),
		PeriodMinutes:  s.PeriodMinutes,
		BookingEnabled: s.BookingEnabled,
		UpdatedAt:      s.UpdatedAt,
	}
}
