// Package wizardview содержит общее JSON-представление шага мастера
// для всех ручек мастера бронирования
package wizardview

import (
	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/booking_wizard"
)

// TimeSlotResponse слот рабочего окна с пометкой занятости
type TimeSlotResponse struct {
	Time    string `json:"time"` // HH:MM
	IsTaken bool   `json:"isTaken"`
}

// StepResponse данные для отрисовки текущего шага мастера
type StepResponse struct {
	WizardID      string `json:"wizardId"`
	Step          string `json:"step"`
	ProgressWidth int    `json:"progressWidth"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Background  string `json:"background,omitempty"`

	AvailableTimes []TimeSlotResponse `json:"availableTimes,omitempty"`

	BookingID   *int64 `json:"bookingId,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// DisabledStepResponse ответ при выключенном бронировании
type DisabledStepResponse struct {
	Error       string `json:"error"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// FromRender конвертирует ответ usecase в JSON-представление
func FromRender(r *booking_wizard.RenderResponse) StepResponse {
	resp := StepResponse{
		WizardID:      r.WizardID,
		Step:          string(r.Step),
		ProgressWidth: r.ProgressWidth,
		Title:         r.Title,
		Description:   r.Description,
		Background:    r.Background,
		BookingID:     r.BookingID,
		RedirectURL:   r.RedirectURL,
	}

	if len(r.AvailableTimes) > 0 {
		resp.AvailableTimes = make([]TimeSlotResponse, len(r.AvailableTimes))
		for i, s := range r.AvailableTimes {
			resp.AvailableTimes[i] = TimeSlotResponse{
				Time:    s.Time.String(),
				IsTaken: s.IsTaken,
			}
		}
	}

	return resp
}

// Disabled строит ответ о выключенном бронировании со ссылкой для редиректа
func Disabled(msg, redirectURL string) DisabledStepResponse {
	return DisabledStepResponse{
		Error:       msg,
		RedirectURL: redirectURL,
	}
}
