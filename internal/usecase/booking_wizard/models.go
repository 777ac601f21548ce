package booking_wizard

import (
	"time"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
)

// Step шаг мастера бронирования
type Step string

const (
	StepDate     Step = "date"
	StepTime     Step = "time"
	StepUserInfo Step = "user_info"
	StepDone     Step = "done"
)

// State состояние мастера, хранится в серверной сессии между шагами
// Накапливает провалидированные данные шагов до финального коммита в бронирование
type State struct {
	ID          string    `json:"id"`
	CurrentStep Step      `json:"currentStep"`
	Date        string    `json:"date,omitempty"` // YYYY-MM-DD
	Time        string    `json:"time,omitempty"` // HH:MM
	UserName    string    `json:"userName,omitempty"`
	UserEmail   string    `json:"userEmail,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DisplayConfig статическая конфигурация отображения мастера
// Передается в каждый рендер; состоянием не является
type DisplayConfig struct {
	Title              string
	Description        string
	Background         string
	SuccessRedirectURL string
	DisableRedirectURL string
}

// SubmitRequest данные, отправленные для текущего шага
// Заполняются только поля соответствующего шага
type SubmitRequest struct {
	Step      Step
	Date      string // шаг date, формат YYYY-MM-DD
	Time      string // шаг time, формат HH:MM
	UserName  string // шаг user_info
	UserEmail string // шаг user_info
}

// RenderResponse данные для отрисовки текущего шага мастера
type RenderResponse struct {
	WizardID      string
	Step          Step
	ProgressWidth int

	// Статическое отображение из конфигурации приложения
	Title       string
	Description string
	Background  string

	// Заполняется только на шаге выбора времени
	AvailableTimes []domain.TimeSlot

	// Заполняются только после завершения мастера
	BookingID   *int64
	RedirectURL string
}
