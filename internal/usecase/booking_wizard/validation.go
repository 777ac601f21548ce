package booking_wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	"github.com/avlebedev/SBS-BookingWeb/pkg/types"
)

// validateDateInput валидирует данные шага выбора даты
func validateDateInput(value string) error {
	if value == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, value); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}

// validateTimeInput валидирует данные шага выбора времени
// Коллизия с занятым слотом здесь сознательно НЕ проверяется:
// занятость носит рекомендательный характер и показывается только при рендере
func validateTimeInput(value string) error {
	if value == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := types.TimeString(value).Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format, expected HH:MM", ErrInvalidInput)
	}
	return nil
}

// validateUserInfoInput валидирует данные шага контактов
func validateUserInfoInput(name, email string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxUserNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength || !isValidEmail(email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	return nil
}

// isValidEmail структурная проверка адреса без внешних зависимостей
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	if !strings.Contains(parts[1], ".") {
		return false
	}
	return !strings.HasPrefix(parts[1], ".") && !strings.HasSuffix(parts[1], ".")
}
