package booking_wizard

import "errors"

var (
	// ErrBookingDisabled возвращается, когда бронирование выключено в настройках
	// Проверяется на каждом рендере мастера
	ErrBookingDisabled = errors.New("booking is disabled")

	// ErrSettingsNotConfigured возвращается, когда строка настроек бронирования отсутствует
	ErrSettingsNotConfigured = errors.New("booking settings are not configured")

	// ErrWizardNotFound возвращается, когда сессия мастера отсутствует или истекла
	ErrWizardNotFound = errors.New("wizard session not found")

	// ErrStepMismatch возвращается при попытке отправить данные не текущего шага
	// Мастер линейный: шаги проходятся строго по порядку
	ErrStepMismatch = errors.New("submitted step does not match current step")

	// ErrInvalidInput возвращается при некорректных данных шага
	ErrInvalidInput = errors.New("invalid step data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
