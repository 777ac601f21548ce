package get_available_times

import "errors"

var (
	// ErrSettingsNotConfigured возвращается, когда строка настроек бронирования отсутствует
	ErrSettingsNotConfigured = errors.New("booking settings are not configured")

	// ErrInvalidPeriod возвращается при неположительном периоде слота
	// Без этой проверки цикл генерации слотов не завершается
	ErrInvalidPeriod = errors.New("slot period must be positive")

	// ErrSlotLimitExceeded возвращается, когда окно настроек порождает больше слотов,
	// чем помещается в сутки (например, при заворачивании времени через полночь)
	ErrSlotLimitExceeded = errors.New("slot limit for one day exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
