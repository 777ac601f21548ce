package settings

import "errors"

var (
	// ErrSettingsNotConfigured возвращается, когда строка настроек отсутствует
	ErrSettingsNotConfigured = errors.New("booking settings are not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPeriod возвращается при периоде слота вне допустимых границ
	// Неположительный период приводит к незавершающемуся циклу генерации слотов,
	// поэтому отбрасывается именно на валидации настроек
	ErrInvalidPeriod = errors.New("invalid slot period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
