package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	settingsRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/settings"
)

// UseCase use case расчета доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute выполняет расчет слотов рабочего окна с пометкой занятых
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки (отсутствие строки - явная ошибка конфигурации)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetAvailableTimes: booking settings row is missing")
			return nil, ErrSettingsNotConfigured
		}
		uc.logger.Error("GetAvailableTimes: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 3. Страховка от незавершающегося цикла при некорректном периоде
	// Основная защита - валидация настроек при сохранении
	if !settings.HasValidPeriod() {
		uc.logger.Error("GetAvailableTimes: non-positive period=%d in settings id=%d",
			settings.PeriodMinutes, settings.ID)
		return nil, ErrInvalidPeriod
	}

	// 4. Получаем существующие бронирования на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты
	slots, err := generateTimeSlots(settings, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to generate slots: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableTimes: generated %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
