package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	settingsRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/settings"
	"github.com/avlebedev/SBS-BookingWeb/internal/service/settings/models"
	"github.com/avlebedev/SBS-BookingWeb/pkg/types"
)

// Service сервис настроек бронирования (singleton-строка)
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки бронирования
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetSettings: booking settings row is missing")
			return nil, ErrSettingsNotConfigured
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(current), nil
}

// Update валидирует и сохраняет настройки бронирования
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: start=%s, end=%s, period=%d, enabled=%t",
		req.StartTime, req.EndTime, req.PeriodMinutes, req.BookingEnabled)

	startTime, endTime, err := validateUpdateRequest(req)
	if err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("UpdateSettings: booking settings row is missing")
			return nil, ErrSettingsNotConfigured
		}
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	current.StartTime = startTime
	current.EndTime = endTime
	current.PeriodMinutes = req.PeriodMinutes
	current.BookingEnabled = req.BookingEnabled

	updated, err := s.settingsRepo.Update(ctx, current)
	if err != nil {
		s.logger.Error("UpdateSettings: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: settings id=%d saved", updated.ID)
	return models.FromDomainSettings(updated), nil
}

// validateUpdateRequest валидирует запрос и парсит времена окна
//
// start_time > end_time сознательно не отбрасывается: такое окно порождает
// ровно один слот, и это поведение видимо пользователям
func validateUpdateRequest(req *models.UpdateSettingsRequest) (types.TimeString, types.TimeString, error) {
	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if req.PeriodMinutes < domain.MinPeriodMinutes || req.PeriodMinutes > domain.MaxPeriodMinutes {
		return "", "", fmt.Errorf("%w: periodMinutes must be between %d and %d",
			ErrInvalidPeriod, domain.MinPeriodMinutes, domain.MaxPeriodMinutes)
	}

	return startTime, endTime, nil
}
