package booking_wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	settingsRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/settings"
	userRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/user"
	getAvailableTimes "github.com/avlebedev/SBS-BookingWeb/internal/usecase/get_available_times"
	"github.com/avlebedev/SBS-BookingWeb/pkg/types"
)

// UseCase трехшаговый мастер бронирования (date -> time -> user_info -> done)
// Состояние между шагами живет в серверной сессии; бронирование создается
// единственный раз при завершении последнего шага
type UseCase struct {
	bookingRepo    BookingRepository
	userRepo       UserRepository
	settingsRepo   SettingsRepository
	sessions       SessionStore
	availableTimes AvailableTimesProvider
	txManager      TransactionManager
	timeProvider   TimeProvider
	display        DisplayConfig
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	settingsRepo SettingsRepository,
	sessions SessionStore,
	availableTimes AvailableTimesProvider,
	txManager TransactionManager,
	display DisplayConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		userRepo:       userRepo,
		settingsRepo:   settingsRepo,
		sessions:       sessions,
		availableTimes: availableTimes,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		display:        display,
		logger:         logger,
	}
}

// Start создает новую сессию мастера на первом шаге
func (uc *UseCase) Start(ctx context.Context) (*RenderResponse, error) {
	if err := uc.checkBookingEnabled(ctx); err != nil {
		return nil, err
	}

	state := newState(uc.timeProvider.Now())
	if err := uc.sessions.Set(ctx, wizardKey(state.ID), state); err != nil {
		uc.logger.Error("WizardStart: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	uc.logger.Info("WizardStart: created wizard id=%s", state.ID)
	return uc.render(ctx, state)
}

// GetStep возвращает данные для отрисовки текущего шага мастера
// Гард отключенного бронирования вычисляется на каждом рендере
func (uc *UseCase) GetStep(ctx context.Context, wizardID string) (*RenderResponse, error) {
	if err := uc.checkBookingEnabled(ctx); err != nil {
		return nil, err
	}

	state, err := uc.loadState(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	return uc.render(ctx, state)
}

// Submit принимает данные текущего шага, валидирует их и продвигает мастер
// Отправка данных шага user_info завершает мастер и создает бронирование
func (uc *UseCase) Submit(ctx context.Context, wizardID string, req *SubmitRequest) (*RenderResponse, error) {
	if err := uc.checkBookingEnabled(ctx); err != nil {
		return nil, err
	}

	state, err := uc.loadState(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	// Мастер линейный: принимаем данные только текущего шага
	if req.Step != state.CurrentStep {
		uc.logger.Warn("WizardSubmit: wizard id=%s step mismatch: submitted=%s, current=%s",
			wizardID, req.Step, state.CurrentStep)
		return nil, ErrStepMismatch
	}

	switch state.CurrentStep {
	case StepDate:
		if err := validateDateInput(req.Date); err != nil {
			uc.logger.Warn("WizardSubmit: wizard id=%s invalid date: %v", wizardID, err)
			return nil, err
		}
		state.Date = req.Date

	case StepTime:
		if err := validateTimeInput(req.Time); err != nil {
			uc.logger.Warn("WizardSubmit: wizard id=%s invalid time: %v", wizardID, err)
			return nil, err
		}
		state.Time = string(types.TimeString(req.Time))

	case StepUserInfo:
		if err := validateUserInfoInput(req.UserName, req.UserEmail); err != nil {
			uc.logger.Warn("WizardSubmit: wizard id=%s invalid user info: %v", wizardID, err)
			return nil, err
		}
		state.UserName = strings.TrimSpace(req.UserName)
		state.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))

		return uc.complete(ctx, state)

	default:
		return nil, ErrStepMismatch
	}

	state.CurrentStep = nextStep(state.CurrentStep)
	if err := uc.sessions.Set(ctx, wizardKey(state.ID), state); err != nil {
		uc.logger.Error("WizardSubmit: wizard id=%s failed to save session: %v", wizardID, err)
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	uc.logger.Info("WizardSubmit: wizard id=%s advanced to step=%s", wizardID, state.CurrentStep)
	return uc.render(ctx, state)
}

// complete сливает накопленные данные шагов в одно бронирование
// Пользователь и бронирование создаются в одной транзакции
func (uc *UseCase) complete(ctx context.Context, state *State) (*RenderResponse, error) {
	date, err := time.Parse(domain.DateFormat, state.Date)
	if err != nil {
		// Дата валидировалась на своем шаге; сюда попадает только битая сессия
		uc.logger.Error("WizardComplete: wizard id=%s corrupted date %q: %v", state.ID, state.Date, err)
		return nil, fmt.Errorf("%w: corrupted wizard state: %v", ErrInternal, err)
	}

	var created *domain.Booking

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		owner, err := uc.userRepo.GetByEmail(txCtx, state.UserEmail)
		if err != nil {
			if !errors.Is(err, userRepo.ErrUserNotFound) {
				return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
			}
			owner, err = uc.userRepo.Create(txCtx, &domain.User{
				Name:  state.UserName,
				Email: state.UserEmail,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
			}
		}

		booking := &domain.Booking{
			UserID:    owner.ID,
			UserName:  state.UserName,
			UserEmail: state.UserEmail,
			Date:      date,
			Time:      types.TimeString(state.Time),
			Approved:  false, // Подтверждение - отдельное действие администратора
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("WizardComplete: wizard id=%s failed: %v", state.ID, err)
		return nil, err
	}

	// Сессия больше не нужна; ошибка удаления не отменяет созданное бронирование
	if err := uc.sessions.Delete(ctx, wizardKey(state.ID)); err != nil {
		uc.logger.Warn("WizardComplete: wizard id=%s failed to delete session: %v", state.ID, err)
	}

	uc.logger.Info("WizardComplete: wizard id=%s created booking id=%d", state.ID, created.ID)

	return &RenderResponse{
		WizardID:      state.ID,
		Step:          StepDone,
		ProgressWidth: progressWidth(StepDone),
		Title:         uc.display.Title,
		Description:   uc.display.Description,
		Background:    uc.display.Background,
		BookingID:     &created.ID,
		RedirectURL:   uc.display.SuccessRedirectURL,
	}, nil
}

// render собирает данные отрисовки текущего шага
func (uc *UseCase) render(ctx context.Context, state *State) (*RenderResponse, error) {
	resp := &RenderResponse{
		WizardID:      state.ID,
		Step:          state.CurrentStep,
		ProgressWidth: progressWidth(state.CurrentStep),
		Title:         uc.display.Title,
		Description:   uc.display.Description,
		Background:    uc.display.Background,
	}

	// Шаг выбора времени аннотируется занятыми слотами,
	// чтобы UI мог их пометить или задизейблить
	if state.CurrentStep == StepTime {
		date, err := time.Parse(domain.DateFormat, state.Date)
		if err != nil {
			uc.logger.Error("WizardRender: wizard id=%s corrupted date %q: %v", state.ID, state.Date, err)
			return nil, fmt.Errorf("%w: corrupted wizard state: %v", ErrInternal, err)
		}

		times, err := uc.availableTimes.Execute(ctx, &getAvailableTimes.Request{Date: date})
		if err != nil {
			if errors.Is(err, getAvailableTimes.ErrSettingsNotConfigured) {
				return nil, ErrSettingsNotConfigured
			}
			uc.logger.Error("WizardRender: wizard id=%s failed to get available times: %v", state.ID, err)
			return nil, fmt.Errorf("%w: failed to get available times: %v", ErrInternal, err)
		}
		resp.AvailableTimes = times.Slots
	}

	return resp, nil
}

// loadState загружает состояние мастера из сессии
func (uc *UseCase) loadState(ctx context.Context, wizardID string) (*State, error) {
	if wizardID == "" {
		return nil, ErrWizardNotFound
	}

	var state State
	if err := uc.sessions.Get(ctx, wizardKey(wizardID), &state); err != nil {
		uc.logger.Warn("Wizard: session id=%s not found: %v", wizardID, err)
		return nil, ErrWizardNotFound
	}

	return &state, nil
}

// checkBookingEnabled гард отключенного бронирования
// При выключенном флаге мастер недоступен целиком
func (uc *UseCase) checkBookingEnabled(ctx context.Context) error {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return ErrSettingsNotConfigured
		}
		return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if !settings.BookingEnabled {
		return ErrBookingDisabled
	}

	return nil
}
