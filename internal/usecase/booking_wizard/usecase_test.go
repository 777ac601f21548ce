package booking_wizard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	settingsRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/settings"
	userRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/user"
	getAvailableTimes "github.com/avlebedev/SBS-BookingWeb/internal/usecase/get_available_times"
	"github.com/avlebedev/SBS-BookingWeb/pkg/types"
)

type fakeBookingRepo struct {
	created []*domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *b
	stored.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &stored)
	return &stored, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	stored := *u
	stored.ID = int64(len(f.users) + 1)
	f.users[u.Email] = &stored
	return &stored, nil
}

type fakeSettingsRepo struct {
	settings *domain.BookingSettings
	err      error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.BookingSettings, error) {
	return f.settings, f.err
}

// fakeSessionStore хранит значения сериализованными, как это делает Redis
type fakeSessionStore struct {
	data map[string][]byte
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{data: make(map[string][]byte)}
}

func (f *fakeSessionStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = data
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := f.data[key]
	if !ok {
		return errors.New("not found")
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeSessionStore) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

type fakeAvailableTimes struct {
	slots []domain.TimeSlot
	err   error
}

func (f *fakeAvailableTimes) Execute(ctx context.Context, req *getAvailableTimes.Request) (*getAvailableTimes.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableTimes.Response{Date: req.Date, Slots: f.slots}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type wizardEnv struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	users    *fakeUserRepo
	sessions *fakeSessionStore
	settings *fakeSettingsRepo
}

func newWizardEnv() *wizardEnv {
	env := &wizardEnv{
		bookings: &fakeBookingRepo{},
		users:    newFakeUserRepo(),
		sessions: newFakeSessionStore(),
		settings: &fakeSettingsRepo{
			settings: &domain.BookingSettings{
				ID:             1,
				StartTime:      "09:00",
				EndTime:        "18:00",
				PeriodMinutes:  30,
				BookingEnabled: true,
			},
		},
	}
	env.uc = NewUseCase(
		env.bookings,
		env.users,
		env.settings,
		env.sessions,
		&fakeAvailableTimes{slots: []domain.TimeSlot{{Time: "09:00"}, {Time: "09:30", IsTaken: true}}},
		fakeTxManager{},
		DisplayConfig{
			Title:              "Запись",
			SuccessRedirectURL: "/booking-success",
			DisableRedirectURL: "/booking-disabled",
		},
		nopLogger{},
	)
	return env
}

func TestWizard_FullWalkthroughCreatesSingleBooking(t *testing.T) {
	env := newWizardEnv()
	ctx := context.Background()

	started, err := env.uc.Start(ctx)
	require.NoError(t, err)
	require.Equal(t, StepDate, started.Step)
	require.Equal(t, 6, started.ProgressWidth)
	require.NotEmpty(t, started.WizardID)

	// Шаг 1: дата
	step, err := env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepDate, Date: "2025-06-01"})
	require.NoError(t, err)
	require.Equal(t, StepTime, step.Step)
	require.Equal(t, 30, step.ProgressWidth)
	require.Len(t, step.AvailableTimes, 2)

	// Шаг 2: время (занятость рекомендательная, занятый слот не отбрасывается)
	step, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepTime, Time: "09:30"})
	require.NoError(t, err)
	require.Equal(t, StepUserInfo, step.Step)
	require.Equal(t, 75, step.ProgressWidth)

	// Шаг 3: контакты - завершает мастер
	step, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{
		Step:      StepUserInfo,
		UserName:  "Ivan Petrov",
		UserEmail: "Ivan@Example.com",
	})
	require.NoError(t, err)
	require.Equal(t, StepDone, step.Step)
	require.Equal(t, 100, step.ProgressWidth)
	require.NotNil(t, step.BookingID)
	require.Equal(t, "/booking-success", step.RedirectURL)

	// Ровно одно бронирование, неподтвержденное, email нормализован
	require.Len(t, env.bookings.created, 1)
	created := env.bookings.created[0]
	require.False(t, created.Approved)
	require.Equal(t, "ivan@example.com", created.UserEmail)
	require.Equal(t, types.TimeString("09:30"), created.Time)
	require.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), created.Date)

	// Сессия мастера удалена
	require.Empty(t, env.sessions.data)
}

func TestWizard_ExistingUserReused(t *testing.T) {
	env := newWizardEnv()
	ctx := context.Background()

	existing, err := env.users.Create(ctx, &domain.User{Name: "Ivan", Email: "ivan@example.com"})
	require.NoError(t, err)

	started, err := env.uc.Start(ctx)
	require.NoError(t, err)

	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepDate, Date: "2025-06-01"})
	require.NoError(t, err)
	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepTime, Time: "10:00"})
	require.NoError(t, err)
	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{
		Step:      StepUserInfo,
		UserName:  "Ivan",
		UserEmail: "ivan@example.com",
	})
	require.NoError(t, err)

	require.Len(t, env.bookings.created, 1)
	require.Equal(t, existing.ID, env.bookings.created[0].UserID)
	require.Len(t, env.users.users, 1)
}

func TestWizard_StepMismatchRejected(t *testing.T) {
	env := newWizardEnv()
	ctx := context.Background()

	started, err := env.uc.Start(ctx)
	require.NoError(t, err)

	// Попытка отправить время до выбора даты
	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepTime, Time: "09:00"})
	require.ErrorIs(t, err, ErrStepMismatch)

	// Состояние не продвинулось
	step, err := env.uc.GetStep(ctx, started.WizardID)
	require.NoError(t, err)
	require.Equal(t, StepDate, step.Step)
}

func TestWizard_InvalidStepData(t *testing.T) {
	env := newWizardEnv()
	ctx := context.Background()

	started, err := env.uc.Start(ctx)
	require.NoError(t, err)

	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepDate, Date: "01.06.2025"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepDate, Date: "2025-06-01"})
	require.NoError(t, err)

	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepTime, Time: "9 утра"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepTime, Time: "09:00"})
	require.NoError(t, err)

	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{
		Step:      StepUserInfo,
		UserName:  "Ivan",
		UserEmail: "not-an-email",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Empty(t, env.bookings.created)
}

func TestWizard_UnknownSessionNotFound(t *testing.T) {
	env := newWizardEnv()

	_, err := env.uc.GetStep(context.Background(), "missing-id")
	require.ErrorIs(t, err, ErrWizardNotFound)

	_, err = env.uc.Submit(context.Background(), "missing-id", &SubmitRequest{Step: StepDate, Date: "2025-06-01"})
	require.ErrorIs(t, err, ErrWizardNotFound)
}

func TestWizard_DisabledGuardOnEveryRender(t *testing.T) {
	env := newWizardEnv()
	ctx := context.Background()

	started, err := env.uc.Start(ctx)
	require.NoError(t, err)

	// Бронирование выключили посреди сценария
	env.settings.settings.BookingEnabled = false

	_, err = env.uc.GetStep(ctx, started.WizardID)
	require.ErrorIs(t, err, ErrBookingDisabled)

	_, err = env.uc.Submit(ctx, started.WizardID, &SubmitRequest{Step: StepDate, Date: "2025-06-01"})
	require.ErrorIs(t, err, ErrBookingDisabled)

	_, err = env.uc.Start(ctx)
	require.ErrorIs(t, err, ErrBookingDisabled)
}

func TestWizard_SettingsMissing(t *testing.T) {
	env := newWizardEnv()
	env.settings.settings = nil
	env.settings.err = settingsRepo.ErrSettingsNotFound

	_, err := env.uc.Start(context.Background())
	require.ErrorIs(t, err, ErrSettingsNotConfigured)
}
