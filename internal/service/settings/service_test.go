package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	settingsRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/settings"
	"github.com/avlebedev/SBS-BookingWeb/internal/service/settings/models"
)

type fakeSettingsRepo struct {
	settings *domain.BookingSettings
	getErr   error

	updated *domain.BookingSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.BookingSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s := *f.settings
	return &s, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, s *domain.BookingSettings) (*domain.BookingSettings, error) {
	stored := *s
	stored.UpdatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.updated = &stored
	return &stored, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func currentSettings() *domain.BookingSettings {
	return &domain.BookingSettings{
		ID:             1,
		StartTime:      "09:00",
		EndTime:        "18:00",
		PeriodMinutes:  30,
		BookingEnabled: true,
	}
}

func TestUpdate_Success(t *testing.T) {
	repo := &fakeSettingsRepo{settings: currentSettings()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		StartTime:      "10:00",
		EndTime:        "17:00",
		PeriodMinutes:  15,
		BookingEnabled: false,
	})

	require.NoError(t, err)
	require.Equal(t, "10:00", resp.StartTime)
	require.Equal(t, "17:00", resp.EndTime)
	require.Equal(t, 15, resp.PeriodMinutes)
	require.False(t, resp.BookingEnabled)
	require.NotNil(t, repo.updated)
	require.Equal(t, int64(1), repo.updated.ID)
}

func TestUpdate_PeriodBounds(t *testing.T) {
	tests := []struct {
		name    string
		period  int
		wantErr bool
	}{
		{name: "zero", period: 0, wantErr: true},
		{name: "negative", period: -30, wantErr: true},
		{name: "below minimum", period: domain.MinPeriodMinutes - 1, wantErr: true},
		{name: "minimum", period: domain.MinPeriodMinutes},
		{name: "maximum", period: domain.MaxPeriodMinutes},
		{name: "above maximum", period: domain.MaxPeriodMinutes + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeSettingsRepo{settings: currentSettings()}, nopLogger{})

			_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
				StartTime:     "09:00",
				EndTime:       "18:00",
				PeriodMinutes: tt.period,
			})

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPeriod)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdate_InvalidTimes(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{settings: currentSettings()}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		StartTime:     "9 утра",
		EndTime:       "18:00",
		PeriodMinutes: 30,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), &models.UpdateSettingsRequest{
		StartTime:     "09:00",
		EndTime:       "25:00",
		PeriodMinutes: 30,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_StartAfterEndAllowed(t *testing.T) {
	// Окно с start > end допустимо и порождает один слот при генерации
	repo := &fakeSettingsRepo{settings: currentSettings()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		StartTime:     "18:00",
		EndTime:       "09:00",
		PeriodMinutes: 30,
	})

	require.NoError(t, err)
}

func TestUpdate_SettingsRowMissing(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{getErr: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		StartTime:     "09:00",
		EndTime:       "18:00",
		PeriodMinutes: 30,
	})

	require.ErrorIs(t, err, ErrSettingsNotConfigured)
}

func TestGet_Success(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{settings: currentSettings()}, nopLogger{})

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	require.Equal(t, "09:00", resp.StartTime)
	require.Equal(t, "18:00", resp.EndTime)
	require.Equal(t, 30, resp.PeriodMinutes)
	require.True(t, resp.BookingEnabled)
}
