package get_available_times

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	"github.com/avlebedev/SBS-BookingWeb/internal/usecase/get_available_times"
)

type fakeUseCase struct {
	resp *get_available_times.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *get_available_times.Request) (*get_available_times.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	h := NewHandler(&fakeUseCase{
		resp: &get_available_times.Response{
			Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Slots: []domain.TimeSlot{
				{Time: "09:00"},
				{Time: "09:30", IsTaken: true},
			},
		},
	}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date=2025-06-01", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2025-06-01", resp.Date)
	require.Len(t, resp.Slots, 2)
	require.Equal(t, "09:00", resp.Slots[0].Time)
	require.False(t, resp.Slots[0].IsTaken)
	require.True(t, resp.Slots[1].IsTaken)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date=01.06.2025", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SettingsMissing(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: get_available_times.ErrSettingsNotConfigured}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date=2025-06-01", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
