package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "09:30", want: "09:30"},
		{name: "with seconds", input: "09:30:00", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	require.True(t, TimeString("09:00").IsBefore("10:00"))
	require.True(t, TimeString("10:30").IsAfter("10:00"))
	require.False(t, TimeString("10:00").IsAfter("10:00"))
	require.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	require.Equal(t, TimeString("09:30"), got)

	// Переход через час
	got, err = TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	require.Equal(t, TimeString("10:15"), got)

	// Заворачивание через полночь
	got, err = TimeString("23:45").AddMinutes(30)
	require.NoError(t, err)
	require.Equal(t, TimeString("00:15"), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30"))
	require.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("15:45")))
	require.Equal(t, TimeString("15:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 8, 5, 0, 0, time.UTC)))
	require.Equal(t, TimeString("08:05"), ts)

	require.NoError(t, ts.Scan(nil))
	require.True(t, ts.IsZero())
}
