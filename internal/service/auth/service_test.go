package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	bookingRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error

	gotID    int64
	gotEmail string
}

func (f *fakeBookingRepo) GetByIDAndUserEmail(ctx context.Context, id int64, email string) (*domain.Booking, error) {
	f.gotID = id
	f.gotEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type fakeSessionStore struct {
	data map[string][]byte
	err  error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{data: make(map[string][]byte)}
}

func (f *fakeSessionStore) Set(ctx context.Context, key string, value interface{}) error {
	if f.err != nil {
		return f.err
	}
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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestAuthenticate_Success(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: &domain.Booking{ID: 42, UserID: 7, UserEmail: "ivan@example.com"},
	}
	sessions := newFakeSessionStore()
	svc := NewService(repo, sessions, nopLogger{})

	token, err := svc.Authenticate(context.Background(), "Ivan@Example.com", "42")

	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, int64(42), repo.gotID)
	require.Equal(t, "ivan@example.com", repo.gotEmail)

	// Сессия открыта и читается обратно
	sess := Session{}
	require.NoError(t, sessions.Get(context.Background(), SessionKey(token), &sess))
	require.Equal(t, int64(7), sess.UserID)
	require.Equal(t, "ivan@example.com", sess.Email)
}

func TestAuthenticate_NoMatch(t *testing.T) {
	repo := &fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, newFakeSessionStore(), nopLogger{})

	_, err := svc.Authenticate(context.Background(), "ivan@example.com", "42")

	require.ErrorIs(t, err, ErrNoMatch)
}

func TestAuthenticate_NonNumericPassword(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, newFakeSessionStore(), nopLogger{})

	// Нечисловой пароль отклоняется до обращения к базе
	_, err := svc.Authenticate(context.Background(), "ivan@example.com", "hunter2")

	require.ErrorIs(t, err, ErrNoMatch)
	require.Zero(t, repo.gotID)
}

func TestAuthenticate_EmptyInput(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, newFakeSessionStore(), nopLogger{})

	_, err := svc.Authenticate(context.Background(), "", "42")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Authenticate(context.Background(), "ivan@example.com", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetSessionAndLogout(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: &domain.Booking{ID: 42, UserID: 7, UserEmail: "ivan@example.com"},
	}
	sessions := newFakeSessionStore()
	svc := NewService(repo, sessions, nopLogger{})

	token, err := svc.Authenticate(context.Background(), "ivan@example.com", "42")
	require.NoError(t, err)

	sess, err := svc.GetSession(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, int64(7), sess.UserID)

	require.NoError(t, svc.Logout(context.Background(), token))
	require.Empty(t, sessions.data)
}
