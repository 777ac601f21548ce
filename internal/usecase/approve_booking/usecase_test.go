package approve_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	bookingRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking    *fakeStoredBooking
	getErr     error
	approveErr error
}

type fakeStoredBooking struct {
	booking  domain.Booking
	approved bool
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b := f.booking.booking
	return &b, nil
}

func (f *fakeBookingRepo) Approve(ctx context.Context, id int64) error {
	if f.approveErr != nil {
		return f.approveErr
	}
	f.booking.approved = true
	return nil
}

type fakeEnqueuer struct {
	payloads []domain.NotificationPayload
	err      error
}

func (f *fakeEnqueuer) EnqueueConfirmation(ctx context.Context, payload domain.NotificationPayload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingBooking() *fakeStoredBooking {
	return &fakeStoredBooking{
		booking: domain.Booking{
			ID:        7,
			UserID:    3,
			UserName:  "Ivan Petrov",
			UserEmail: "ivan@example.com",
			Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Time:      "09:30",
		},
	}
}

func TestExecute_ApprovesAndEnqueuesOnce(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	enqueuer := &fakeEnqueuer{}
	uc := NewUseCase(repo, enqueuer, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 7})

	require.NoError(t, err)
	require.True(t, resp.Approved)
	require.True(t, repo.booking.approved)

	// Ровно одна задача с единым снапшотом бронирования
	require.Len(t, enqueuer.payloads, 1)
	payload := enqueuer.payloads[0]
	require.Equal(t, int64(7), payload.BookingID)
	require.Equal(t, "Ivan Petrov", payload.UserName)
	require.Equal(t, "ivan@example.com", payload.UserEmail)
	require.Equal(t, "2025-06-01", payload.Date)
	require.Equal(t, "09:30", payload.Time)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	enqueuer := &fakeEnqueuer{}
	uc := NewUseCase(repo, enqueuer, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 404})

	require.ErrorIs(t, err, ErrBookingNotFound)
	require.Empty(t, enqueuer.payloads)
}

func TestExecute_EnqueueFailureDoesNotRollBackApproval(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	enqueuer := &fakeEnqueuer{err: errors.New("queue unavailable")}
	uc := NewUseCase(repo, enqueuer, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 7})

	// Подтверждение остается в силе, письмо теряется (at-most-once)
	require.NoError(t, err)
	require.True(t, resp.Approved)
	require.True(t, repo.booking.approved)
}

func TestExecute_ApproveRepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking(), approveErr: errors.New("deadlock")}
	enqueuer := &fakeEnqueuer{}
	uc := NewUseCase(repo, enqueuer, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7})

	require.ErrorIs(t, err, ErrInternal)
	require.Empty(t, enqueuer.payloads)
}
