package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
)

type fakeMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.subject = subject
	f.body = body
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testPayload() domain.NotificationPayload {
	return domain.NotificationPayload{
		BookingID: 7,
		UserName:  "Ivan Petrov",
		UserEmail: "ivan@example.com",
		Date:      "2025-06-01",
		Time:      "09:30",
	}
}

func TestHandleConfirmationTask_SendsEmail(t *testing.T) {
	task, err := NewConfirmationTask(testPayload())
	require.NoError(t, err)
	require.Equal(t, TypeBookingConfirmation, task.Type())

	mailer := &fakeMailer{}
	handler := HandleConfirmationTask(mailer, nopLogger{})

	require.NoError(t, handler(context.Background(), task))

	require.Equal(t, "ivan@example.com", mailer.to)
	require.Equal(t, "[no-reply] Booking Confirmation", mailer.subject)
	require.Equal(t, "Hi Ivan Petrov, your booking at 09:30 2025-06-01 has been confirmed. Thank you!", mailer.body)
}

func TestHandleConfirmationTask_SendFailure(t *testing.T) {
	task, err := NewConfirmationTask(testPayload())
	require.NoError(t, err)

	sendErr := errors.New("smtp unavailable")
	handler := HandleConfirmationTask(&fakeMailer{err: sendErr}, nopLogger{})

	require.ErrorIs(t, handler(context.Background(), task), sendErr)
}

func TestHandleConfirmationTask_InvalidPayload(t *testing.T) {
	handler := HandleConfirmationTask(&fakeMailer{}, nopLogger{})

	task := asynq.NewTask(TypeBookingConfirmation, []byte("not json"))

	require.Error(t, handler(context.Background(), task))
}
