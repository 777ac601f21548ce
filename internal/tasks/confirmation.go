package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
)

// TypeBookingConfirmation тип задачи отправки письма-подтверждения
const TypeBookingConfirmation = "booking:confirmation"

const (
	confirmationSubject = "[no-reply] Booking Confirmation"
	confirmationBody    = "Hi %s, your booking at %s %s has been confirmed. Thank you!"
)

// Mailer интерфейс почтового транспорта
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewConfirmationTask создает задачу с сериализованным снапшотом бронирования
func NewConfirmationTask(payload domain.NotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal confirmation payload: %w", err)
	}
	return asynq.NewTask(TypeBookingConfirmation, data), nil
}

// HandleConfirmationTask возвращает обработчик задачи подтверждения
// Ошибка отправки логируется и не ретраится (задача ставится с MaxRetry=0)
func HandleConfirmationTask(mailer Mailer, logger Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload domain.NotificationPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Error("ConfirmationTask: invalid payload: %v", err)
			return err
		}

		logger.Info("ConfirmationTask: sending confirmation for booking id=%d to %s",
			payload.BookingID, payload.UserEmail)

		body := fmt.Sprintf(confirmationBody, payload.UserName, payload.Time, payload.Date)
		if err := mailer.Send(ctx, payload.UserEmail, confirmationSubject, body); err != nil {
			logger.Error("ConfirmationTask: failed to send email for booking id=%d: %v",
				payload.BookingID, err)
			return err
		}

		logger.Info("ConfirmationTask: email sent for booking id=%d", payload.BookingID)
		return nil
	}
}
