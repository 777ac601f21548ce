package mailer

import "errors"

var (
	// ErrSendFailed возвращается при ошибке доставки письма
	ErrSendFailed = errors.New("mailer client: failed to send email")

	// ErrCancelled возвращается, когда контекст отменен до отправки
	ErrCancelled = errors.New("mailer client: send cancelled")
)
