package login

import "context"

type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
