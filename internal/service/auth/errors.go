package auth

import "errors"

var (
	// ErrNoMatch возвращается, когда пара email/пароль не соответствует
	// ни одному бронированию. Одна ошибка на все случаи несоответствия,
	// чтобы не раскрывать, существует ли email в базе
	ErrNoMatch = errors.New("credentials do not match any booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionNotFound возвращается, когда сессия отсутствует или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
