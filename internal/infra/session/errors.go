package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия отсутствует или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrEncode возвращается при ошибке сериализации состояния сессии
	ErrEncode = errors.New("session.store: failed to encode session")

	// ErrDecode возвращается при ошибке десериализации состояния сессии
	ErrDecode = errors.New("session.store: failed to decode session")

	// ErrStorage возвращается при ошибках обращения к redis
	ErrStorage = errors.New("session.store: storage error")
)
