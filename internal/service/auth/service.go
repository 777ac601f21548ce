package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	bookingRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/booking"
	"github.com/avlebedev/SBS-BookingWeb/internal/infra/session"
)

const sessionKeyPrefix = "auth:"

// Session данные авторизованной сессии
type Session struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// SessionKey строит ключ сессии в Redis по токену
func SessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Service сервис аутентификации по email и номеру бронирования
//
// Паролем служит идентификатор бронирования: пара считается валидной,
// если бронирование с таким id принадлежит пользователю с таким email
type Service struct {
	bookingRepo BookingRepository
	sessions    SessionStore
	logger      Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(bookingRepo BookingRepository, sessions SessionStore, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		sessions:    sessions,
		logger:      logger,
	}
}

// Authenticate проверяет пару email/пароль и открывает сессию.
// Возвращает токен сессии
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	// Нечисловой пароль заведомо не соответствует ни одному бронированию
	bookingID, err := strconv.ParseInt(strings.TrimSpace(password), 10, 64)
	if err != nil || bookingID <= 0 {
		s.logger.Warn("Authenticate: non-numeric password for email=%s", email)
		return "", ErrNoMatch
	}

	booking, err := s.bookingRepo.GetByIDAndUserEmail(ctx, bookingID, email)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Authenticate: no booking id=%d for email=%s", bookingID, email)
			return "", ErrNoMatch
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return "", fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	token := uuid.NewString()
	if err := s.sessions.Set(ctx, SessionKey(token), Session{
		UserID: booking.UserID,
		Email:  email,
	}); err != nil {
		s.logger.Error("Authenticate: failed to store session: %v", err)
		return "", fmt.Errorf("%w: Authenticate - session store error: %v", ErrInternal, err)
	}

	s.logger.Info("Authenticate: session opened for user id=%d", booking.UserID)
	return token, nil
}

// GetSession возвращает сессию по токену
func (s *Service) GetSession(ctx context.Context, token string) (*Session, error) {
	var sess Session
	if err := s.sessions.Get(ctx, SessionKey(token), &sess); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetSession: session store error: %v", err)
		return nil, fmt.Errorf("%w: GetSession - session store error: %v", ErrInternal, err)
	}
	return &sess, nil
}

// Logout закрывает сессию по токену
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, SessionKey(token)); err != nil {
		s.logger.Error("Logout: session store error: %v", err)
		return fmt.Errorf("%w: Logout - session store error: %v", ErrInternal, err)
	}
	return nil
}
