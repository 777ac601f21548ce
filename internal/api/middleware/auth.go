package middleware

import (
	"context"
	"net/http"

	"github.com/avlebedev/SBS-BookingWeb/internal/api/handlers"
	"github.com/avlebedev/SBS-BookingWeb/internal/service/auth"
)

const (
	// SessionTokenHeader заголовок с токеном сессии
	SessionTokenHeader = "X-Session-Token"

	msgMissingToken = "отсутствует токен сессии"
	msgInvalidToken = "сессия не найдена или истекла"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userEmailKey contextKey = "userEmail"
)

// SessionProvider интерфейс получения сессии по токену
type SessionProvider interface {
	GetSession(ctx context.Context, token string) (*auth.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет токен сессии и кладет данные пользователя в контекст
func Auth(sessions SessionProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionTokenHeader)
			if token == "" {
				logger.Warn("Auth middleware - Missing session token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			sess, err := sessions.GetSession(r.Context(), token)
			if err != nil {
				logger.Warn("Auth middleware - Invalid session token: %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, sess.UserID)
			ctx = context.WithValue(ctx, userEmailKey, sess.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserEmail возвращает email пользователя из контекста запроса
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}
