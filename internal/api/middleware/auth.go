package middleware

import (
	"context"
	"net/http"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/domain"
)

// SessionTokenHeader заголовок с токеном сессии
const SessionTokenHeader = "X-Session-Token"

const msgUnauthorized = "требуется действующая сессия"

type contextKey string

const sessionContextKey contextKey = "session"

// SessionResolver интерфейс проверки токена сессии
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// Auth проверяет X-Session-Token и кладет сессию в контекст запроса
// Токен без сессии или с истекшей сессией - 401
func Auth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionTokenHeader)
			if token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			session, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext достает сессию, положенную Auth middleware
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*domain.Session)
	return session, ok
}
