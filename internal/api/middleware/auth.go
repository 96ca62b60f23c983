package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CondoService/internal/api/handlers"
	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/authtoken"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
	msgAdminOnly    = "операция доступна только администратору"
)

type userContextKey struct{}

// TokenParser интерфейс разбора токена сессии
type TokenParser interface {
	Parse(token string) (*authtoken.Claims, error)
}

// UserLoader интерфейс загрузки пользователя по ID
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// AuthLogger интерфейс для логирования middleware
type AuthLogger interface {
	Warn(format string, v ...interface{})
}

// Auth middleware аутентификации: проверяет Bearer токен и кладет
// актуальную запись пользователя в контекст запроса. Роль берется из БД,
// а не из токена - смена роли действует сразу, без повторного логина.
func Auth(parser TokenParser, users UserLoader, logger AuthLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Warn("Auth: invalid token: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				logger.Warn("Auth: user id=%d from token not found: %v", claims.UserID, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly middleware пускает дальше только администраторов.
// Ставится после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok || !user.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUser возвращает пользователя текущего запроса
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*domain.User)
	return user, ok
}

// GetUserID возвращает ID пользователя текущего запроса
func GetUserID(ctx context.Context) (int64, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return 0, false
	}
	return user.ID, true
}
